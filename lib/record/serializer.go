// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"math/big"

	"github.com/mediachain/datastore/lib/cborval"
)

// ToCbor renders r as a cborval.Value: a map with one entry per field
// in r.Metadata(). Entries are built in whatever order Metadata()'s map
// iteration happens to produce — that order is irrelevant, because
// cborval.Encode always re-sorts a map's entries into RFC 8949 §4.2
// Core Deterministic order before emitting bytes. That single point is
// where the wire-level key-ordering invariant actually lives; ToCbor
// itself doesn't need to sort. Encoding never fails for a
// constructively valid record — structural fields are built from typed
// struct fields that are already the right shape; a required Reference
// field left nil is a programmer error and panics here, the same way
// the teacher's MerkleRoot panics on an invariant violation rather than
// returning an error for it.
func ToCbor(r Record) cborval.Value {
	full := r.Metadata()
	entries := make([]cborval.Entry, 0, len(full))
	for k, v := range full {
		entries = append(entries, cborval.Entry{Key: cborval.Text(k), Val: v})
	}
	return cborval.Map(entries...)
}

// ToCborBytes renders r to its canonical CBOR byte encoding.
func ToCborBytes(r Record) ([]byte, error) {
	data, err := cborval.Encode(ToCbor(r))
	if err != nil {
		return nil, fmt.Errorf("record: encoding %s: %w", r.Type(), err)
	}
	return data, nil
}

// structuralEntries returns the type tag plus every variant-specific
// structural field of r, computed from r's current typed field values.
// It is the single place that knows the field layout of each of the
// fourteen variants; both Metadata() (introspection) and ToCbor
// (encoding) build on it.
func structuralEntries(r Record) []cborval.Entry {
	entries := []cborval.Entry{{Key: cborval.Text("type"), Val: cborval.Text(string(r.Type()))}}

	switch v := r.(type) {
	case Entity, Artefact:
		// No structural fields besides "type".

	case EntityChainCell:
		entries = append(entries, refEntry("entity", v.Entity))
		entries = appendOptionalRef(entries, "chain", v.Chain)
	case EntityUpdateCell:
		entries = append(entries, refEntry("entity", v.Entity))
		entries = appendOptionalRef(entries, "chain", v.Chain)
	case EntityLinkCell:
		entries = append(entries, refEntry("entity", v.Entity))
		entries = appendOptionalRef(entries, "chain", v.Chain)
		entries = append(entries, refEntry("entityLink", v.EntityLink))

	case ArtefactChainCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
	case ArtefactUpdateCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
	case ArtefactCreationCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
		entries = append(entries, refEntry("entity", v.Entity))
	case ArtefactDerivationCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
		entries = append(entries, refEntry("artefactOrigin", v.ArtefactOrigin))
	case ArtefactOwnershipCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
		entries = append(entries, refEntry("entity", v.Entity))
	case ArtefactReferenceCell:
		entries = append(entries, refEntry("artefact", v.Artefact))
		entries = appendOptionalRef(entries, "chain", v.Chain)
		entries = append(entries, refEntry("entity", v.Entity))

	case CanonicalEntry:
		entries = append(entries, cborval.Entry{Key: cborval.Text("index"), Val: bigIntToValue(&v.Index)})
		entries = append(entries, refEntry("ref", v.Ref))
	case ChainEntry:
		entries = append(entries, cborval.Entry{Key: cborval.Text("index"), Val: bigIntToValue(&v.Index)})
		entries = append(entries, refEntry("ref", v.Ref))
		entries = append(entries, refEntry("chain", v.Chain))
		entries = appendOptionalRef(entries, "chainPrevious", v.ChainPrevious)

	case JournalBlock:
		entries = append(entries, cborval.Entry{Key: cborval.Text("index"), Val: bigIntToValue(&v.Index)})
		entries = appendOptionalRef(entries, "chain", v.Chain)
		items := make([]cborval.Value, len(v.Entries))
		for i, entry := range v.Entries {
			items[i] = ToCbor(entry)
		}
		entries = append(entries, cborval.Entry{Key: cborval.Text("entries"), Val: cborval.Array(items...)})

	default:
		panic(fmt.Sprintf("record: structuralEntries: unknown record type %T", r))
	}

	return entries
}

func refEntry(key string, ref Reference) cborval.Entry {
	if ref == nil {
		panic(fmt.Sprintf("record: required reference field %q is nil", key))
	}
	return cborval.Entry{Key: cborval.Text(key), Val: referenceToValue(ref)}
}

func appendOptionalRef(entries []cborval.Entry, key string, ref Reference) []cborval.Entry {
	if ref == nil {
		return entries
	}
	return append(entries, cborval.Entry{Key: cborval.Text(key), Val: referenceToValue(ref)})
}

func referenceToValue(ref Reference) cborval.Value {
	return cborval.Map(cborval.Entry{Key: cborval.Text("@link"), Val: cborval.Bytes(ref.Multihash().Bytes())})
}

// bigIntToValue renders n as the shortest CBOR representation that
// preserves it exactly: a plain integer when it fits int64/uint64, and
// a tag-2 (positive) or tag-3 (negative) bignum otherwise, per RFC 8949
// §3.4.3. Journal indices are expected to stay well within int64 for
// the lifetime of any real journal, but nothing in this package bounds
// them, so encoding has to handle the unbounded case correctly.
func bigIntToValue(n *big.Int) cborval.Value {
	if n.IsInt64() {
		return cborval.Int(n.Int64())
	}
	if n.Sign() > 0 && n.IsUint64() {
		return cborval.Uint(n.Uint64())
	}
	if n.Sign() >= 0 {
		return cborval.TagValue(2, cborval.Bytes(n.Bytes()))
	}
	mag := new(big.Int).Neg(n)
	mag.Sub(mag, big.NewInt(1)) // mag = -n - 1
	return cborval.TagValue(3, cborval.Bytes(mag.Bytes()))
}
