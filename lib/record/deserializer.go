// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"math/big"

	"github.com/mediachain/datastore/lib/cborval"
	"github.com/mediachain/datastore/lib/multihash"
	"github.com/mediachain/datastore/lib/recordtype"
)

// Decoder turns a validated top-level CBOR map into a Record.
type Decoder func(m cborval.Value) (Record, error)

// DeserializerMap selects, per type tag, which Decoder handles it. It
// is built once by TransactorPreset/DatastorePreset and never mutated
// afterward by this package; callers who want a customized map copy a
// preset's entries into their own map rather than writing into the one
// a preset constructor returned.
type DeserializerMap map[recordtype.Tag]Decoder

// TransactorPreset builds a DeserializerMap where every chain-cell
// subtype collapses to its generic parent decoder (EntityChainCell for
// all three entity-cell tags, ArtefactChainCell for all six artefact-cell
// tags). A transactor that only needs "is there a chain cell here and
// what does it point at" doesn't need to distinguish the subtypes.
func TransactorPreset() DeserializerMap {
	m := DeserializerMap{
		recordtype.Entity:         decodeEntity,
		recordtype.Artefact:       decodeArtefact,
		recordtype.CanonicalEntry: decodeCanonicalEntry,
		recordtype.ChainEntry:     decodeChainEntry,
		recordtype.JournalBlock:   decodeJournalBlock,
	}
	for _, tag := range recordtype.EntityChainCellTypes() {
		m[tag] = decodeGenericEntityChainCell
	}
	for _, tag := range recordtype.ArtefactChainCellTypes() {
		m[tag] = decodeGenericArtefactChainCell
	}
	return m
}

// DatastorePreset builds a DeserializerMap where every subtype decodes
// to its own concrete Go type, preserving the distinction a datastore
// needs between, say, an ArtefactCreationCell and a plain
// ArtefactChainCell.
func DatastorePreset() DeserializerMap {
	m := TransactorPreset()
	m[recordtype.EntityChainCell] = decodeEntityChainCell
	m[recordtype.EntityUpdateCell] = decodeEntityUpdateCell
	m[recordtype.EntityLinkCell] = decodeEntityLinkCell
	m[recordtype.ArtefactChainCell] = decodeArtefactChainCell
	m[recordtype.ArtefactUpdateCell] = decodeArtefactUpdateCell
	m[recordtype.ArtefactCreationCell] = decodeArtefactCreationCell
	m[recordtype.ArtefactDerivationCell] = decodeArtefactDerivationCell
	m[recordtype.ArtefactOwnershipCell] = decodeArtefactOwnershipCell
	m[recordtype.ArtefactReferenceCell] = decodeArtefactReferenceCell
	return m
}

// DefaultDeserializerMap is DatastorePreset(), the preset callers get
// if they don't have a reason to pick the other one.
var DefaultDeserializerMap = DatastorePreset()

const selfDescribeTag = 55799

// FromCbor dispatches a single decoded top-level Value to the Decoder
// deserializers registers for its type tag.
func FromCbor(v cborval.Value, deserializers DeserializerMap) (Record, error) {
	tag, err := extractType(v)
	if err != nil {
		return nil, err
	}
	decode, ok := deserializers[tag]
	if !ok {
		return nil, unexpectedObjectType(string(tag))
	}
	return decode(v)
}

// FromCborBytes decodes the first top-level item of data and dispatches
// it through FromCbor. A leading CBOR tag wrapping the item (the
// self-describe tag, 55799, is the expected case, but any tag wrapper
// is unwrapped the same way) is stripped before dispatch.
func FromCborBytes(data []byte, deserializers DeserializerMap) (Record, error) {
	values, err := cborval.DecodeSequence(data)
	if err != nil {
		return nil, cborDecodingFailed(err.Error())
	}
	if len(values) == 0 {
		return nil, cborDecodingFailed("empty CBOR stream")
	}

	v := values[0]
	if _, content, ok := v.Tag(); ok {
		v = content
	}
	return FromCbor(v, deserializers)
}

// MultihashReferenceDeserializer decodes a reference value of the form
// {"@link": <bytes>} into a MultihashReference.
func MultihashReferenceDeserializer(v cborval.Value) (Reference, error) {
	entries, ok := v.AsMap()
	if !ok {
		return nil, unexpectedCborType("reference is not a CBOR map")
	}

	var link cborval.Value
	found := false
	for _, e := range entries {
		if k, ok := e.Key.AsText(); ok && k == "@link" {
			link = e.Val
			found = true
			break
		}
	}
	if !found {
		return nil, referenceDecodingFailed("missing \"@link\" field")
	}

	raw, ok := link.AsBytes()
	if !ok {
		return nil, referenceDecodingFailed("\"@link\" value is not a byte string")
	}

	mh, err := multihash.FromBytes(raw)
	if err != nil {
		return nil, referenceDecodingFailed(err.Error())
	}
	return NewMultihashReference(mh), nil
}

// JournalEntryDeserializer decodes a journal entry (CanonicalEntry or
// ChainEntry) regardless of which DeserializerMap the caller is using
// elsewhere — JournalBlock always needs both concrete entry decoders,
// since its entries are never collapsed to a generic parent type.
func JournalEntryDeserializer(m cborval.Value) (Record, error) {
	tag, err := extractType(m)
	if err != nil {
		return nil, err
	}
	switch tag {
	case recordtype.CanonicalEntry:
		return decodeCanonicalEntry(m)
	case recordtype.ChainEntry:
		return decodeChainEntry(m)
	default:
		return nil, unexpectedObjectType(string(tag))
	}
}

func extractType(m cborval.Value) (recordtype.Tag, error) {
	if m.Kind() != cborval.KindMap {
		return "", unexpectedCborType("top-level value is not a CBOR map")
	}
	v, ok := m.Get("type")
	if !ok {
		return "", typeNameNotFound()
	}
	s, ok := v.AsText()
	if !ok {
		return "", typeNameNotFound()
	}
	tag, ok := recordtype.FromString(s)
	if !ok {
		return "", unexpectedObjectType(s)
	}
	return tag, nil
}

func expectType(m cborval.Value, want recordtype.Tag) error {
	tag, err := extractType(m)
	if err != nil {
		return err
	}
	if tag != want {
		return unexpectedObjectType(string(tag))
	}
	return nil
}

func expectTypeIn(m cborval.Value, allowed []recordtype.Tag) (recordtype.Tag, error) {
	tag, err := extractType(m)
	if err != nil {
		return "", err
	}
	for _, t := range allowed {
		if t == tag {
			return tag, nil
		}
	}
	return "", unexpectedObjectType(string(tag))
}

func getRequired(m cborval.Value, key string) (cborval.Value, error) {
	v, ok := m.Get(key)
	if !ok {
		return cborval.Value{}, requiredFieldNotFound(key)
	}
	return v, nil
}

func getRequiredReference(m cborval.Value, key string) (Reference, error) {
	v, err := getRequired(m, key)
	if err != nil {
		return nil, err
	}
	return MultihashReferenceDeserializer(v)
}

// getOptionalReference returns nil, without error, when key is absent
// or undecodable — an optional reference that can't be decoded is
// treated as absent rather than failing the whole record.
func getOptionalReference(m cborval.Value, key string) Reference {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	ref, err := MultihashReferenceDeserializer(v)
	if err != nil {
		return nil
	}
	return ref
}

func getRequiredBigInt(m cborval.Value, key string) (big.Int, error) {
	v, err := getRequired(m, key)
	if err != nil {
		return big.Int{}, err
	}
	n, ok := valueToBigInt(v)
	if !ok {
		return big.Int{}, unexpectedCborType(fmt.Sprintf("field %q is not an integer", key))
	}
	return *n, nil
}

func valueToBigInt(v cborval.Value) (*big.Int, bool) {
	switch v.Kind() {
	case cborval.KindUint:
		u, ok := v.AsUint()
		if !ok {
			return nil, false
		}
		return new(big.Int).SetUint64(u), true
	case cborval.KindNegInt:
		u, ok := v.NegIntMagnitude()
		if !ok {
			return nil, false
		}
		n := new(big.Int).Neg(new(big.Int).SetUint64(u))
		n.Sub(n, big.NewInt(1)) // n = -1 - u
		return n, true
	case cborval.KindTag:
		number, content, ok := v.Tag()
		if !ok {
			return nil, false
		}
		b, ok := content.AsBytes()
		if !ok {
			return nil, false
		}
		mag := new(big.Int).SetBytes(b)
		switch number {
		case 2:
			return mag, true
		case 3:
			n := new(big.Int).Neg(mag)
			n.Sub(n, big.NewInt(1)) // n = -mag - 1
			return n, true
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}

// metaFromValue converts the full decoded top-level map into a Meta,
// skipping any entry whose key is not a text string (the record model
// only ever writes text-string keys, so an entry like that can only
// come from a foreign CBOR producer this package doesn't need to
// round-trip).
func metaFromValue(m cborval.Value) Meta {
	entries, _ := m.AsMap()
	meta := make(Meta, len(entries))
	for _, e := range entries {
		if k, ok := e.Key.AsText(); ok {
			meta[k] = e.Val
		}
	}
	return meta
}

// extraMeta is metaFromValue with the given structural keys (plus
// "type", always structural) removed, leaving only genuine pass-through
// metadata.
func extraMeta(m cborval.Value, structuralKeys ...string) Meta {
	meta := metaFromValue(m)
	delete(meta, "type")
	for _, k := range structuralKeys {
		delete(meta, k)
	}
	return meta
}

func decodeEntity(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.Entity); err != nil {
		return nil, err
	}
	return Entity{Meta: extraMeta(m)}, nil
}

func decodeArtefact(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.Artefact); err != nil {
		return nil, err
	}
	return Artefact{Meta: extraMeta(m)}, nil
}

func decodeGenericEntityChainCell(m cborval.Value) (Record, error) {
	if _, err := expectTypeIn(m, recordtype.EntityChainCellTypes()); err != nil {
		return nil, err
	}
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return EntityChainCell{Entity: entity, Chain: chain, Meta: extraMeta(m, "entity", "chain")}, nil
}

func decodeEntityChainCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.EntityChainCell); err != nil {
		return nil, err
	}
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return EntityChainCell{Entity: entity, Chain: chain, Meta: extraMeta(m, "entity", "chain")}, nil
}

func decodeEntityUpdateCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.EntityUpdateCell); err != nil {
		return nil, err
	}
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return EntityUpdateCell{Entity: entity, Chain: chain, Meta: extraMeta(m, "entity", "chain")}, nil
}

func decodeEntityLinkCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.EntityLinkCell); err != nil {
		return nil, err
	}
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	entityLink, err := getRequiredReference(m, "entityLink")
	if err != nil {
		return nil, err
	}
	return EntityLinkCell{
		Entity:     entity,
		Chain:      chain,
		EntityLink: entityLink,
		Meta:       extraMeta(m, "entity", "chain", "entityLink"),
	}, nil
}

func decodeGenericArtefactChainCell(m cborval.Value) (Record, error) {
	if _, err := expectTypeIn(m, recordtype.ArtefactChainCellTypes()); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return ArtefactChainCell{Artefact: artefact, Chain: chain, Meta: extraMeta(m, "artefact", "chain")}, nil
}

func decodeArtefactChainCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactChainCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return ArtefactChainCell{Artefact: artefact, Chain: chain, Meta: extraMeta(m, "artefact", "chain")}, nil
}

func decodeArtefactUpdateCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactUpdateCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	return ArtefactUpdateCell{Artefact: artefact, Chain: chain, Meta: extraMeta(m, "artefact", "chain")}, nil
}

func decodeArtefactCreationCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactCreationCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	return ArtefactCreationCell{
		Artefact: artefact,
		Chain:    chain,
		Entity:   entity,
		Meta:     extraMeta(m, "artefact", "chain", "entity"),
	}, nil
}

func decodeArtefactDerivationCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactDerivationCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	origin, err := getRequiredReference(m, "artefactOrigin")
	if err != nil {
		return nil, err
	}
	return ArtefactDerivationCell{
		Artefact:       artefact,
		Chain:          chain,
		ArtefactOrigin: origin,
		Meta:           extraMeta(m, "artefact", "chain", "artefactOrigin"),
	}, nil
}

func decodeArtefactOwnershipCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactOwnershipCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	return ArtefactOwnershipCell{
		Artefact: artefact,
		Chain:    chain,
		Entity:   entity,
		Meta:     extraMeta(m, "artefact", "chain", "entity"),
	}, nil
}

func decodeArtefactReferenceCell(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ArtefactReferenceCell); err != nil {
		return nil, err
	}
	artefact, err := getRequiredReference(m, "artefact")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")
	entity, err := getRequiredReference(m, "entity")
	if err != nil {
		return nil, err
	}
	return ArtefactReferenceCell{
		Artefact: artefact,
		Chain:    chain,
		Entity:   entity,
		Meta:     extraMeta(m, "artefact", "chain", "entity"),
	}, nil
}

func decodeCanonicalEntry(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.CanonicalEntry); err != nil {
		return nil, err
	}
	index, err := getRequiredBigInt(m, "index")
	if err != nil {
		return nil, err
	}
	ref, err := getRequiredReference(m, "ref")
	if err != nil {
		return nil, err
	}
	return CanonicalEntry{Index: index, Ref: ref, Meta: extraMeta(m, "index", "ref")}, nil
}

func decodeChainEntry(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.ChainEntry); err != nil {
		return nil, err
	}
	index, err := getRequiredBigInt(m, "index")
	if err != nil {
		return nil, err
	}
	ref, err := getRequiredReference(m, "ref")
	if err != nil {
		return nil, err
	}
	chain, err := getRequiredReference(m, "chain")
	if err != nil {
		return nil, err
	}
	chainPrevious := getOptionalReference(m, "chainPrevious")
	return ChainEntry{
		Index:         index,
		Ref:           ref,
		Chain:         chain,
		ChainPrevious: chainPrevious,
		Meta:          extraMeta(m, "index", "ref", "chain", "chainPrevious"),
	}, nil
}

// JournalBlockDeserializer decodes a journal block. Per the wire
// format's original semantics, an entry in the "entries" array that is
// not itself a CBOR map is silently skipped rather than rejected —
// this is a deliberate compatibility quirk, not a validation gap.
func JournalBlockDeserializer(m cborval.Value) (Record, error) {
	return decodeJournalBlock(m)
}

func decodeJournalBlock(m cborval.Value) (Record, error) {
	if err := expectType(m, recordtype.JournalBlock); err != nil {
		return nil, err
	}
	index, err := getRequiredBigInt(m, "index")
	if err != nil {
		return nil, err
	}
	chain := getOptionalReference(m, "chain")

	entriesVal, err := getRequired(m, "entries")
	if err != nil {
		return nil, err
	}
	items, ok := entriesVal.AsArray()
	if !ok {
		return nil, unexpectedCborType("\"entries\" field is not an array")
	}

	entries := make([]Record, 0, len(items))
	for _, item := range items {
		if item.Kind() != cborval.KindMap {
			continue // non-map entries are skipped, not errors
		}
		entry, err := JournalEntryDeserializer(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return JournalBlock{
		Index:   index,
		Chain:   chain,
		Entries: entries,
		Meta:    extraMeta(m, "index", "chain", "entries"),
	}, nil
}
