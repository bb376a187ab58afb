// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package recordgen

import (
	"math/big"
	"math/rand"

	"github.com/mediachain/datastore/lib/cborval"
	"github.com/mediachain/datastore/lib/multihash"
	"github.com/mediachain/datastore/lib/record"
)

// reservedKeys are the structural field names used by at least one
// record variant; generated metadata avoids them so a round trip never
// has to disambiguate a metadata entry from a structural one.
var reservedKeys = map[string]bool{
	"type": true, "entity": true, "artefact": true, "chain": true,
	"entityLink": true, "artefactOrigin": true, "index": true, "ref": true,
	"chainPrevious": true, "entries": true, "@link": true,
}

// Reference returns a random MultihashReference, built from the
// multihash of a random 32-byte buffer rather than anything
// meaningful.
func Reference(r *rand.Rand) record.Reference {
	buf := make([]byte, 32)
	r.Read(buf)
	return record.NewMultihashReference(multihash.SumSHA256(buf))
}

// Meta returns a random pass-through metadata map with up to size
// entries, none of which collide with a structural key.
func Meta(r *rand.Rand, size int) record.Meta {
	n := r.Intn(size + 1)
	m := make(record.Meta, n)
	for i := 0; i < n; i++ {
		m[randomKey(r)] = randomPrimitive(r)
	}
	return m
}

func randomKey(r *rand.Rand) string {
	for {
		k := randomString(r, 1+r.Intn(8))
		if k != "" && !reservedKeys[k] {
			return k
		}
	}
}

func randomString(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func randomPrimitive(r *rand.Rand) cborval.Value {
	switch r.Intn(5) {
	case 0:
		return cborval.Int(r.Int63() - r.Int63())
	case 1:
		return cborval.Bool(r.Intn(2) == 0)
	case 2:
		return cborval.Text(randomString(r, r.Intn(12)))
	case 3:
		// A non-zero minimum length sidesteps any nil-vs-empty-slice
		// ambiguity between a freshly built byte string and one that
		// came back out of a CBOR decoder.
		buf := make([]byte, 1+r.Intn(12))
		r.Read(buf)
		return cborval.Bytes(buf)
	default:
		return cborval.Null()
	}
}

// Index returns a random non-negative journal index, occasionally
// large enough to exceed int64 so bignum encoding gets exercised.
func Index(r *rand.Rand) big.Int {
	if r.Intn(10) == 0 {
		hi := new(big.Int).Lsh(big.NewInt(int64(1+r.Intn(1<<30))), 64)
		lo := new(big.Int).SetInt64(r.Int63())
		return *new(big.Int).Add(hi, lo)
	}
	return *big.NewInt(r.Int63())
}

func Entity(r *rand.Rand) record.Entity {
	return record.Entity{Meta: Meta(r, 4)}
}

func Artefact(r *rand.Rand) record.Artefact {
	return record.Artefact{Meta: Meta(r, 4)}
}

func EntityChainCell(r *rand.Rand) record.EntityChainCell {
	return record.EntityChainCell{Entity: Reference(r), Chain: optionalRef(r), Meta: Meta(r, 4)}
}

func EntityUpdateCell(r *rand.Rand) record.EntityUpdateCell {
	return record.EntityUpdateCell{Entity: Reference(r), Chain: optionalRef(r), Meta: Meta(r, 4)}
}

func EntityLinkCell(r *rand.Rand) record.EntityLinkCell {
	return record.EntityLinkCell{
		Entity:     Reference(r),
		Chain:      optionalRef(r),
		EntityLink: Reference(r),
		Meta:       Meta(r, 4),
	}
}

func ArtefactChainCell(r *rand.Rand) record.ArtefactChainCell {
	return record.ArtefactChainCell{Artefact: Reference(r), Chain: optionalRef(r), Meta: Meta(r, 4)}
}

func ArtefactUpdateCell(r *rand.Rand) record.ArtefactUpdateCell {
	return record.ArtefactUpdateCell{Artefact: Reference(r), Chain: optionalRef(r), Meta: Meta(r, 4)}
}

func ArtefactCreationCell(r *rand.Rand) record.ArtefactCreationCell {
	return record.ArtefactCreationCell{
		Artefact: Reference(r),
		Chain:    optionalRef(r),
		Entity:   Reference(r),
		Meta:     Meta(r, 4),
	}
}

func ArtefactDerivationCell(r *rand.Rand) record.ArtefactDerivationCell {
	return record.ArtefactDerivationCell{
		Artefact:       Reference(r),
		Chain:          optionalRef(r),
		ArtefactOrigin: Reference(r),
		Meta:           Meta(r, 4),
	}
}

func ArtefactOwnershipCell(r *rand.Rand) record.ArtefactOwnershipCell {
	return record.ArtefactOwnershipCell{
		Artefact: Reference(r),
		Chain:    optionalRef(r),
		Entity:   Reference(r),
		Meta:     Meta(r, 4),
	}
}

func ArtefactReferenceCell(r *rand.Rand) record.ArtefactReferenceCell {
	return record.ArtefactReferenceCell{
		Artefact: Reference(r),
		Chain:    optionalRef(r),
		Entity:   Reference(r),
		Meta:     Meta(r, 4),
	}
}

func CanonicalEntry(r *rand.Rand) record.CanonicalEntry {
	return record.CanonicalEntry{Index: Index(r), Ref: Reference(r), Meta: Meta(r, 4)}
}

func ChainEntry(r *rand.Rand) record.ChainEntry {
	return record.ChainEntry{
		Index:         Index(r),
		Ref:           Reference(r),
		Chain:         Reference(r),
		ChainPrevious: optionalRef(r),
		Meta:          Meta(r, 4),
	}
}

// JournalBlock returns a random journal block with up to 3 entries,
// each a CanonicalEntry or ChainEntry.
func JournalBlock(r *rand.Rand) record.JournalBlock {
	n := r.Intn(4)
	entries := make([]record.Record, n)
	for i := range entries {
		if r.Intn(2) == 0 {
			entries[i] = CanonicalEntry(r)
		} else {
			entries[i] = ChainEntry(r)
		}
	}
	return record.JournalBlock{Index: Index(r), Chain: optionalRef(r), Entries: entries, Meta: Meta(r, 4)}
}

func optionalRef(r *rand.Rand) record.Reference {
	if r.Intn(3) == 0 {
		return nil
	}
	return Reference(r)
}

// Record returns a random record, picking uniformly among all fourteen
// variants.
func Record(r *rand.Rand) record.Record {
	switch r.Intn(14) {
	case 0:
		return Entity(r)
	case 1:
		return Artefact(r)
	case 2:
		return EntityChainCell(r)
	case 3:
		return EntityUpdateCell(r)
	case 4:
		return EntityLinkCell(r)
	case 5:
		return ArtefactChainCell(r)
	case 6:
		return ArtefactUpdateCell(r)
	case 7:
		return ArtefactCreationCell(r)
	case 8:
		return ArtefactDerivationCell(r)
	case 9:
		return ArtefactOwnershipCell(r)
	case 10:
		return ArtefactReferenceCell(r)
	case 11:
		return CanonicalEntry(r)
	case 12:
		return ChainEntry(r)
	default:
		return JournalBlock(r)
	}
}
