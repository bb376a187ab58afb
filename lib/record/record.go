// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"math/big"

	"github.com/mediachain/datastore/lib/cborval"
	"github.com/mediachain/datastore/lib/recordtype"
)

// Meta is the pass-through metadata every record carries: CBOR values
// keyed by string, decoded but not otherwise interpreted by this
// package.
type Meta map[string]cborval.Value

// Record is the common interface satisfied by all fourteen variants.
type Record interface {
	// Type reports the record's type tag.
	Type() recordtype.Tag
	// Metadata returns the full top-level field map: structural fields
	// (recomputed from the record's current state) overlaid on the
	// pass-through metadata.
	Metadata() Meta
}

// Entity is a canonical object representing a person, organization, or
// other agent that can be a party to an artefact's provenance.
type Entity struct {
	Meta Meta
}

func (e Entity) Type() recordtype.Tag { return recordtype.Entity }
func (e Entity) Metadata() Meta       { return overlay(e.Meta, structuralEntries(e)) }

// Artefact is a canonical object representing a piece of media or other
// content being tracked in the journal.
type Artefact struct {
	Meta Meta
}

func (a Artefact) Type() recordtype.Tag { return recordtype.Artefact }
func (a Artefact) Metadata() Meta       { return overlay(a.Meta, structuralEntries(a)) }

// EntityChainCell links an Entity to the head of its update chain.
type EntityChainCell struct {
	Entity Reference
	Chain  Reference // optional: nil for the first cell in a chain
	Meta   Meta
}

func (c EntityChainCell) Type() recordtype.Tag { return recordtype.EntityChainCell }
func (c EntityChainCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// EntityUpdateCell records a metadata update to an Entity. It shares
// EntityChainCell's field layout; only the type tag differs.
type EntityUpdateCell struct {
	Entity Reference
	Chain  Reference
	Meta   Meta
}

func (c EntityUpdateCell) Type() recordtype.Tag { return recordtype.EntityUpdateCell }
func (c EntityUpdateCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// EntityLinkCell links two Entities together (for example, merging
// duplicate identities).
type EntityLinkCell struct {
	Entity     Reference
	Chain      Reference
	EntityLink Reference
	Meta       Meta
}

func (c EntityLinkCell) Type() recordtype.Tag { return recordtype.EntityLinkCell }
func (c EntityLinkCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactChainCell links an Artefact to the head of its update chain.
type ArtefactChainCell struct {
	Artefact Reference
	Chain    Reference
	Meta     Meta
}

func (c ArtefactChainCell) Type() recordtype.Tag { return recordtype.ArtefactChainCell }
func (c ArtefactChainCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactUpdateCell records a metadata update to an Artefact.
type ArtefactUpdateCell struct {
	Artefact Reference
	Chain    Reference
	Meta     Meta
}

func (c ArtefactUpdateCell) Type() recordtype.Tag { return recordtype.ArtefactUpdateCell }
func (c ArtefactUpdateCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactCreationCell records the Entity that created an Artefact.
type ArtefactCreationCell struct {
	Artefact Reference
	Chain    Reference
	Entity   Reference
	Meta     Meta
}

func (c ArtefactCreationCell) Type() recordtype.Tag { return recordtype.ArtefactCreationCell }
func (c ArtefactCreationCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactDerivationCell records that an Artefact was derived from
// another artefact.
type ArtefactDerivationCell struct {
	Artefact       Reference
	Chain          Reference
	ArtefactOrigin Reference
	Meta           Meta
}

func (c ArtefactDerivationCell) Type() recordtype.Tag { return recordtype.ArtefactDerivationCell }
func (c ArtefactDerivationCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactOwnershipCell records the Entity that holds rights over an
// Artefact.
type ArtefactOwnershipCell struct {
	Artefact Reference
	Chain    Reference
	Entity   Reference
	Meta     Meta
}

func (c ArtefactOwnershipCell) Type() recordtype.Tag { return recordtype.ArtefactOwnershipCell }
func (c ArtefactOwnershipCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// ArtefactReferenceCell records an Entity that referenced an Artefact.
type ArtefactReferenceCell struct {
	Artefact Reference
	Chain    Reference
	Entity   Reference
	Meta     Meta
}

func (c ArtefactReferenceCell) Type() recordtype.Tag { return recordtype.ArtefactReferenceCell }
func (c ArtefactReferenceCell) Metadata() Meta       { return overlay(c.Meta, structuralEntries(c)) }

// CanonicalEntry is a journal entry recording the first appearance of a
// canonical object at a given journal index.
type CanonicalEntry struct {
	Index big.Int
	Ref   Reference
	Meta  Meta
}

func (e CanonicalEntry) Type() recordtype.Tag { return recordtype.CanonicalEntry }
func (e CanonicalEntry) Metadata() Meta       { return overlay(e.Meta, structuralEntries(e)) }

// ChainEntry is a journal entry recording a new chain cell appended to
// a canonical object's chain, at a given journal index.
type ChainEntry struct {
	Index         big.Int
	Ref           Reference
	Chain         Reference
	ChainPrevious Reference // optional: nil for the first entry in a chain
	Meta          Meta
}

func (e ChainEntry) Type() recordtype.Tag { return recordtype.ChainEntry }
func (e ChainEntry) Metadata() Meta       { return overlay(e.Meta, structuralEntries(e)) }

// JournalBlock groups a contiguous run of journal entries.
type JournalBlock struct {
	Index   big.Int
	Chain   Reference // optional: nil for the first block
	Entries []Record  // each a CanonicalEntry or ChainEntry
	Meta    Meta
}

func (b JournalBlock) Type() recordtype.Tag { return recordtype.JournalBlock }
func (b JournalBlock) Metadata() Meta       { return overlay(b.Meta, structuralEntries(b)) }

// overlay copies meta, then sets every structural key to its current
// value, so structural fields always win over a same-named metadata
// entry that happens to collide with one.
func overlay(meta Meta, structural []cborval.Entry) Meta {
	out := make(Meta, len(meta)+len(structural))
	for k, v := range meta {
		out[k] = v
	}
	for _, e := range structural {
		if k, ok := e.Key.AsText(); ok {
			out[k] = e.Val
		}
	}
	return out
}
