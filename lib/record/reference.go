// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record

import "github.com/mediachain/datastore/lib/multihash"

// Reference is a content address pointing at a serialized record.
// MultihashReference is the only implementation today, but decoders
// are written against this interface so a future addressing scheme
// could be added without touching the decode dispatch logic.
type Reference interface {
	Multihash() multihash.Multihash
}

// MultihashReference addresses a record by the SHA-256 multihash of its
// canonical CBOR encoding.
type MultihashReference struct {
	hash multihash.Multihash
}

// NewMultihashReference wraps an already-computed multihash as a
// Reference.
func NewMultihashReference(h multihash.Multihash) MultihashReference {
	return MultihashReference{hash: h}
}

func (r MultihashReference) Multihash() multihash.Multihash { return r.hash }

// ReferenceForBytes returns the content address of data.
func ReferenceForBytes(data []byte) MultihashReference {
	return MultihashReference{hash: multihash.SumSHA256(data)}
}

// ReferenceForDataObject returns the content address of r: the
// multihash of r's canonical CBOR encoding.
func ReferenceForDataObject(r Record) (MultihashReference, error) {
	data, err := ToCborBytes(r)
	if err != nil {
		return MultihashReference{}, err
	}
	return ReferenceForBytes(data), nil
}
