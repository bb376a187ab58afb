// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

// Package record implements the content-addressed record model: the
// fourteen canonical object, chain cell, and journal variants, their
// deterministic CBOR serialization, and polymorphic deserialization
// dispatch keyed by a closed type-tag registry.
//
// Every variant is a plain struct implementing the Record interface.
// Structural fields (references, indices) are ordinary typed struct
// fields; everything else the record carries arrives through Meta, the
// pass-through metadata map. Metadata always returns the full map —
// structural fields included, recomputed from the struct's current
// field values — so a record looks the same to a caller whether it
// came from ToCbor/FromCborBytes or was built directly.
//
// Encoding goes through ToCbor/ToCborBytes. Decoding goes through
// FromCbor/FromCborBytes, parameterized by a DeserializerMap: either
// TransactorPreset (subtypes collapse to their generic parent) or
// DatastorePreset (every subtype keeps its own identity), the latter
// being DefaultDeserializerMap.
//
// Every decode operation returns an *Error from the closed taxonomy in
// errors.go; nothing in this package panics on malformed input.
// Encoding errors from ToCborBytes and ReferenceForDataObject are the
// cborval encoder's errors, wrapped with fmt.Errorf.
package record
