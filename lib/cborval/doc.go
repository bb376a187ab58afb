// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

// Package cborval provides a typed, introspectable CBOR value model on
// top of github.com/fxamacker/cbor/v2.
//
// Decoding CBOR into a Go interface{} gives back "any", forcing callers
// to type-switch at every level of a nested map/array before they can
// do anything useful with it. Value wraps that shape once, in this
// package, so the record layer can use Get/AsText/AsArray accessors
// instead of repeating those type switches at every decode site.
//
// Encode always produces Core Deterministic Encoding (RFC 8949 §4.2):
// map keys sorted by the bytes of their own CBOR encoding (so a shorter
// text key comes before a longer one), shortest-form integers,
// definite-length collections, and no NaN/±Inf floats (Encode returns
// an error for them). DecodeSequence
// reads every top-level item out of a byte slice, the same way a CBOR
// sequence (RFC 8742) would be consumed one item at a time.
//
// Map values support only text-string keys; Encode returns an error if
// asked to encode anything else, since no caller in this module ever
// needs a non-text map key.
package cborval
