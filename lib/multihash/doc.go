// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

// Package multihash implements the self-describing content address used
// throughout the record model: a one-byte algorithm code, a one-byte
// digest length, and the digest bytes themselves.
//
// The API surface is small:
//
//   - [SumSHA256] -- hashes a byte slice and wraps the digest in a
//     SHA-256 multihash envelope
//   - [FromBytes] -- parses a multihash envelope, validating the header
//     against the digest that follows it
//   - [Multihash.Bytes] -- renders the envelope back to bytes, the form
//     stored inside a Reference's "@link" field
//
// Only SHA-256 is implemented; the envelope format itself is
// forward-compatible with other algorithm codes, should this module
// ever need to support them.
package multihash
