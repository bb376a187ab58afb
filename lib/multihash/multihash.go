// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package multihash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SHA256Code is the multihash algorithm code for SHA-256, per the
// multihash table (https://github.com/multiformats/multicodec).
const SHA256Code byte = 0x12

// SHA256Length is the digest length, in bytes, of a SHA-256 multihash.
const SHA256Length byte = 0x20

// Multihash is a self-describing content address: a one-byte algorithm
// code, a one-byte digest length, and the digest itself. Only SHA-256
// (code 0x12, length 0x20, for a 34-byte total envelope) is supported
// today: SumSHA256 and FromBytes are the only constructors, and
// FromBytes rejects every other code, so a Multihash never carries a
// digest nothing in this module can verify.
type Multihash struct {
	code   byte
	length byte
	digest []byte
}

// SumSHA256 computes the SHA-256 multihash of data.
func SumSHA256(data []byte) Multihash {
	sum := sha256.Sum256(data)
	return Multihash{code: SHA256Code, length: SHA256Length, digest: sum[:]}
}

// FromBytes parses a multihash envelope: one algorithm-code byte, one
// length byte, then that many digest bytes. It fails if the length byte
// doesn't match the number of digest bytes present, or if the envelope
// describes an algorithm other than SHA-256.
func FromBytes(b []byte) (Multihash, error) {
	if len(b) < 2 {
		return Multihash{}, fmt.Errorf("multihash: envelope too short: %d bytes", len(b))
	}

	code, length := b[0], b[1]
	digest := b[2:]
	if int(length) != len(digest) {
		return Multihash{}, fmt.Errorf("multihash: declared length %d does not match digest length %d", length, len(digest))
	}
	if code != SHA256Code {
		return Multihash{}, fmt.Errorf("multihash: unsupported algorithm code 0x%02x", code)
	}
	if length != SHA256Length {
		return Multihash{}, fmt.Errorf("multihash: sha-256 digest must be %d bytes, got %d", SHA256Length, length)
	}

	out := make([]byte, len(digest))
	copy(out, digest)
	return Multihash{code: code, length: length, digest: out}, nil
}

// Bytes returns the full multihash envelope: algorithm code, length,
// digest.
func (m Multihash) Bytes() []byte {
	out := make([]byte, 0, 2+len(m.digest))
	out = append(out, m.code, m.length)
	out = append(out, m.digest...)
	return out
}

// Digest returns a copy of the raw hash digest, without the envelope
// header.
func (m Multihash) Digest() []byte {
	return append([]byte(nil), m.digest...)
}

// Code reports the algorithm code of m.
func (m Multihash) Code() byte { return m.code }

// String returns the hex encoding of the full envelope (header +
// digest), the canonical textual representation used in logs and test
// fixtures.
func (m Multihash) String() string {
	return hex.EncodeToString(m.Bytes())
}
