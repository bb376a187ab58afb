// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package multihash

import (
	"crypto/sha256"
	"testing"
)

func TestSumSHA256(t *testing.T) {
	content := []byte("hello, mediachain")
	got := SumSHA256(content)

	want := sha256.Sum256(content)
	if got.Code() != SHA256Code {
		t.Errorf("Code() = 0x%02x, want 0x%02x", got.Code(), SHA256Code)
	}
	if string(got.Digest()) != string(want[:]) {
		t.Errorf("Digest() = %x, want %x", got.Digest(), want)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	original := SumSHA256([]byte("round-trip"))
	parsed, err := FromBytes(original.Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round trip = %s, want %s", parsed.String(), original.String())
	}
}

func TestSumSHA256Deterministic(t *testing.T) {
	content := []byte("determinism check")
	first := SumSHA256(content)
	second := SumSHA256(content)
	if first.String() != second.String() {
		t.Errorf("SumSHA256 not deterministic: %s != %s", first.String(), second.String())
	}
}

func TestSumSHA256DifferentContent(t *testing.T) {
	a := SumSHA256([]byte("content A"))
	b := SumSHA256([]byte("content B"))
	if a.String() == b.String() {
		t.Error("different content should produce different multihashes")
	}
}

func TestBytesEnvelopeLength(t *testing.T) {
	mh := SumSHA256([]byte("envelope"))
	if length := len(mh.Bytes()); length != 34 {
		t.Errorf("Bytes() length = %d, want 34", length)
	}
}

func TestFromBytesInvalid(t *testing.T) {
	validDigest := SumSHA256([]byte("x")).Digest()

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"too short", []byte{0x12}},
		{"length mismatch", append([]byte{0x12, 0x20}, validDigest[:10]...)},
		{"unsupported algorithm", append([]byte{0x99, 0x20}, validDigest...)},
		{"wrong length for sha-256", append([]byte{0x12, 0x10}, validDigest[:16]...)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := FromBytes(test.input); err == nil {
				t.Errorf("FromBytes(%x) should fail", test.input)
			}
		})
	}
}
