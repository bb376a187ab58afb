// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package cborval

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := Map(
		Entry{Key: Text("name"), Val: Text("mediachain")},
		Entry{Key: Text("count"), Val: Int(42)},
		Entry{Key: Text("tags"), Val: Array(Text("a"), Text("b"))},
	)

	data, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	values, err := DecodeSequence(data)
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("DecodeSequence returned %d values, want 1", len(values))
	}

	got := values[0]
	name, ok := got.Get("name")
	if !ok {
		t.Fatal("decoded map missing \"name\"")
	}
	if s, _ := name.AsText(); s != "mediachain" {
		t.Errorf("name = %q, want mediachain", s)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a := Map(
		Entry{Key: Text("b"), Val: Int(2)},
		Entry{Key: Text("a"), Val: Int(1)},
	)
	b := Map(
		Entry{Key: Text("a"), Val: Int(1)},
		Entry{Key: Text("b"), Val: Int(2)},
	)

	encA, err := Encode(a)
	if err != nil {
		t.Fatalf("Encode(a): %v", err)
	}
	encB, err := Encode(b)
	if err != nil {
		t.Fatalf("Encode(b): %v", err)
	}

	if !bytes.Equal(encA, encB) {
		t.Errorf("Encode is not key-order independent: %x != %x", encA, encB)
	}
}

func TestEncodeRejectsNonTextMapKey(t *testing.T) {
	v := Map(Entry{Key: Int(1), Val: Text("x")})
	if _, err := Encode(v); err == nil {
		t.Error("Encode should reject a non-text map key")
	}
}

func TestDecodeSequenceMultipleItems(t *testing.T) {
	one, err := Encode(Int(1))
	if err != nil {
		t.Fatalf("Encode(1): %v", err)
	}
	two, err := Encode(Int(2))
	if err != nil {
		t.Fatalf("Encode(2): %v", err)
	}

	values, err := DecodeSequence(append(one, two...))
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("DecodeSequence returned %d values, want 2", len(values))
	}
	if n, _ := values[0].AsInt(); n != 1 {
		t.Errorf("values[0] = %d, want 1", n)
	}
	if n, _ := values[1].AsInt(); n != 2 {
		t.Errorf("values[1] = %d, want 2", n)
	}
}

func TestDecodeSequenceEmpty(t *testing.T) {
	values, err := DecodeSequence(nil)
	if err != nil {
		t.Fatalf("DecodeSequence(nil): %v", err)
	}
	if len(values) != 0 {
		t.Errorf("DecodeSequence(nil) = %d values, want 0", len(values))
	}
}

func TestDecodeSequenceMalformed(t *testing.T) {
	if _, err := DecodeSequence([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Error("DecodeSequence should fail on malformed CBOR")
	}
}

func TestSelfDescribeTagRoundTrip(t *testing.T) {
	wrapped := TagValue(55799, Map(Entry{Key: Text("type"), Val: Text("entity")}))
	data, err := Encode(wrapped)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	values, err := DecodeSequence(data)
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("got %d values, want 1", len(values))
	}

	num, content, ok := values[0].Tag()
	if !ok || num != 55799 {
		t.Fatalf("Tag() = %d, %v, want 55799, true", num, ok)
	}
	if _, ok := content.Get("type"); !ok {
		t.Error("unwrapped tag content missing \"type\"")
	}
}

func TestBignumTagRoundTrip(t *testing.T) {
	// A tag-2 bignum whose magnitude exceeds uint64 (2^64), the shape
	// record.bigIntToValue emits for a journal index that outgrows
	// int64/uint64. fxamacker decodes tag 2/3 into a big.Int when the
	// target is "any"; fromNative has to convert that back into the
	// same tag-2/3 Value shape rather than dropping it.
	magnitude := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0} // 2^64
	wrapped := TagValue(2, Bytes(magnitude))

	data, err := Encode(wrapped)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	values, err := DecodeSequence(data)
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("got %d values, want 1", len(values))
	}

	num, content, ok := values[0].Tag()
	if !ok {
		t.Fatalf("decoded value kind = %s, want KindTag", values[0].Kind())
	}
	if num != 2 {
		t.Errorf("tag number = %d, want 2", num)
	}
	got, ok := content.AsBytes()
	if !ok {
		t.Fatal("tag content is not a byte string")
	}
	if !bytes.Equal(got, magnitude) {
		t.Errorf("tag content = %x, want %x", got, magnitude)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Encode(Int(1))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if s != "1" {
		t.Errorf("Diagnose(1) = %q, want %q", s, "1")
	}
}
