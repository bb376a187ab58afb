// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package cborval

import (
	"math"
	"math/big"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// Kind identifies which of the CBOR major types a Value holds.
type Kind uint8

const (
	KindUint Kind = iota
	KindNegInt
	KindBytes
	KindText
	KindArray
	KindMap
	KindTag
	KindBool
	KindNull
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindNegInt:
		return "negint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a Value of kind KindMap.
type Entry struct {
	Key Value
	Val Value
}

// Value is a typed, introspectable CBOR data model. It sits between the
// raw bytes on the wire and the Go "any" representation fxamacker/cbor
// produces when decoding into an interface{} — giving record decoding
// code stable accessors instead of scattered type switches over "any".
//
// Only text-string map keys are supported; record bodies never use
// anything else, so Encode rejects a map entry whose key is not
// KindText rather than silently losing information.
type Value struct {
	kind Kind

	u   uint64 // KindUint, KindNegInt (magnitude, see AsInt/NegIntMagnitude)
	bs  []byte // KindBytes
	txt string // KindText
	arr []Value
	m   []Entry

	tagNum uint64
	tagVal *Value

	boolVal  bool
	floatVal float64
}

func Uint(n uint64) Value { return Value{kind: KindUint, u: n} }

// Int builds the shortest-fitting integer Value for n, choosing KindUint
// or KindNegInt as CBOR's own integer encoding does.
func Int(n int64) Value {
	if n >= 0 {
		return Uint(uint64(n))
	}
	return Value{kind: KindNegInt, u: uint64(-1 - n)}
}

func Bytes(b []byte) Value  { return Value{kind: KindBytes, bs: b} }
func Text(s string) Value   { return Value{kind: KindText, txt: s} }
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }
func Map(entries ...Entry) Value { return Value{kind: KindMap, m: entries} }
func Bool(b bool) Value     { return Value{kind: KindBool, boolVal: b} }
func Null() Value           { return Value{kind: KindNull} }
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// TagValue wraps content in a CBOR tag with the given tag number.
func TagValue(number uint64, content Value) Value {
	c := content
	return Value{kind: KindTag, tagNum: number, tagVal: &c}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

// AsInt returns v as an int64, for KindUint or KindNegInt values whose
// magnitude fits. Values outside the int64 range (large positive
// KindUint, or KindNegInt with NegIntMagnitude > math.MaxInt64) report
// ok=false; callers needing the full range use AsUint/NegIntMagnitude
// directly, or go through a bignum tag.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindUint:
		if v.u > 1<<63-1 {
			return 0, false
		}
		return int64(v.u), true
	case KindNegInt:
		if v.u > 1<<63-1 {
			return 0, false
		}
		return -1 - int64(v.u), true
	default:
		return 0, false
	}
}

// NegIntMagnitude returns the raw magnitude u of a KindNegInt value,
// where the represented integer is -1-u. Use this instead of AsInt when
// the magnitude may exceed math.MaxInt64.
func (v Value) NegIntMagnitude() (uint64, bool) {
	if v.kind != KindNegInt {
		return 0, false
	}
	return v.u, true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bs, true
}

func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.txt, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsMap() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.floatVal, true
}

// Tag returns the tag number and wrapped content of a KindTag value.
func (v Value) Tag() (number uint64, content Value, ok bool) {
	if v.kind != KindTag {
		return 0, Value{}, false
	}
	return v.tagNum, *v.tagVal, true
}

// Get looks up key in a KindMap value. It returns ok=false both when v
// is not a map and when the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.m {
		if t, ok := e.Key.AsText(); ok && t == key {
			return e.Val, true
		}
	}
	return Value{}, false
}

// toNative converts v into the "any" shape fxamacker/cbor expects from
// Marshal: uint64/int64 for integers, []byte, string, []any, map[string]any,
// cbor.Tag, bool, nil, float64.
func (v Value) toNative() (any, error) {
	switch v.kind {
	case KindUint:
		return v.u, nil
	case KindNegInt:
		if v.u > 1<<63-1 {
			return nil, &encodeError{detail: "negative integer magnitude exceeds int64 range"}
		}
		return -1 - int64(v.u), nil
	case KindBytes:
		return v.bs, nil
	case KindText:
		return v.txt, nil
	case KindArray:
		items := make([]any, len(v.arr))
		for i, e := range v.arr {
			n, err := e.toNative()
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return items, nil
	case KindMap:
		out := make(map[string]any, len(v.m))
		for _, e := range v.m {
			key, ok := e.Key.AsText()
			if !ok {
				return nil, &encodeError{detail: "map key of kind " + e.Key.kind.String() + " is not a text string"}
			}
			val, err := e.Val.toNative()
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	case KindTag:
		content, err := v.tagVal.toNative()
		if err != nil {
			return nil, err
		}
		return cbor.Tag{Number: v.tagNum, Content: content}, nil
	case KindBool:
		return v.boolVal, nil
	case KindNull:
		return nil, nil
	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return nil, &encodeError{detail: "NaN and infinite floats cannot be encoded"}
		}
		return v.floatVal, nil
	default:
		return nil, &encodeError{detail: "unknown value kind"}
	}
}

type encodeError struct{ detail string }

func (e *encodeError) Error() string { return "cborval: " + e.detail }

// fromNative converts the "any" shape produced by decoding into
// map[string]any/[]any into a Value.
func fromNative(x any) Value {
	switch val := x.(type) {
	case uint64:
		return Uint(val)
	case int64:
		if val >= 0 {
			return Uint(uint64(val))
		}
		return Value{kind: KindNegInt, u: uint64(-1 - val)}
	case []byte:
		return Bytes(val)
	case string:
		return Text(val)
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = fromNative(item)
		}
		return Array(items...)
	case map[string]any:
		return mapFromNative(val)
	case bool:
		return Bool(val)
	case nil:
		return Null()
	case float64:
		return Float(val)
	case cbor.Tag:
		inner := fromNative(val.Content)
		return Value{kind: KindTag, tagNum: val.Number, tagVal: &inner}
	case big.Int:
		return bignumTagValue(val)
	case *big.Int:
		return bignumTagValue(*val)
	default:
		// DecOptions in this package only ever produce the types above;
		// this default exists so the conversion function stays total.
		return Null()
	}
}

// bignumTagValue renders n as the tag-2 (positive) or tag-3 (negative)
// bignum Value that would have produced it on the wire, per RFC 8949
// §3.4.3. decMode's default BigIntDec setting hands fromNative a
// big.Int for any tag-2/3 item regardless of magnitude — including ones
// that would fit in an int64/uint64 — so this always goes through the
// tag representation rather than trying to collapse small bignums back
// into KindUint/KindNegInt.
func bignumTagValue(n big.Int) Value {
	if n.Sign() >= 0 {
		return TagValue(2, Bytes(n.Bytes()))
	}
	mag := new(big.Int).Neg(&n)
	mag.Sub(mag, big.NewInt(1)) // mag = -n - 1
	return TagValue(3, Bytes(mag.Bytes()))
}

func mapFromNative(m map[string]any) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // UTF-8 byte order, matching Go's native string less-than
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: Text(k), Val: fromNative(m[k])}
	}
	return Value{kind: KindMap, m: entries}
}
