// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package cborval

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, shortest-form integers,
// definite-length collections. NaN and ±Inf never reach it: toNative
// rejects them first. Same Value always produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder used to turn wire bytes into the "any"
// shape fromNative converts into Values.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cborval: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Every map this package decodes has text-string keys; pick
		// map[string]any instead of CBOR's default map[interface{}]interface{}
		// so fromNative never has to handle a non-string-keyed map.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cborval: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode renders v to its canonical CBOR byte representation using Core
// Deterministic Encoding. The same Value always encodes to the same
// bytes, which is what makes content addressing over the result
// meaningful.
func Encode(v Value) ([]byte, error) {
	native, err := v.toNative()
	if err != nil {
		return nil, fmt.Errorf("cborval: encode: %w", err)
	}
	return encMode.Marshal(native)
}

// DecodeSequence reads every top-level CBOR data item in data and
// returns them as Values, in order. An empty slice with no error is
// returned for empty input. A top-level item that starts with the
// self-describe tag (55799) comes back as a KindTag Value wrapping the
// item's content.
func DecodeSequence(data []byte) ([]Value, error) {
	// The library drops tag 55799 when decoding into "any", so its head
	// bytes are checked here on the raw input instead.
	selfDescribeHead := []byte{0xd9, 0xd9, 0xf7}
	dec := decMode.NewDecoder(bytes.NewReader(data))
	var values []Value
	for {
		start := dec.NumBytesRead()
		var native any
		if err := dec.Decode(&native); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("cborval: decoding item %d: %w", len(values), err)
		}
		v := fromNative(native)
		if bytes.HasPrefix(data[start:], selfDescribeHead) {
			v = TagValue(55799, v)
		}
		values = append(values, v)
	}
	return values, nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data. Useful in tests and error messages, not on
// any decode path.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
