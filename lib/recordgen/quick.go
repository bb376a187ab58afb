// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package recordgen

import (
	"math/rand"
	"reflect"

	"github.com/mediachain/datastore/lib/record"
)

// Value wraps a record.Record so it can drive testing/quick.Check
// directly, without a manual generation loop in every caller. The
// underlying record package stays free of any testing/quick
// dependency; Value satisfies quick.Generator by its method set alone,
// so this file does not import testing/quick either.
type Value struct {
	record.Record
}

// Generate implements quick.Generator.
func (Value) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Value{Record(r)})
}
