// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package recordgen

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/mediachain/datastore/lib/record"
)

func TestRecordProducesEveryVariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seenTags := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		rec := Record(r)
		seenTags[string(rec.Type())] = true
	}
	if len(seenTags) != 14 {
		t.Errorf("Record() produced %d distinct type tags in 2000 draws, want 14: %v", len(seenTags), seenTags)
	}
}

func TestRecordEncodesWithoutPanicking(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		rec := Record(r)
		if _, err := record.ToCborBytes(rec); err != nil {
			t.Fatalf("ToCborBytes(%T): %v", rec, err)
		}
	}
}

func TestValueGeneratorSatisfiesQuickCheck(t *testing.T) {
	f := func(v Value) bool {
		_, err := record.ToCborBytes(v.Record)
		return err == nil
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
