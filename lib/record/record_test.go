// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record_test

import (
	"math/rand"
	"testing"

	"github.com/mediachain/datastore/lib/cborval"
	"github.com/mediachain/datastore/lib/record"
	"github.com/mediachain/datastore/lib/recordgen"
	"github.com/mediachain/datastore/lib/recordtype"
)

func TestEntityType(t *testing.T) {
	e := record.Entity{}
	if e.Type() != recordtype.Entity {
		t.Errorf("Type() = %q, want %q", e.Type(), recordtype.Entity)
	}
}

func TestMetadataIncludesPassThroughFields(t *testing.T) {
	e := record.Entity{Meta: record.Meta{"name": cborval.Text("Ada Lovelace")}}
	m := e.Metadata()

	if v, ok := m["name"]; !ok {
		t.Fatal("Metadata() missing pass-through \"name\"")
	} else if s, _ := v.AsText(); s != "Ada Lovelace" {
		t.Errorf("name = %q", s)
	}
	if v, ok := m["type"]; !ok {
		t.Fatal("Metadata() missing structural \"type\"")
	} else if s, _ := v.AsText(); s != "entity" {
		t.Errorf("type = %q, want entity", s)
	}
}

func TestMetadataReflectsCurrentFieldValues(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cell := recordgen.EntityChainCell(r)
	replacement := recordgen.Reference(r)
	cell.Entity = replacement

	m := cell.Metadata()
	entityVal, ok := m["entity"]
	if !ok {
		t.Fatal("Metadata() missing \"entity\"")
	}
	entries, ok := entityVal.AsMap()
	if !ok {
		t.Fatal("\"entity\" field is not a reference map")
	}
	linkVal, ok := entries[0].Val.AsBytes()
	if !ok {
		t.Fatal("reference \"@link\" is not a byte string")
	}
	if string(linkVal) != string(replacement.Multihash().Bytes()) {
		t.Error("Metadata() did not reflect the updated Entity field")
	}
}

func TestArtefactCreationCellStructuralFields(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	cell := recordgen.ArtefactCreationCell(r)

	m := cell.Metadata()
	for _, key := range []string{"type", "artefact", "entity"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Metadata() missing required structural key %q", key)
		}
	}
}
