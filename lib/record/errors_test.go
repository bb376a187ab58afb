// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mediachain/datastore/lib/record"
)

func TestErrorKindHelpersMatchOnlyTheirOwnKind(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"RequiredFieldNotFound", &record.Error{Kind: record.ErrRequiredFieldNotFound, Field: "entity"}, record.IsRequiredFieldNotFound},
		{"UnexpectedObjectType", &record.Error{Kind: record.ErrUnexpectedObjectType, TypeName: "bogus"}, record.IsUnexpectedObjectType},
		{"ReferenceDecodingFailed", &record.Error{Kind: record.ErrReferenceDecodingFailed, Detail: "bad link"}, record.IsReferenceDecodingFailed},
		{"TypeNameNotFound", &record.Error{Kind: record.ErrTypeNameNotFound}, record.IsTypeNameNotFound},
		{"UnexpectedCborType", &record.Error{Kind: record.ErrUnexpectedCborType, Detail: "not a map"}, record.IsUnexpectedCborType},
		{"CborDecodingFailed", &record.Error{Kind: record.ErrCborDecodingFailed, Detail: "truncated"}, record.IsCborDecodingFailed},
	}

	allChecks := []func(error) bool{
		record.IsRequiredFieldNotFound,
		record.IsUnexpectedObjectType,
		record.IsReferenceDecodingFailed,
		record.IsTypeNameNotFound,
		record.IsUnexpectedCborType,
		record.IsCborDecodingFailed,
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.check(c.err) {
				t.Errorf("%s check returned false for its own error", c.name)
			}
			matches := 0
			for _, check := range allChecks {
				if check(c.err) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%s matched %d Is* helpers, want exactly 1", c.name, matches)
			}
		})
	}
}

func TestErrorIsWrappable(t *testing.T) {
	base := &record.Error{Kind: record.ErrTypeNameNotFound}
	wrapped := fmt.Errorf("decoding journal block: %w", base)

	if !record.IsTypeNameNotFound(wrapped) {
		t.Error("IsTypeNameNotFound should see through fmt.Errorf wrapping")
	}

	var target *record.Error
	if !errors.As(wrapped, &target) {
		t.Error("errors.As should unwrap to *record.Error")
	}
}

func TestErrorMessagesAreInformative(t *testing.T) {
	tests := []struct {
		err  *record.Error
		want string
	}{
		{&record.Error{Kind: record.ErrRequiredFieldNotFound, Field: "entity"}, `record: required field "entity" not found`},
		{&record.Error{Kind: record.ErrUnexpectedObjectType, TypeName: "bogus"}, `record: unexpected object type "bogus"`},
		{&record.Error{Kind: record.ErrTypeNameNotFound}, `record: no "type" field found`},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}
}
