// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of ways record decoding can fail.
type ErrorKind int

const (
	// ErrCborDecodingFailed means the input bytes were not valid CBOR,
	// or the CBOR stream was empty.
	ErrCborDecodingFailed ErrorKind = iota
	// ErrUnexpectedCborType means a field held a CBOR value of the
	// wrong shape (for example, a text string where a map was
	// expected).
	ErrUnexpectedCborType
	// ErrReferenceDecodingFailed means a "@link"-shaped reference value
	// could not be decoded into a multihash.
	ErrReferenceDecodingFailed
	// ErrTypeNameNotFound means the top-level map had no "type" field.
	ErrTypeNameNotFound
	// ErrUnexpectedObjectType means the "type" field named a tag this
	// DeserializerMap has no decoder for, or named a tag outside the
	// closed registry, or (during strict decoding) named a tag other
	// than the one the decoder was asked to produce.
	ErrUnexpectedObjectType
	// ErrRequiredFieldNotFound means a field required by the record's
	// type tag was absent from the map.
	ErrRequiredFieldNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case ErrCborDecodingFailed:
		return "CborDecodingFailed"
	case ErrUnexpectedCborType:
		return "UnexpectedCborType"
	case ErrReferenceDecodingFailed:
		return "ReferenceDecodingFailed"
	case ErrTypeNameNotFound:
		return "TypeNameNotFound"
	case ErrUnexpectedObjectType:
		return "UnexpectedObjectType"
	case ErrRequiredFieldNotFound:
		return "RequiredFieldNotFound"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every decode operation in this
// package. Its Kind selects which of Field, TypeName, or Detail is
// meaningful; no construction happens outside the named functions
// below, so a caller never has to guess which fields a given Kind
// populates.
type Error struct {
	Kind     ErrorKind
	Field    string // set for ErrRequiredFieldNotFound
	TypeName string // set for ErrUnexpectedObjectType
	Detail   string // set for ErrCborDecodingFailed, ErrUnexpectedCborType, ErrReferenceDecodingFailed
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrCborDecodingFailed:
		if e.Detail != "" {
			return fmt.Sprintf("record: malformed CBOR: %s", e.Detail)
		}
		return "record: malformed CBOR"
	case ErrUnexpectedCborType:
		return fmt.Sprintf("record: unexpected CBOR type: %s", e.Detail)
	case ErrReferenceDecodingFailed:
		return fmt.Sprintf("record: reference decoding failed: %s", e.Detail)
	case ErrTypeNameNotFound:
		return "record: no \"type\" field found"
	case ErrUnexpectedObjectType:
		return fmt.Sprintf("record: unexpected object type %q", e.TypeName)
	case ErrRequiredFieldNotFound:
		return fmt.Sprintf("record: required field %q not found", e.Field)
	default:
		return "record: unknown error"
	}
}

func cborDecodingFailed(detail string) *Error      { return &Error{Kind: ErrCborDecodingFailed, Detail: detail} }
func unexpectedCborType(detail string) *Error      { return &Error{Kind: ErrUnexpectedCborType, Detail: detail} }
func referenceDecodingFailed(detail string) *Error { return &Error{Kind: ErrReferenceDecodingFailed, Detail: detail} }
func typeNameNotFound() *Error                     { return &Error{Kind: ErrTypeNameNotFound} }
func unexpectedObjectType(typeName string) *Error  { return &Error{Kind: ErrUnexpectedObjectType, TypeName: typeName} }
func requiredFieldNotFound(field string) *Error    { return &Error{Kind: ErrRequiredFieldNotFound, Field: field} }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func IsCborDecodingFailed(err error) bool      { return IsKind(err, ErrCborDecodingFailed) }
func IsUnexpectedCborType(err error) bool      { return IsKind(err, ErrUnexpectedCborType) }
func IsReferenceDecodingFailed(err error) bool { return IsKind(err, ErrReferenceDecodingFailed) }
func IsTypeNameNotFound(err error) bool        { return IsKind(err, ErrTypeNameNotFound) }
func IsUnexpectedObjectType(err error) bool    { return IsKind(err, ErrUnexpectedObjectType) }
func IsRequiredFieldNotFound(err error) bool   { return IsKind(err, ErrRequiredFieldNotFound) }
