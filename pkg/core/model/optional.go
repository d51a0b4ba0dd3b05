// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/goccy/go-json"
)

// Optional represents one field of a partial-update payload. It
// distinguishes three states which plain pointers cannot express
// together:
//  1. absent from the payload (Set == false): the field must be left
//     untouched by the patch,
//  2. present with a null value (Set && !Valid): the field must be
//     overwritten to NULL,
//  3. present with a value (Set && Valid): the field must be
//     overwritten with Value.
//
// The zero value of Optional means "absent", so patch structs may be
// declared with plain Optional fields and bound directly from a JSON
// request body.
type Optional[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// Some returns an Optional carrying the v value, as if the field was
// present in the payload with a non-null value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true, Valid: true}
}

// Null returns an Optional representing an explicit null, as if the
// field was present in the payload with a null value.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for
// fields which are present in the payload, hence, Set is raised
// unconditionally while Valid reflects the null-ness of the token.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler, reporting the held value or
// null. The absent state is not representable by a single field and
// callers are expected to skip unset fields themselves.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the held value as a pointer, or nil for the absent and
// null states. It suits assignments to nullable entity fields.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
