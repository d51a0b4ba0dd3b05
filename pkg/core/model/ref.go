// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"

	"github.com/goccy/go-json"
)

// LookupRef is a user-supplied reference to a lookup row, accepted in
// vehicle payloads as either a numeric id (a direct reference which
// must exist) or a free-text name (resolved by find-or-create after
// normalization). Like Optional, it keeps track of whether the field
// was present in the payload at all.
type LookupRef struct {
	ID   *int64
	Name *string
	Set  bool
}

// RefID returns a LookupRef holding a numeric id.
func RefID(id int64) LookupRef {
	return LookupRef{ID: &id, Set: true}
}

// RefName returns a LookupRef holding a free-text name.
func RefName(name string) LookupRef {
	return LookupRef{Name: &name, Set: true}
}

// UnmarshalJSON accepts a JSON number, string, or null. A null keeps
// both ID and Name nil which, like an absent field, leaves the
// current vehicle relation untouched.
func (r *LookupRef) UnmarshalJSON(data []byte) error {
	r.Set = true
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.Name = &s
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return errors.New("expected an id number or a name string")
	}
	r.ID = &id
	return nil
}

// Empty reports whether r carries no reference to resolve, either
// because the field was absent or because it was an explicit null.
func (r LookupRef) Empty() bool {
	return r.ID == nil && r.Name == nil
}
