// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authz implements the per-endpoint permission gate. The
// authenticated user identity is always passed explicitly as a
// parameter (there is no ambient request-bound user state), so the
// rules stay deterministic and trivially testable.
package authz

import "github.com/opencarpark/parkapi/pkg/core/model"

// IsInternal reports whether u is a staff or superuser account.
// Internal users bypass both the permission checks and the ownership
// scoping of vehicles and parking records.
func IsInternal(u *model.User) bool {
	return u != nil && (u.IsStaff || u.IsSuperuser)
}

// HasPermissions reports whether u may perform an operation gated by
// the perms codenames. An anonymous caller (nil user) is always
// denied. With an empty perms set only internal users pass.
// Otherwise internal users pass unconditionally and other users must
// hold every named permission.
func HasPermissions(u *model.User, perms []string) bool {
	if u == nil {
		return false
	}
	if IsInternal(u) {
		return true
	}
	if len(perms) == 0 {
		return false
	}
	for _, p := range perms {
		if !u.HasPerm(p) {
			return false
		}
	}
	return true
}
