// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by JSON
// serialization) since adding more tags does not complicate definition
// of a struct, but can prevent unnecessary structs duplication.
package model

// User models an authenticated account as resolved by the upstream
// authentication gateway. Password and token verification are out of
// the scope of this backend; only the identity, the internal-user
// flags, and the granted permission codenames are relevant here.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`

	// Perms holds the permission codenames granted to this user,
	// like "vehicles.add_vehicle". It is loaded alongside the user
	// row and never serialized in API responses.
	Perms []string `json:"-"`
}

// HasPerm reports whether the permission codename is granted to u,
// regardless of the staff/superuser flags.
func (u *User) HasPerm(codename string) bool {
	for _, p := range u.Perms {
		if p == codename {
			return true
		}
	}
	return false
}
