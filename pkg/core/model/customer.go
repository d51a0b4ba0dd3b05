// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Customer models a parking lot client. The User link is optional so
// walk-in clients can be registered before they get an account.
type Customer struct {
	ID        int64     `json:"id"`
	User      *int64    `json:"user"`
	Name      string    `json:"name"`
	CPF       *string   `json:"cpf"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerFilter restricts a customers listing. Text fields match
// case-insensitively as substrings; nil fields impose no constraint.
type CustomerFilter struct {
	Name  *string `form:"name"`
	CPF   *string `form:"cpf"`
	Phone *string `form:"phone"`
}
