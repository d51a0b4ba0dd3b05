// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Vehicle models a vehicle registered in the parking lot. The
// brand/model/color/type relations are reported by name (as resolved
// from their lookup tables) while Owner carries the bare user id.
// A nil relation means the vehicle was registered without that datum
// (the asynchronous enrichment job may fill it in later).
type Vehicle struct {
	ID           int64     `json:"id"`
	Owner        *int64    `json:"owner"`
	LicensePlate string    `json:"license_plate"`
	VehicleType  *string   `json:"vehicle_type"`
	Brand        *string   `json:"brand"`
	Model        *string   `json:"model"`
	Color        *string   `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MissingData reports whether any of the enrichable relations is
// absent, making v a candidate for the plate enrichment job.
func (v *Vehicle) MissingData() bool {
	return v.Brand == nil || v.Model == nil || v.Color == nil
}

// VehicleFilter restricts a vehicles listing. All fields match
// case-insensitively as substrings against the plate or the related
// lookup names; nil fields impose no constraint.
type VehicleFilter struct {
	LicensePlate *string `form:"license_plate"`
	Brand        *string `form:"brand"`
	Model        *string `form:"model"`
	Color        *string `form:"color"`
	VehicleType  *string `form:"vehicle_type"`
}
