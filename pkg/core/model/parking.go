// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// ParkingSpot models a numbered spot of the lot. IsOccupied is not
// enforced by a constraint; it is reconciled from the parking records
// by the occupancy handler on every record write.
type ParkingSpot struct {
	ID         int64     `json:"id"`
	SpotNumber string    `json:"spot_number"`
	IsOccupied bool      `json:"is_occupied"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ParkingRecord models one entry/exit event of a vehicle on a spot.
// Records form a historical log; a nil ExitTime marks a still-parked
// vehicle. Vehicle and Spot carry the bare foreign ids as the API
// reports them.
type ParkingRecord struct {
	ID        int64      `json:"id"`
	Vehicle   int64      `json:"vehicle"`
	Spot      int64      `json:"parking_spot"`
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time"`
}

// SpotFilter restricts a spots listing. SpotNumber matches
// case-insensitively as a substring and IsOccupied exactly; nil
// fields impose no constraint.
type SpotFilter struct {
	SpotNumber *string `form:"spot_number"`
	IsOccupied *bool   `form:"is_occupied"`
}

// RecordFilter restricts a records listing. The plate and spot number
// match case-insensitively as substrings through their relations; the
// timestamps match exactly. Nil fields impose no constraint.
type RecordFilter struct {
	LicensePlate *string    `form:"license_plate"`
	SpotNumber   *string    `form:"spot_number"`
	EntryTime    *time.Time `form:"entry_time"`
	ExitTime     *time.Time `form:"exit_time"`
}
