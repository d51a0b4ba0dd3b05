// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// The *Patch structs below represent partial-update payloads. Every
// field is wrapped in Optional (or LookupRef for the id-or-name
// vehicle relations) so an absent field, an explicit null, and a new
// value remain distinguishable all the way down to the repository.

// NewCustomer carries the customer creation payload.
type NewCustomer struct {
	User  *int64  `json:"user_id"`
	Name  string  `json:"name" binding:"required"`
	CPF   *string `json:"cpf"`
	Phone *string `json:"phone"`
}

// CustomerPatch carries a partial customer update.
type CustomerPatch struct {
	User  Optional[int64]  `json:"user_id"`
	Name  Optional[string] `json:"name"`
	CPF   Optional[string] `json:"cpf"`
	Phone Optional[string] `json:"phone"`
}

// NewLookup carries a lookup creation payload. HexCode is only
// accepted for the color kind and Description for the type kind.
type NewLookup struct {
	Name        string  `json:"name" binding:"required"`
	HexCode     *string `json:"hex_code"`
	Description *string `json:"description"`
}

// LookupPatch carries a partial lookup update.
type LookupPatch struct {
	Name        Optional[string] `json:"name"`
	HexCode     Optional[string] `json:"hex_code"`
	Description Optional[string] `json:"description"`
}

// NewVehicle carries the vehicle creation payload. Relations are
// plain lookup ids here; the id-or-name resolution applies to patch
// payloads only, mirroring the registration flow where the enrichment
// job backfills missing data later.
type NewVehicle struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Owner        *int64 `json:"owner_id"`
	VehicleType  *int64 `json:"vehicle_type_id"`
	Brand        *int64 `json:"brand"`
	Model        *int64 `json:"model"`
	Color        *int64 `json:"color"`
}

// VehiclePatch carries a partial vehicle update as supplied by the
// caller, before relation resolution.
type VehiclePatch struct {
	LicensePlate Optional[string] `json:"license_plate"`
	Owner        Optional[int64]  `json:"owner_id"`
	VehicleType  LookupRef        `json:"vehicle_type"`
	Brand        LookupRef        `json:"brand"`
	Model        LookupRef        `json:"model"`
	Color        LookupRef        `json:"color"`
}

// VehicleChanges carries a vehicle patch after every relation has
// been resolved into a concrete lookup id. This is what the
// repository applies column by column.
type VehicleChanges struct {
	LicensePlate Optional[string]
	Owner        Optional[int64]
	VehicleType  Optional[int64]
	Brand        Optional[int64]
	Model        Optional[int64]
	Color        Optional[int64]
}

// NewRecord carries the parking record creation payload. EntryTime is
// set by the server.
type NewRecord struct {
	Vehicle int64 `json:"vehicle_id" binding:"required"`
	Spot    int64 `json:"parking_spot_id" binding:"required"`
}

// RecordPatch carries a partial parking record update. Setting
// ExitTime to a timestamp closes the stay; setting it to null
// re-opens it.
type RecordPatch struct {
	Vehicle  Optional[int64]     `json:"vehicle_id"`
	Spot     Optional[int64]     `json:"parking_spot_id"`
	ExitTime Optional[time.Time] `json:"exit_time"`
}

// SpotPatch carries a partial parking spot update.
type SpotPatch struct {
	SpotNumber Optional[string] `json:"spot_number"`
	IsOccupied Optional[bool]   `json:"is_occupied"`
}
