// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
)

type ParkingConnQueryer interface {
	ParkingQueryer
}

type ParkingTxQueryer interface {
	ParkingQueryer
}

// ParkingQueryer manages parking spots and the entry/exit record log.
// Record listings are owner-scoped like vehicles, through the
// record's vehicle relation.
type ParkingQueryer interface {
	CreateSpot(ctx context.Context, spotNumber string) (*model.ParkingSpot, error)
	ListSpots(ctx context.Context, f model.SpotFilter) ([]model.ParkingSpot, error)
	GetSpot(ctx context.Context, id int64) (*model.ParkingSpot, error)
	PatchSpot(ctx context.Context, id int64, p model.SpotPatch) (*model.ParkingSpot, error)
	DeleteSpot(ctx context.Context, id int64) error

	// SetSpotOccupied persists the reconciled occupancy flag. It is
	// idempotent and safe to re-run with the same arguments.
	SetSpotOccupied(ctx context.Context, id int64, occupied bool) error

	CreateRecord(ctx context.Context, nr model.NewRecord) (*model.ParkingRecord, error)
	ListRecords(ctx context.Context, u *model.User, f model.RecordFilter) ([]model.ParkingRecord, error)
	GetRecordForOwner(ctx context.Context, u *model.User, id int64) (*model.ParkingRecord, error)
	GetRecord(ctx context.Context, id int64) (*model.ParkingRecord, error)
	PatchRecord(ctx context.Context, id int64, p model.RecordPatch) (*model.ParkingRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

type Parking interface {
	Conn(Conn) ParkingConnQueryer
	Tx(Tx) ParkingTxQueryer
}
