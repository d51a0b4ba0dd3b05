// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package parkinguc contains the parking use case managing the spots
// and the entry/exit record log. Every record write fires the
// registered record handlers inside the same transaction; the
// occupancy handler keeps the spot flag consistent with the record.
package parkinguc

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
)

// RecordHandler observes a just-written parking record within the
// transaction which wrote it. Returning an error rolls the whole
// write back.
type RecordHandler func(ctx context.Context, q repo.ParkingTxQueryer, r *model.ParkingRecord) error

// UseCase represents the parking use case. It holds a database
// connection pool, the parking repository instance, and the record
// write handlers.
type UseCase struct {
	pool      repo.Pool
	parkingrp repo.Parking
	handlers  []RecordHandler
}

// New instantiates a parking use case with the occupancy handler
// already registered.
func New(p repo.Pool, pr repo.Parking) *UseCase {
	uc := &UseCase{pool: p, parkingrp: pr}
	uc.OnRecordWrite(reconcileOccupancy)
	return uc
}

// OnRecordWrite registers h to run after every record create or
// patch, in the writing transaction.
func (parking *UseCase) OnRecordWrite(h RecordHandler) {
	parking.handlers = append(parking.handlers, h)
}

// reconcileOccupancy marks the record's spot as occupied exactly when
// the record is still open. Closing the record (a non-null exit time)
// frees the spot and re-opening it occupies the spot again.
func reconcileOccupancy(ctx context.Context, q repo.ParkingTxQueryer, r *model.ParkingRecord) error {
	return q.SetSpotOccupied(ctx, r.Spot, r.ExitTime == nil)
}

func (parking *UseCase) fire(ctx context.Context, q repo.ParkingTxQueryer, r *model.ParkingRecord) error {
	for _, h := range parking.handlers {
		if err := h(ctx, q, r); err != nil {
			return err
		}
	}
	return nil
}

// CreateSpot registers a new parking spot, initially free.
func (parking *UseCase) CreateSpot(ctx context.Context, spotNumber string) (spot *model.ParkingSpot, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		spot, err = q.CreateSpot(ctx, spotNumber)
		return err
	})
	if err != nil {
		spot = nil
	}
	return
}

// ListSpots fetches the spots matching the f filter, ordered by id.
func (parking *UseCase) ListSpots(ctx context.Context, f model.SpotFilter) (list []model.ParkingSpot, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		list, err = q.ListSpots(ctx, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// GetSpot fetches one spot by id.
func (parking *UseCase) GetSpot(ctx context.Context, id int64) (spot *model.ParkingSpot, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		spot, err = q.GetSpot(ctx, id)
		return err
	})
	if err != nil {
		spot = nil
	}
	return
}

// PatchSpot partially updates one spot. The is_occupied flag may be
// forced here by administrative endpoints; the next record write on
// the spot reconciles it again.
func (parking *UseCase) PatchSpot(ctx context.Context, id int64, p model.SpotPatch) (spot *model.ParkingSpot, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		spot, err = q.PatchSpot(ctx, id, p)
		return err
	})
	if err != nil {
		spot = nil
	}
	return
}

// DeleteSpot removes one spot by id. A spot with parking records
// cannot be deleted; the foreign key violation surfaces as a
// conflict.
func (parking *UseCase) DeleteSpot(ctx context.Context, id int64) error {
	return parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		return q.DeleteSpot(ctx, id)
	})
}

// CreateRecord opens a new parking record with the current time as
// the entry time and fires the record handlers, so the spot is marked
// occupied in the same transaction.
func (parking *UseCase) CreateRecord(ctx context.Context, nr model.NewRecord) (record *model.ParkingRecord, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := parking.parkingrp.Tx(tx)
			record, err = q.CreateRecord(ctx, nr)
			if err != nil {
				return err
			}
			return parking.fire(ctx, q, record)
		})
	})
	if err != nil {
		record = nil
	}
	return
}

// ListRecords fetches the records visible to the u user, matching the
// f filter and ordered by id. Internal users see every record; other
// users only see records of vehicles they own.
func (parking *UseCase) ListRecords(ctx context.Context, u *model.User, f model.RecordFilter) (list []model.ParkingRecord, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		list, err = q.ListRecords(ctx, u, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// GetRecord fetches one record by id, subject to the same visibility
// scoping as ListRecords.
func (parking *UseCase) GetRecord(ctx context.Context, u *model.User, id int64) (record *model.ParkingRecord, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := parking.parkingrp.Conn(c)
		record, err = q.GetRecordForOwner(ctx, u, id)
		return err
	})
	if err != nil {
		record = nil
	}
	return
}

// PatchRecord partially updates one record and fires the record
// handlers, so setting or clearing the exit time frees or occupies
// the spot in the same transaction. When the patch moves the record
// to another spot, the previous spot is freed as well.
func (parking *UseCase) PatchRecord(ctx context.Context, id int64, p model.RecordPatch) (record *model.ParkingRecord, err error) {
	err = parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := parking.parkingrp.Tx(tx)
			old, err := q.GetRecord(ctx, id)
			if err != nil {
				return err
			}
			record, err = q.PatchRecord(ctx, id, p)
			if err != nil {
				return err
			}
			if old.Spot != record.Spot {
				if err := q.SetSpotOccupied(ctx, old.Spot, false); err != nil {
					return err
				}
			}
			return parking.fire(ctx, q, record)
		})
	})
	if err != nil {
		record = nil
	}
	return
}

// DeleteRecord removes one record by id. Deleting an open record
// frees its spot.
func (parking *UseCase) DeleteRecord(ctx context.Context, id int64) error {
	return parking.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := parking.parkingrp.Tx(tx)
			old, err := q.GetRecord(ctx, id)
			if err != nil {
				return err
			}
			if err := q.DeleteRecord(ctx, id); err != nil {
				return err
			}
			if old.ExitTime == nil {
				return q.SetSpotOccupied(ctx, old.Spot, false)
			}
			return nil
		})
	})
}
