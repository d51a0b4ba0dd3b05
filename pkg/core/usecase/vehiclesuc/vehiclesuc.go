// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesuc contains the vehicles use case: registration
// with asynchronous data enrichment, owner-scoped reads, and partial
// updates with id-or-name relation resolution.
package vehiclesuc

import (
	"context"
	"fmt"

	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"github.com/opencarpark/parkapi/pkg/core/log"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/slug"
)

// Dispatcher enqueues an asynchronous plate enrichment request. The
// queue adapter implements it; a nil Dispatcher disables enrichment.
type Dispatcher interface {
	DispatchPlateLookup(ctx context.Context, licensePlate string) error
}

// UseCase represents the vehicles use case. It holds a database
// connection pool, the vehicles and lookups repository instances, and
// the enrichment dispatcher.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	lookupsrp  repo.Lookups
	dispatcher Dispatcher
}

// New instantiates a vehicles use case. The d dispatcher may be nil,
// in which case vehicles with missing data are simply left for a
// later manual update.
func New(p repo.Pool, v repo.Vehicles, l repo.Lookups, d Dispatcher) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v, lookupsrp: l, dispatcher: d}
}

// Create registers a new vehicle. When the registered vehicle misses
// any of its brand, model, or color relations, a plate enrichment
// request is dispatched so the missing data may be filled in
// asynchronously. A dispatch failure does not fail the registration.
func (vehicles *UseCase) Create(ctx context.Context, nv model.NewVehicle) (vehicle *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		vehicle, err = q.Create(ctx, nv)
		return err
	})
	if err != nil {
		return nil, err
	}
	if vehicles.dispatcher != nil && vehicle.MissingData() {
		if derr := vehicles.dispatcher.DispatchPlateLookup(ctx, vehicle.LicensePlate); derr != nil {
			log.Error(
				ctx, "failed to dispatch plate enrichment",
				log.Err("error", derr),
				log.Plate(vehicle.LicensePlate),
			)
		}
	}
	return vehicle, nil
}

// List fetches the vehicles visible to the u user, matching the f
// filter and ordered by id. Internal users see every vehicle; other
// users only see the vehicles they own.
func (vehicles *UseCase) List(ctx context.Context, u *model.User, f model.VehicleFilter) (list []model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		list, err = q.List(ctx, u, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Get fetches one vehicle by id, subject to the same visibility
// scoping as List. A vehicle outside the u user's scope reports not
// found rather than forbidden, so ids of other owners stay opaque.
func (vehicles *UseCase) Get(ctx context.Context, u *model.User, id int64) (vehicle *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		vehicle, err = q.GetForOwner(ctx, u, id)
		return err
	})
	if err != nil {
		vehicle = nil
	}
	return
}

// Update partially updates one vehicle. The brand, model, color, and
// type relations accept either a lookup id (which must exist) or a
// free-text name, which is normalized and resolved by find-or-create.
// Resolution and the row update run in one transaction, so a resolved
// lookup id can never dangle.
func (vehicles *UseCase) Update(ctx context.Context, id int64, p model.VehiclePatch) (vehicle *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			lq := vehicles.lookupsrp.Tx(tx)
			vq := vehicles.vehiclesrp.Tx(tx)
			ch := model.VehicleChanges{
				LicensePlate: p.LicensePlate,
				Owner:        p.Owner,
			}
			refs := []struct {
				kind model.LookupKind
				ref  model.LookupRef
				dst  *model.Optional[int64]
			}{
				{model.TypeLookup, p.VehicleType, &ch.VehicleType},
				{model.BrandLookup, p.Brand, &ch.Brand},
				{model.ModelLookup, p.Model, &ch.Model},
				{model.ColorLookup, p.Color, &ch.Color},
			}
			for _, r := range refs {
				*r.dst, err = resolveRef(ctx, lq, r.kind, r.ref)
				if err != nil {
					return err
				}
			}
			vehicle, err = vq.Patch(ctx, id, ch)
			return err
		})
	})
	if err != nil {
		vehicle = nil
	}
	return
}

// resolveRef turns a user-supplied lookup reference into a concrete
// id column change. Absent and null references leave the relation
// untouched.
func resolveRef(ctx context.Context, lq repo.LookupsTxQueryer, k model.LookupKind, r model.LookupRef) (model.Optional[int64], error) {
	var none model.Optional[int64]
	if !r.Set || r.Empty() {
		return none, nil
	}
	if r.ID != nil {
		l, err := lq.GetByID(ctx, k, *r.ID)
		if err != nil {
			return none, err
		}
		return model.Some(l.ID), nil
	}
	name := slug.Make(*r.Name)
	if name == "" {
		return none, cerr.BadRequest(
			fmt.Errorf("%s: nome inválido", k.DisplayName()),
		)
	}
	l, err := lq.FindOrCreate(ctx, k, name)
	if err != nil {
		return none, err
	}
	return model.Some(l.ID), nil
}

// Delete removes one vehicle by id. A vehicle with parking records
// cannot be deleted; the foreign key violation surfaces as a
// conflict.
func (vehicles *UseCase) Delete(ctx context.Context, id int64) error {
	return vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		return q.Delete(ctx, id)
	})
}
