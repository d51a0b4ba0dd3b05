// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package enrichuc contains the plate enrichment use case executed by
// the queue consumer. It looks a license plate up in an external
// source and backfills the brand, model, and color of the matching
// vehicles.
package enrichuc

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/log"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/slug"
)

// PlateData carries the vehicle data found for one license plate.
type PlateData struct {
	Brand string
	Model string
	Color string
}

// Complete reports whether all three fields were found; partial data
// is never applied.
func (d *PlateData) Complete() bool {
	return d.Brand != "" && d.Model != "" && d.Color != ""
}

// PlateSource looks a license plate up in an external data source. A
// plate without a match returns a nil PlateData and no error.
type PlateSource interface {
	Lookup(ctx context.Context, licensePlate string) (*PlateData, error)
}

// UseCase represents the plate enrichment use case.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	lookupsrp  repo.Lookups
	source     PlateSource
}

func New(p repo.Pool, v repo.Vehicles, l repo.Lookups, s PlateSource) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v, lookupsrp: l, source: s}
}

// Complete looks the licensePlate up and, when the source reports all
// of the brand, model, and color, resolves them by find-or-create and
// backfills every vehicle carrying the plate. Resolution and the
// backfill run in one transaction. A plate without a match, or with
// partial data only, is skipped without an error.
func (enrich *UseCase) Complete(ctx context.Context, licensePlate string) error {
	data, err := enrich.source.Lookup(ctx, licensePlate)
	if err != nil {
		return err
	}
	if data == nil || !data.Complete() {
		log.Info(
			ctx, "no complete plate data found, skipping",
			log.Plate(licensePlate),
		)
		return nil
	}
	var updated int64
	err = enrich.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			lq := enrich.lookupsrp.Tx(tx)
			vq := enrich.vehiclesrp.Tx(tx)
			brand, err := lq.FindOrCreate(
				ctx, model.BrandLookup, slug.Make(data.Brand),
			)
			if err != nil {
				return err
			}
			mdl, err := lq.FindOrCreate(
				ctx, model.ModelLookup, slug.Make(data.Model),
			)
			if err != nil {
				return err
			}
			color, err := lq.FindOrCreate(
				ctx, model.ColorLookup, slug.Make(data.Color),
			)
			if err != nil {
				return err
			}
			updated, err = vq.UpdateRelationsByPlate(
				ctx, licensePlate, brand.ID, mdl.ID, color.ID,
			)
			return err
		})
	})
	if err != nil {
		return err
	}
	log.Info(
		ctx, "vehicle data completed",
		log.Plate(licensePlate),
		log.Int64("updated_vehicles", updated),
	)
	return nil
}
