// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

type VehiclesQueryer interface {
	Create(ctx context.Context, nv model.NewVehicle) (*model.Vehicle, error)

	// List and GetForOwner scope their results by the requesting
	// user: internal users see every vehicle while other users only
	// see vehicles they own (an ownerless vehicle matches no one).
	List(ctx context.Context, u *model.User, f model.VehicleFilter) ([]model.Vehicle, error)
	GetForOwner(ctx context.Context, u *model.User, id int64) (*model.Vehicle, error)

	// Get fetches by bare id without ownership scoping; mutation
	// endpoints rely on their permission gate instead.
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	Patch(ctx context.Context, id int64, ch model.VehicleChanges) (*model.Vehicle, error)
	Delete(ctx context.Context, id int64) error

	// UpdateRelationsByPlate backfills the brand/model/color
	// relations of every vehicle carrying the plate, returning the
	// number of updated rows. Used by the enrichment job.
	UpdateRelationsByPlate(ctx context.Context, plate string, brandID, modelID, colorID int64) (int64, error)
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
