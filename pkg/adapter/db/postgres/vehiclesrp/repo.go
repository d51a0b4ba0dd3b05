// Package vehiclesrp implements the vehicles repository. Reads join
// the four lookup tables so callers always see the related names
// instead of bare ids.
package vehiclesrp

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, nv model.NewVehicle) (*model.Vehicle, error) {
	return Create(ctx, cq.Conn, nv)
}

func (cq connQueryer) List(ctx context.Context, u *model.User, f model.VehicleFilter) ([]model.Vehicle, error) {
	return List(ctx, cq.Conn, u, f)
}

func (cq connQueryer) GetForOwner(ctx context.Context, u *model.User, id int64) (*model.Vehicle, error) {
	return GetForOwner(ctx, cq.Conn, u, id)
}

func (cq connQueryer) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) Patch(ctx context.Context, id int64, ch model.VehicleChanges) (*model.Vehicle, error) {
	return Patch(ctx, cq.Conn, id, ch)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) UpdateRelationsByPlate(ctx context.Context, plate string, brandID, modelID, colorID int64) (int64, error) {
	return UpdateRelationsByPlate(ctx, cq.Conn, plate, brandID, modelID, colorID)
}

type txQueryer struct {
	*postgres.Tx
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, nv model.NewVehicle) (*model.Vehicle, error) {
	return Create(ctx, tq.Tx, nv)
}

func (tq txQueryer) List(ctx context.Context, u *model.User, f model.VehicleFilter) ([]model.Vehicle, error) {
	return List(ctx, tq.Tx, u, f)
}

func (tq txQueryer) GetForOwner(ctx context.Context, u *model.User, id int64) (*model.Vehicle, error) {
	return GetForOwner(ctx, tq.Tx, u, id)
}

func (tq txQueryer) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) Patch(ctx context.Context, id int64, ch model.VehicleChanges) (*model.Vehicle, error) {
	return Patch(ctx, tq.Tx, id, ch)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) UpdateRelationsByPlate(ctx context.Context, plate string, brandID, modelID, colorID int64) (int64, error) {
	return UpdateRelationsByPlate(ctx, tq.Tx, plate, brandID, modelID, colorID)
}
