// Package parkingrp implements the parking repository covering the
// spots table and the entry/exit record log. Record reads are scoped
// by the requesting user through the record's vehicle relation.
package parkingrp

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

func (parking *Repo) Conn(c repo.Conn) repo.ParkingConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) CreateSpot(ctx context.Context, spotNumber string) (*model.ParkingSpot, error) {
	return CreateSpot(ctx, cq.Conn, spotNumber)
}

func (cq connQueryer) ListSpots(ctx context.Context, f model.SpotFilter) ([]model.ParkingSpot, error) {
	return ListSpots(ctx, cq.Conn, f)
}

func (cq connQueryer) GetSpot(ctx context.Context, id int64) (*model.ParkingSpot, error) {
	return GetSpot(ctx, cq.Conn, id)
}

func (cq connQueryer) PatchSpot(ctx context.Context, id int64, p model.SpotPatch) (*model.ParkingSpot, error) {
	return PatchSpot(ctx, cq.Conn, id, p)
}

func (cq connQueryer) DeleteSpot(ctx context.Context, id int64) error {
	return DeleteSpot(ctx, cq.Conn, id)
}

func (cq connQueryer) SetSpotOccupied(ctx context.Context, id int64, occupied bool) error {
	return SetSpotOccupied(ctx, cq.Conn, id, occupied)
}

func (cq connQueryer) CreateRecord(ctx context.Context, nr model.NewRecord) (*model.ParkingRecord, error) {
	return CreateRecord(ctx, cq.Conn, nr)
}

func (cq connQueryer) ListRecords(ctx context.Context, u *model.User, f model.RecordFilter) ([]model.ParkingRecord, error) {
	return ListRecords(ctx, cq.Conn, u, f)
}

func (cq connQueryer) GetRecordForOwner(ctx context.Context, u *model.User, id int64) (*model.ParkingRecord, error) {
	return GetRecordForOwner(ctx, cq.Conn, u, id)
}

func (cq connQueryer) GetRecord(ctx context.Context, id int64) (*model.ParkingRecord, error) {
	return GetRecord(ctx, cq.Conn, id)
}

func (cq connQueryer) PatchRecord(ctx context.Context, id int64, p model.RecordPatch) (*model.ParkingRecord, error) {
	return PatchRecord(ctx, cq.Conn, id, p)
}

func (cq connQueryer) DeleteRecord(ctx context.Context, id int64) error {
	return DeleteRecord(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

func (parking *Repo) Tx(tx repo.Tx) repo.ParkingTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) CreateSpot(ctx context.Context, spotNumber string) (*model.ParkingSpot, error) {
	return CreateSpot(ctx, tq.Tx, spotNumber)
}

func (tq txQueryer) ListSpots(ctx context.Context, f model.SpotFilter) ([]model.ParkingSpot, error) {
	return ListSpots(ctx, tq.Tx, f)
}

func (tq txQueryer) GetSpot(ctx context.Context, id int64) (*model.ParkingSpot, error) {
	return GetSpot(ctx, tq.Tx, id)
}

func (tq txQueryer) PatchSpot(ctx context.Context, id int64, p model.SpotPatch) (*model.ParkingSpot, error) {
	return PatchSpot(ctx, tq.Tx, id, p)
}

func (tq txQueryer) DeleteSpot(ctx context.Context, id int64) error {
	return DeleteSpot(ctx, tq.Tx, id)
}

func (tq txQueryer) SetSpotOccupied(ctx context.Context, id int64, occupied bool) error {
	return SetSpotOccupied(ctx, tq.Tx, id, occupied)
}

func (tq txQueryer) CreateRecord(ctx context.Context, nr model.NewRecord) (*model.ParkingRecord, error) {
	return CreateRecord(ctx, tq.Tx, nr)
}

func (tq txQueryer) ListRecords(ctx context.Context, u *model.User, f model.RecordFilter) ([]model.ParkingRecord, error) {
	return ListRecords(ctx, tq.Tx, u, f)
}

func (tq txQueryer) GetRecordForOwner(ctx context.Context, u *model.User, id int64) (*model.ParkingRecord, error) {
	return GetRecordForOwner(ctx, tq.Tx, u, id)
}

func (tq txQueryer) GetRecord(ctx context.Context, id int64) (*model.ParkingRecord, error) {
	return GetRecord(ctx, tq.Tx, id)
}

func (tq txQueryer) PatchRecord(ctx context.Context, id int64, p model.RecordPatch) (*model.ParkingRecord, error) {
	return PatchRecord(ctx, tq.Tx, id, p)
}

func (tq txQueryer) DeleteRecord(ctx context.Context, id int64) error {
	return DeleteRecord(ctx, tq.Tx, id)
}
