// Package lookupsrp implements the repository of the four named
// reference tables (brand, model, color, and type of vehicles). All
// operations are parameterized by the model.LookupKind which selects
// the target table, so the four tables share one implementation.
package lookupsrp

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

func (lookups *Repo) Conn(c repo.Conn) repo.LookupsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, k model.LookupKind, nl model.NewLookup) (*model.Lookup, error) {
	return Create(ctx, cq.Conn, k, nl)
}

func (cq connQueryer) List(ctx context.Context, k model.LookupKind, f model.LookupFilter) ([]model.Lookup, error) {
	return List(ctx, cq.Conn, k, f)
}

func (cq connQueryer) GetByID(ctx context.Context, k model.LookupKind, id int64) (*model.Lookup, error) {
	return GetByID(ctx, cq.Conn, k, id)
}

func (cq connQueryer) Patch(ctx context.Context, k model.LookupKind, id int64, p model.LookupPatch) (*model.Lookup, error) {
	return Patch(ctx, cq.Conn, k, id, p)
}

func (cq connQueryer) Delete(ctx context.Context, k model.LookupKind, id int64) error {
	return Delete(ctx, cq.Conn, k, id)
}

func (cq connQueryer) FindOrCreate(ctx context.Context, k model.LookupKind, name string) (*model.Lookup, error) {
	return FindOrCreate(ctx, cq.Conn, k, name)
}

type txQueryer struct {
	*postgres.Tx
}

func (lookups *Repo) Tx(tx repo.Tx) repo.LookupsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, k model.LookupKind, nl model.NewLookup) (*model.Lookup, error) {
	return Create(ctx, tq.Tx, k, nl)
}

func (tq txQueryer) List(ctx context.Context, k model.LookupKind, f model.LookupFilter) ([]model.Lookup, error) {
	return List(ctx, tq.Tx, k, f)
}

func (tq txQueryer) GetByID(ctx context.Context, k model.LookupKind, id int64) (*model.Lookup, error) {
	return GetByID(ctx, tq.Tx, k, id)
}

func (tq txQueryer) Patch(ctx context.Context, k model.LookupKind, id int64, p model.LookupPatch) (*model.Lookup, error) {
	return Patch(ctx, tq.Tx, k, id, p)
}

func (tq txQueryer) Delete(ctx context.Context, k model.LookupKind, id int64) error {
	return Delete(ctx, tq.Tx, k, id)
}

func (tq txQueryer) FindOrCreate(ctx context.Context, k model.LookupKind, name string) (*model.Lookup, error) {
	return FindOrCreate(ctx, tq.Tx, k, name)
}
