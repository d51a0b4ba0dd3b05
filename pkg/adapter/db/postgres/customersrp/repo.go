// Package customersrp implements the customers repository over the
// PostgreSQL adapter.
package customersrp

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

func (customers *Repo) Conn(c repo.Conn) repo.CustomersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, nc model.NewCustomer) (*model.Customer, error) {
	return Create(ctx, cq.Conn, nc)
}

func (cq connQueryer) List(ctx context.Context, f model.CustomerFilter) ([]model.Customer, error) {
	return List(ctx, cq.Conn, f)
}

func (cq connQueryer) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return GetByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Patch(ctx context.Context, id int64, p model.CustomerPatch) (*model.Customer, error) {
	return Patch(ctx, cq.Conn, id, p)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

func (customers *Repo) Tx(tx repo.Tx) repo.CustomersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, nc model.NewCustomer) (*model.Customer, error) {
	return Create(ctx, tq.Tx, nc)
}

func (tq txQueryer) List(ctx context.Context, f model.CustomerFilter) ([]model.Customer, error) {
	return List(ctx, tq.Tx, f)
}

func (tq txQueryer) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return GetByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Patch(ctx context.Context, id int64, p model.CustomerPatch) (*model.Customer, error) {
	return Patch(ctx, tq.Tx, id, p)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}
