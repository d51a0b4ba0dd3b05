// Package usersrp implements the users repository, resolving the
// authenticated user id (as forwarded by the upstream gateway) into
// the account row and its granted permission codenames.
package usersrp

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

func (users *Repo) Conn(c repo.Conn) repo.UsersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return GetByID(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

func (users *Repo) Tx(tx repo.Tx) repo.UsersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return GetByID(ctx, tq.Tx, id)
}
