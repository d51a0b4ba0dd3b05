// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
)

type CustomersConnQueryer interface {
	CustomersQueryer
}

type CustomersTxQueryer interface {
	CustomersQueryer
}

type CustomersQueryer interface {
	Create(ctx context.Context, nc model.NewCustomer) (*model.Customer, error)
	List(ctx context.Context, f model.CustomerFilter) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	Patch(ctx context.Context, id int64, p model.CustomerPatch) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type Customers interface {
	Conn(Conn) CustomersConnQueryer
	Tx(Tx) CustomersTxQueryer
}
