// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package customersuc contains the customers use case which supports
// the customer registry CRUD operations.
package customersuc

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
)

// UseCase represents the customers use case. It holds a database
// connection pool and the customers repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool        repo.Pool
	customersrp repo.Customers
}

// New instantiates a customers use case.
func New(p repo.Pool, c repo.Customers) *UseCase {
	return &UseCase{pool: p, customersrp: c}
}

// Create registers a new customer and returns its stored model.
func (customers *UseCase) Create(ctx context.Context, nc model.NewCustomer) (customer *model.Customer, err error) {
	err = customers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := customers.customersrp.Conn(c)
		customer, err = q.Create(ctx, nc)
		return err
	})
	if err != nil {
		customer = nil
	}
	return
}

// List fetches the customers matching the f filter, ordered by id.
func (customers *UseCase) List(ctx context.Context, f model.CustomerFilter) (list []model.Customer, err error) {
	err = customers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := customers.customersrp.Conn(c)
		list, err = q.List(ctx, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Get fetches one customer by id.
func (customers *UseCase) Get(ctx context.Context, id int64) (customer *model.Customer, err error) {
	err = customers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := customers.customersrp.Conn(c)
		customer, err = q.GetByID(ctx, id)
		return err
	})
	if err != nil {
		customer = nil
	}
	return
}

// Patch partially updates one customer and returns its updated model.
func (customers *UseCase) Patch(ctx context.Context, id int64, p model.CustomerPatch) (customer *model.Customer, err error) {
	err = customers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := customers.customersrp.Conn(c)
		customer, err = q.Patch(ctx, id, p)
		return err
	})
	if err != nil {
		customer = nil
	}
	return
}

// Delete removes one customer by id.
func (customers *UseCase) Delete(ctx context.Context, id int64) error {
	return customers.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := customers.customersrp.Conn(c)
		return q.Delete(ctx, id)
	})
}
