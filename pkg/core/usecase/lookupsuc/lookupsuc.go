// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lookupsuc contains the lookups use case which manages the
// vehicle brand, model, color, and type reference tables. One use
// case instance serves all four kinds.
package lookupsuc

import (
	"context"
	"errors"

	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
)

type UseCase struct {
	pool      repo.Pool
	lookupsrp repo.Lookups
}

func New(p repo.Pool, l repo.Lookups) *UseCase {
	return &UseCase{pool: p, lookupsrp: l}
}

// Create inserts a lookup row of the k kind. The kind-specific extra
// fields are validated here so a hex code on a brand payload fails
// fast instead of being silently dropped.
func (lookups *UseCase) Create(ctx context.Context, k model.LookupKind, nl model.NewLookup) (lookup *model.Lookup, err error) {
	if nl.HexCode != nil && k != model.ColorLookup {
		return nil, cerr.BadRequest(errors.New("hex_code só é aceito para cores"))
	}
	if nl.Description != nil && k != model.TypeLookup {
		return nil, cerr.BadRequest(errors.New("description só é aceito para tipos"))
	}
	err = lookups.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := lookups.lookupsrp.Conn(c)
		lookup, err = q.Create(ctx, k, nl)
		return err
	})
	if err != nil {
		lookup = nil
	}
	return
}

// List fetches the k kind rows matching the f filter, ordered by id.
func (lookups *UseCase) List(ctx context.Context, k model.LookupKind, f model.LookupFilter) (list []model.Lookup, err error) {
	err = lookups.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := lookups.lookupsrp.Conn(c)
		list, err = q.List(ctx, k, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Get fetches one k kind row by id.
func (lookups *UseCase) Get(ctx context.Context, k model.LookupKind, id int64) (lookup *model.Lookup, err error) {
	err = lookups.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := lookups.lookupsrp.Conn(c)
		lookup, err = q.GetByID(ctx, k, id)
		return err
	})
	if err != nil {
		lookup = nil
	}
	return
}

// Patch partially updates one k kind row.
func (lookups *UseCase) Patch(ctx context.Context, k model.LookupKind, id int64, p model.LookupPatch) (lookup *model.Lookup, err error) {
	if p.HexCode.Set && k != model.ColorLookup {
		return nil, cerr.BadRequest(errors.New("hex_code só é aceito para cores"))
	}
	if p.Description.Set && k != model.TypeLookup {
		return nil, cerr.BadRequest(errors.New("description só é aceito para tipos"))
	}
	err = lookups.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := lookups.lookupsrp.Conn(c)
		lookup, err = q.Patch(ctx, k, id, p)
		return err
	})
	if err != nil {
		lookup = nil
	}
	return
}

// Delete removes one k kind row. A row still referenced by vehicles
// cannot be deleted; the foreign key violation surfaces as a
// conflict.
func (lookups *UseCase) Delete(ctx context.Context, k model.LookupKind, id int64) error {
	return lookups.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := lookups.lookupsrp.Conn(c)
		return q.Delete(ctx, k, id)
	})
}
