// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package usersuc contains the users use case which resolves the
// authenticated user identity forwarded by the upstream gateway into
// a full user model with its granted permissions.
package usersuc

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
)

type UseCase struct {
	pool    repo.Pool
	usersrp repo.Users
}

func New(p repo.Pool, u repo.Users) *UseCase {
	return &UseCase{pool: p, usersrp: u}
}

// Get fetches one user by id, with its permission codenames loaded.
func (users *UseCase) Get(ctx context.Context, id int64) (user *model.User, err error) {
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := users.usersrp.Conn(c)
		user, err = q.GetByID(ctx, id)
		return err
	})
	if err != nil {
		user = nil
	}
	return
}
