// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the pkg/core/repo connection pool,
// connection, and transaction interfaces over a GORM PostgreSQL
// dialector. Repository packages (customersrp, vehiclesrp, lookupsrp,
// parkingrp, usersrp) build on the exported Conn and Tx wrappers and
// use the GORM method to run their queries on the right handle.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"gorm.io/gorm"
)

// Queryer constrains the generic repository query functions to the
// two statement execution handles of this package, so one
// implementation serves both the auto-commit and the transactional
// paths.
type Queryer interface {
	*Conn | *Tx

	GORM(ctx context.Context) *gorm.DB
}

// SQLSTATE classes which the repositories surface as distinct API
// errors instead of generic internal failures.
const (
	uniqueViolation = "23505"
	fkViolation     = "23503"
)

// WrapError classifies a database error for the given entity display
// name. Unique and foreign key violations become Conflict errors (a
// duplicate value, or a row still referenced by another table),
// missing rows become NotFound, and anything else is returned as-is
// for the boundary to collapse into an internal error.
func WrapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case uniqueViolation:
			return cerr.Conflict(fmt.Errorf(
				"%s viola um valor único: %s", entity, pgErr.Detail,
			))
		case fkViolation:
			return cerr.Conflict(fmt.Errorf(
				"%s ainda é referenciado(a) por outro registro", entity,
			))
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return err
}
