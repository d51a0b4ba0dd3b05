// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/opencarpark/parkapi/internal/test/dbcontainer"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/lookupsrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/usersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/usecase/enrichuc"
	"github.com/stretchr/testify/suite"
)

type IntegrationRepoTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
}

func TestIntegrationRepoTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationRepoTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (irts *IntegrationRepoTestSuite) SetupSuite() {
	err := irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			if err := usersrp.AutoMigrate(ctx, conn); err != nil {
				return err
			}
			if err := lookupsrp.AutoMigrate(ctx, conn); err != nil {
				return err
			}
			return vehiclesrp.AutoMigrate(ctx, conn)
		},
	)
	irts.Require().NoError(err, "failed to migrate tables")
}

func (irts *IntegrationRepoTestSuite) TestLookupFindOrCreate() {
	err := irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			first, err := lookupsrp.FindOrCreate(
				ctx, conn, model.BrandLookup, "chevrolet",
			)
			irts.Require().NoError(err)
			irts.Equal("chevrolet", first.Name)

			again, err := lookupsrp.FindOrCreate(
				ctx, conn, model.BrandLookup, "chevrolet",
			)
			irts.Require().NoError(err)
			irts.Equal(
				first.ID, again.ID,
				"an existing name must be reused",
			)

			other, err := lookupsrp.FindOrCreate(
				ctx, conn, model.ModelLookup, "chevrolet",
			)
			irts.Require().NoError(err)
			irts.NotEqual(
				first.ID, other.ID,
				"kinds must not share rows",
			)
			return nil
		},
	)
	irts.NoError(err)
}

// stubSource serves canned plate data for the enrichment use case.
type stubSource map[string]*enrichuc.PlateData

func (s stubSource) Lookup(
	_ context.Context, licensePlate string,
) (*enrichuc.PlateData, error) {
	return s[licensePlate], nil
}

func (irts *IntegrationRepoTestSuite) TestEnrichmentComplete() {
	var vid int64
	err := irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			v, err := vehiclesrp.Create(ctx, conn, model.NewVehicle{
				LicensePlate: "ENR1C40",
			})
			if err != nil {
				return err
			}
			vid = v.ID
			irts.True(v.MissingData())
			return nil
		},
	)
	irts.Require().NoError(err, "failed to create the vehicle")

	enrich := enrichuc.New(
		irts.Pool, vehiclesrp.New(), lookupsrp.New(),
		stubSource{
			"ENR1C40": {
				Brand: "Fiat", Model: "Uno", Color: "Azul Escuro",
			},
			"PART1A1": {Brand: "Honda"},
		},
	)

	irts.Require().NoError(enrich.Complete(irts.Ctx, "ENR1C40"))
	err = irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			v, err := vehiclesrp.Get(ctx, conn, vid)
			if err != nil {
				return err
			}
			irts.Require().NotNil(v.Brand)
			irts.Equal("fiat", *v.Brand)
			irts.Require().NotNil(v.Model)
			irts.Equal("uno", *v.Model)
			irts.Require().NotNil(v.Color)
			irts.Equal("azul-escuro", *v.Color)
			irts.False(v.MissingData())
			return nil
		},
	)
	irts.NoError(err)

	// Partial source data must be skipped without touching anything.
	irts.Require().NoError(enrich.Complete(irts.Ctx, "PART1A1"))
	irts.Require().NoError(enrich.Complete(irts.Ctx, "MISSING"))
	err = irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			brands, err := lookupsrp.List(
				ctx, conn, model.BrandLookup,
				model.LookupFilter{},
			)
			if err != nil {
				return err
			}
			for _, b := range brands {
				irts.NotEqual(
					"honda", b.Name,
					"partial data must not create lookups",
				)
			}
			return nil
		},
	)
	irts.NoError(err)
}
