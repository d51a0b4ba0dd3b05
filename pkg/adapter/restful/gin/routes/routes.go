// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages. Each use case package is named like vehiclesuc, each
// repository package like vehiclesrp, and each resource package like
// vehiclesrs.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/customersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/lookupsrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/parkingrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/usersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/customersrs"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/lookupsrs"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/parkingrs"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/usecase/customersuc"
	"github.com/opencarpark/parkapi/pkg/core/usecase/lookupsuc"
	"github.com/opencarpark/parkapi/pkg/core/usecase/parkinguc"
	"github.com/opencarpark/parkapi/pkg/core/usecase/usersuc"
	"github.com/opencarpark/parkapi/pkg/core/usecase/vehiclesuc"
)

// Register instantiates the repositories and use cases, guiding them
// with the p connections pool, and registers every resource under the
// /api/parkapi/v1 group of the e engine. The whole group runs behind
// the user resolution middleware, so each resource only consults its
// own permission gate. The d dispatcher feeds the plate enrichment
// queue and may be nil to disable enrichment.
func Register(e *gin.Engine, p repo.Pool, d vehiclesuc.Dispatcher) {
	usersRepo := usersrp.New()
	customersRepo := customersrp.New()
	lookupsRepo := lookupsrp.New()
	vehiclesRepo := vehiclesrp.New()
	parkingRepo := parkingrp.New()

	users := usersuc.New(p, usersRepo)
	customers := customersuc.New(p, customersRepo)
	lookups := lookupsuc.New(p, lookupsRepo)
	vehicles := vehiclesuc.New(p, vehiclesRepo, lookupsRepo, d)
	parking := parkinguc.New(p, parkingRepo)

	r := e.Group("/api/parkapi/v1", middleware.CurrentUser(users))
	customersrs.Register(r, customers)
	lookupsrs.Register(r, lookups)
	vehiclesrs.Register(r, vehicles)
	parkingrs.Register(r, parking)
}
