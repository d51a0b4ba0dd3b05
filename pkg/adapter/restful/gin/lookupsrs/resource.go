// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lookupsrs realizes the vehicle brand, model, color, and
// type resources. The four resources expose identical CRUD routes and
// differ only by their path prefix, permission codenames, and lookup
// kind, so one resource implementation serves all of them.
package lookupsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/serdser"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/usecase/lookupsuc"
)

type resource struct {
	lookups *lookupsuc.UseCase
	kind    model.LookupKind
}

// Register adapts the lookups use case with the CRUD REST APIs of all
// four lookup kinds, under:
//  1. /vehicles/types,
//  2. /vehicles/brands,
//  3. /vehicles/models,
//  4. /vehicles/colors.
func Register(r *gin.RouterGroup, lookups *lookupsuc.UseCase) {
	register(r, lookups, model.TypeLookup, "vehicles/types", "vehicletype")
	register(r, lookups, model.BrandLookup, "vehicles/brands", "vehiclebrand")
	register(r, lookups, model.ModelLookup, "vehicles/models", "vehiclemodel")
	register(r, lookups, model.ColorLookup, "vehicles/colors", "vehiclecolor")
}

func register(
	r *gin.RouterGroup,
	lookups *lookupsuc.UseCase,
	k model.LookupKind,
	prefix, codename string,
) {
	rs := &resource{lookups: lookups, kind: k}
	r.POST(
		prefix,
		middleware.RequirePerms("vehicles.add_"+codename),
		rs.Create,
	)
	r.GET(
		prefix,
		middleware.RequirePerms("vehicles.view_"+codename),
		rs.List,
	)
	r.GET(
		prefix+"/:id",
		middleware.RequirePerms("vehicles.view_"+codename),
		rs.Get,
	)
	r.PATCH(
		prefix+"/:id",
		middleware.RequirePerms("vehicles.change_"+codename),
		rs.Patch,
	)
	r.DELETE(
		prefix+"/:id",
		middleware.RequirePerms("vehicles.delete_"+codename),
		rs.Delete,
	)
}

type uriID struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func (rs *resource) Create(c *gin.Context) {
	var nl model.NewLookup
	if !serdser.Bind(c, &nl, binding.JSON) {
		return
	}
	lookup, err := rs.lookups.Create(c, rs.kind, nl)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, lookup)
}

func (rs *resource) List(c *gin.Context) {
	var f model.LookupFilter
	if !serdser.Bind(c, &f, binding.Query) {
		return
	}
	list, err := rs.lookups.List(c, rs.kind, f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) Get(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	lookup, err := rs.lookups.Get(c, rs.kind, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lookup)
}

func (rs *resource) Patch(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	var p model.LookupPatch
	if !serdser.Bind(c, &p, binding.JSON) {
		return
	}
	lookup, err := rs.lookups.Patch(c, rs.kind, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lookup)
}

func (rs *resource) Delete(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	if err := rs.lookups.Delete(c, rs.kind, uri.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Deleted(c, rs.kind.DisplayName())
}
