// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource. Reads are scoped
// by the requesting user while mutations stay behind their permission
// codenames; the patch route accepts either lookup ids or free-text
// names for the vehicle relations.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/serdser"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/usecase/vehiclesuc"
)

type resource struct {
	vehicles *vehiclesuc.UseCase
}

// Register adapts the vehicles use case with the relevant REST APIs:
//  1. POST /vehicles to register a vehicle (dispatching the plate
//     enrichment when data is missing),
//  2. GET /vehicles to list the visible vehicles with filters,
//  3. GET /vehicles/:id to fetch one visible vehicle,
//  4. PATCH /vehicles/:id to partially update a vehicle,
//  5. DELETE /vehicles/:id to remove a vehicle.
func Register(r *gin.RouterGroup, vehicles *vehiclesuc.UseCase) {
	rs := &resource{vehicles: vehicles}
	r.POST(
		"vehicles",
		middleware.RequirePerms("vehicles.add_vehicle"),
		rs.CreateVehicle,
	)
	r.GET(
		"vehicles",
		middleware.RequirePerms("vehicles.view_vehicle"),
		rs.ListVehicles,
	)
	r.GET(
		"vehicles/:id",
		middleware.RequirePerms("vehicles.view_vehicle"),
		rs.GetVehicle,
	)
	r.PATCH(
		"vehicles/:id",
		middleware.RequirePerms("vehicles.change_vehicle"),
		rs.PatchVehicle,
	)
	r.DELETE(
		"vehicles/:id",
		middleware.RequirePerms("vehicles.delete_vehicle"),
		rs.DeleteVehicle,
	)
}

type uriID struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func (rs *resource) CreateVehicle(c *gin.Context) {
	var nv model.NewVehicle
	if !serdser.Bind(c, &nv, binding.JSON) {
		return
	}
	vehicle, err := rs.vehicles.Create(c, nv)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (rs *resource) ListVehicles(c *gin.Context) {
	var f model.VehicleFilter
	if !serdser.Bind(c, &f, binding.Query) {
		return
	}
	list, err := rs.vehicles.List(c, middleware.UserFrom(c), f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetVehicle(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	vehicle, err := rs.vehicles.Get(c, middleware.UserFrom(c), uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (rs *resource) PatchVehicle(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	var p model.VehiclePatch
	if !serdser.Bind(c, &p, binding.JSON) {
		return
	}
	vehicle, err := rs.vehicles.Update(c, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (rs *resource) DeleteVehicle(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	if err := rs.vehicles.Delete(c, uri.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Deleted(c, "Veículo")
}
