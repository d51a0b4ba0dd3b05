// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package parkingrs realizes the parking spots and parking records
// resources. Record reads are scoped by the requesting user; record
// writes trigger the spot occupancy reconciliation in the parking use
// case.
package parkingrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/serdser"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/usecase/parkinguc"
)

type resource struct {
	parking *parkinguc.UseCase
}

// Register adapts the parking use case with the relevant REST APIs:
//  1. POST, GET, PATCH, DELETE routes under /spots for the spots,
//  2. POST, GET, PATCH, DELETE routes under /records for the
//     entry/exit records.
func Register(r *gin.RouterGroup, parking *parkinguc.UseCase) {
	rs := &resource{parking: parking}
	r.POST(
		"spots",
		middleware.RequirePerms("parking.add_parkingspot"),
		rs.CreateSpot,
	)
	r.GET(
		"spots",
		middleware.RequirePerms("parking.view_parkingspot"),
		rs.ListSpots,
	)
	r.GET(
		"spots/:id",
		middleware.RequirePerms("parking.view_parkingspot"),
		rs.GetSpot,
	)
	r.PATCH(
		"spots/:id",
		middleware.RequirePerms("parking.change_parkingspot"),
		rs.PatchSpot,
	)
	r.DELETE(
		"spots/:id",
		middleware.RequirePerms("parking.delete_parkingspot"),
		rs.DeleteSpot,
	)

	r.POST(
		"records",
		middleware.RequirePerms("parking.add_parkingrecord"),
		rs.CreateRecord,
	)
	r.GET(
		"records",
		middleware.RequirePerms("parking.view_parkingrecord"),
		rs.ListRecords,
	)
	r.GET(
		"records/:id",
		middleware.RequirePerms("parking.view_parkingrecord"),
		rs.GetRecord,
	)
	r.PATCH(
		"records/:id",
		middleware.RequirePerms("parking.change_parkingrecord"),
		rs.PatchRecord,
	)
	r.DELETE(
		"records/:id",
		middleware.RequirePerms("parking.delete_parkingrecord"),
		rs.DeleteRecord,
	)
}

type uriID struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type newSpotReq struct {
	SpotNumber string `json:"spot_number" binding:"required"`
}

func (rs *resource) CreateSpot(c *gin.Context) {
	var req newSpotReq
	if !serdser.Bind(c, &req, binding.JSON) {
		return
	}
	spot, err := rs.parking.CreateSpot(c, req.SpotNumber)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, spot)
}

func (rs *resource) ListSpots(c *gin.Context) {
	var f model.SpotFilter
	if !serdser.Bind(c, &f, binding.Query) {
		return
	}
	list, err := rs.parking.ListSpots(c, f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetSpot(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	spot, err := rs.parking.GetSpot(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (rs *resource) PatchSpot(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	var p model.SpotPatch
	if !serdser.Bind(c, &p, binding.JSON) {
		return
	}
	spot, err := rs.parking.PatchSpot(c, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (rs *resource) DeleteSpot(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	if err := rs.parking.DeleteSpot(c, uri.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Deleted(c, "Vaga de Estacionamento")
}

func (rs *resource) CreateRecord(c *gin.Context) {
	var nr model.NewRecord
	if !serdser.Bind(c, &nr, binding.JSON) {
		return
	}
	record, err := rs.parking.CreateRecord(c, nr)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (rs *resource) ListRecords(c *gin.Context) {
	var f model.RecordFilter
	if !serdser.Bind(c, &f, binding.Query) {
		return
	}
	list, err := rs.parking.ListRecords(c, middleware.UserFrom(c), f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetRecord(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	record, err := rs.parking.GetRecord(c, middleware.UserFrom(c), uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (rs *resource) PatchRecord(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	var p model.RecordPatch
	if !serdser.Bind(c, &p, binding.JSON) {
		return
	}
	record, err := rs.parking.PatchRecord(c, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (rs *resource) DeleteRecord(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	if err := rs.parking.DeleteRecord(c, uri.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Deleted(c, "Registro de Estacionamento")
}
