// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package customersrs realizes the customers resource, adapting the
// customer registry REST APIs to the customers use case.
package customersrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/serdser"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/usecase/customersuc"
)

type resource struct {
	customers *customersuc.UseCase
}

// Register adapts the customers use case with the relevant REST APIs:
//  1. POST /customers to register a customer,
//  2. GET /customers to list customers with optional filters,
//  3. GET /customers/:id to fetch one customer,
//  4. PATCH /customers/:id to partially update a customer,
//  5. DELETE /customers/:id to remove a customer.
func Register(r *gin.RouterGroup, customers *customersuc.UseCase) {
	rs := &resource{customers: customers}
	r.POST(
		"customers",
		middleware.RequirePerms("customers.add_customer"),
		rs.CreateCustomer,
	)
	r.GET(
		"customers",
		middleware.RequirePerms("customers.view_customer"),
		rs.ListCustomers,
	)
	r.GET(
		"customers/:id",
		middleware.RequirePerms("customers.view_customer"),
		rs.GetCustomer,
	)
	r.PATCH(
		"customers/:id",
		middleware.RequirePerms("customers.change_customer"),
		rs.PatchCustomer,
	)
	r.DELETE(
		"customers/:id",
		middleware.RequirePerms("customers.delete_customer"),
		rs.DeleteCustomer,
	)
}

type uriID struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func (rs *resource) CreateCustomer(c *gin.Context) {
	var nc model.NewCustomer
	if !serdser.Bind(c, &nc, binding.JSON) {
		return
	}
	customer, err := rs.customers.Create(c, nc)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (rs *resource) ListCustomers(c *gin.Context) {
	var f model.CustomerFilter
	if !serdser.Bind(c, &f, binding.Query) {
		return
	}
	list, err := rs.customers.List(c, f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetCustomer(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	customer, err := rs.customers.Get(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (rs *resource) PatchCustomer(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	var p model.CustomerPatch
	if !serdser.Bind(c, &p, binding.JSON) {
		return
	}
	customer, err := rs.customers.Patch(c, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (rs *resource) DeleteCustomer(c *gin.Context) {
	var uri uriID
	if !serdser.BindURI(c, &uri) {
		return
	}
	if err := rs.customers.Delete(c, uri.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Deleted(c, "Cliente")
}
