// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/opencarpark/parkapi/internal/test/dbcontainer"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/customersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/lookupsrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/parkingrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/usersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/middleware"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/routes"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

// Seeded users. The admin is a staff account, the operator holds the
// customers and parking codenames, the owner may only view its own
// vehicles and records, and the last one holds no permission at all.
const (
	adminID    = "1"
	operatorID = "2"
	ownerID    = "3"
	nobodyID   = "4"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			conn := c.(*postgres.Conn)
			for _, m := range []func(
				context.Context, *postgres.Conn,
			) error {
				usersrp.AutoMigrate[*postgres.Conn],
				customersrp.AutoMigrate[*postgres.Conn],
				lookupsrp.AutoMigrate[*postgres.Conn],
				vehiclesrp.AutoMigrate[*postgres.Conn],
				parkingrp.AutoMigrate[*postgres.Conn],
			} {
				if err := m(ctx, conn); err != nil {
					return err
				}
			}
			return nil
		},
	)
	igts.Require().NoError(err, "failed to migrate tables")
	igts.seedUsers()

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	routes.Register(igts.Gin, igts.Pool, nil)
}

func (igts *IntegrationGinTestSuite) seedUsers() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			count, err := c.Exec(
				ctx,
				`INSERT INTO users
(id, username, is_staff, is_superuser, created_at, updated_at)
VALUES
(1, 'admin', TRUE, FALSE, now(), now()),
(2, 'operator', FALSE, FALSE, now(), now()),
(3, 'owner', FALSE, FALSE, now(), now()),
(4, 'nobody', FALSE, FALSE, now(), now())`,
			)
			igts.Equal(int64(4), count, "tried to INSERT four users")
			if err != nil {
				return err
			}
			perms := []struct {
				user     int64
				codename string
			}{
				{2, "customers.add_customer"},
				{2, "customers.view_customer"},
				{2, "customers.change_customer"},
				{2, "customers.delete_customer"},
				{2, "parking.add_parkingspot"},
				{2, "parking.view_parkingspot"},
				{2, "parking.add_parkingrecord"},
				{2, "parking.view_parkingrecord"},
				{2, "parking.change_parkingrecord"},
				{3, "vehicles.view_vehicle"},
				{3, "parking.view_parkingrecord"},
			}
			for _, p := range perms {
				_, err := c.Exec(
					ctx,
					`INSERT INTO user_permissions
(user_id, codename) VALUES ($1, $2)`,
					p.user, p.codename,
				)
				if err != nil {
					return err
				}
			}
			return nil
		},
	)
	igts.Require().NoError(err, "failed to seed users")
}

// send performs one request as the asUser account (empty for an
// anonymous request) and unmarshals the JSON response into res when
// res is non-nil.
func (igts *IntegrationGinTestSuite) send(
	method, path, asUser string, body, res any,
) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		igts.Require().NoError(err, "cannot marshal request body")
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(
		method, "/api/parkapi/v1"+path, rd,
	)
	igts.Require().NoError(err, "cannot create %s request", method)
	req.Header.Add("Content-Type", "application/json")
	if asUser != "" {
		req.Header.Add(middleware.UserHeader, asUser)
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.Require().NoError(
			json.Unmarshal(b, res), "body is not json: %s", b,
		)
	}
	return w
}

type messageResp struct {
	Menssage string `json:"menssage"`
}

func (igts *IntegrationGinTestSuite) TestAuthentication() {
	igts.Run("malformed user id", func() {
		res := &messageResp{}
		w := igts.send(
			http.MethodGet, "/customers", "not-a-number", nil, res,
		)
		igts.Equal(401, w.Code)
		igts.Equal("Usuário inválido", res.Menssage)
	})
	igts.Run("unknown user id", func() {
		res := &messageResp{}
		w := igts.send(http.MethodGet, "/customers", "999", nil, res)
		igts.Equal(401, w.Code)
		igts.Equal("Usuário inválido", res.Menssage)
	})
	igts.Run("anonymous is forbidden", func() {
		res := &messageResp{}
		w := igts.send(http.MethodGet, "/customers", "", nil, res)
		igts.Equal(403, w.Code)
		igts.Equal(
			"Apenas administaradores tem essa função", res.Menssage,
		)
	})
	igts.Run("missing permission is forbidden", func() {
		res := &messageResp{}
		w := igts.send(
			http.MethodGet, "/customers", nobodyID, nil, res,
		)
		igts.Equal(403, w.Code)
		igts.Equal(
			"Apenas administaradores tem essa função", res.Menssage,
		)
	})
	igts.Run("holding another permission is forbidden", func() {
		res := &messageResp{}
		w := igts.send(
			http.MethodDelete, "/customers/1", ownerID, nil, res,
		)
		igts.Equal(403, w.Code)
	})
}

func (igts *IntegrationGinTestSuite) TestCustomerLifecycle() {
	cu := &model.Customer{}
	w := igts.send(
		http.MethodPost, "/customers", operatorID,
		map[string]any{
			"name":  "Maria Silva",
			"cpf":   "123.456.789-00",
			"phone": "+55 11 91234-5678",
		},
		cu,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())
	igts.NotZero(cu.ID)
	igts.Equal("Maria Silva", cu.Name)
	igts.Nil(cu.User)

	var list []*model.Customer
	w = igts.send(
		http.MethodGet,
		"/customers?name=maria", operatorID, nil, &list,
	)
	igts.Equal(200, w.Code)
	igts.Require().Len(list, 1, "filter should match the customer")
	igts.Equal(cu.ID, list[0].ID)

	patched := &model.Customer{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID,
		map[string]any{"name": "Maria Souza", "phone": nil},
		patched,
	)
	igts.Equal(200, w.Code)
	igts.Equal("Maria Souza", patched.Name)
	igts.Nil(patched.Phone, "explicit null must clear the phone")
	igts.NotNil(patched.CPF, "absent field must stay untouched")

	res := &messageResp{}
	w = igts.send(
		http.MethodDelete,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID, nil, res,
	)
	igts.Equal(200, w.Code)
	igts.Equal("Cliente deletado(a) com sucesso", res.Menssage)

	res = &messageResp{}
	w = igts.send(
		http.MethodGet,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID, nil, res,
	)
	igts.Equal(404, w.Code)
	igts.Equal("Cliente não encontrado(a)", res.Menssage)
}

func (igts *IntegrationGinTestSuite) TestEmptyPatch() {
	cu := &model.Customer{}
	w := igts.send(
		http.MethodPost, "/customers", operatorID,
		map[string]any{"name": "Paulo Lima", "cpf": "111.222.333-44"},
		cu,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())

	patched := &model.Customer{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID,
		map[string]any{}, patched,
	)
	igts.Equal(200, w.Code)
	igts.Equal(cu.Name, patched.Name)
	igts.Equal(cu.CPF, patched.CPF)
	igts.Equal(cu.Phone, patched.Phone)
	igts.Equal(cu.User, patched.User)
	igts.True(
		cu.UpdatedAt.Equal(patched.UpdatedAt),
		"an empty patch must not touch the row",
	)
}

func (igts *IntegrationGinTestSuite) TestPatchNullRequiredField() {
	cu := &model.Customer{}
	w := igts.send(
		http.MethodPost, "/customers", operatorID,
		map[string]any{"name": "Rita Alves"}, cu,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())

	res := &messageResp{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID,
		map[string]any{"name": nil}, res,
	)
	igts.Equal(500, w.Code, "a null name must hit the NOT NULL column")
	igts.Equal("Erro interno no servidor", res.Menssage)

	read := &model.Customer{}
	w = igts.send(
		http.MethodGet,
		fmt.Sprintf("/customers/%d", cu.ID), operatorID, nil, read,
	)
	igts.Equal(200, w.Code)
	igts.Equal("Rita Alves", read.Name, "the failed patch must not stick")

	spot := igts.createSpot("E1")
	res = &messageResp{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/spots/%d", spot.ID), adminID,
		map[string]any{"spot_number": nil}, res,
	)
	igts.Equal(500, w.Code)
	igts.Equal("E1", igts.getSpot(spot.ID).SpotNumber)
}

func (igts *IntegrationGinTestSuite) TestLookupKindValidation() {
	res := &messageResp{}
	w := igts.send(
		http.MethodPost, "/vehicles/brands", adminID,
		map[string]any{"name": "Fiat", "hex_code": "#0000ff"},
		res,
	)
	igts.Equal(400, w.Code)
	igts.Equal("hex_code só é aceito para cores", res.Menssage)

	res = &messageResp{}
	w = igts.send(
		http.MethodPost, "/vehicles/colors", adminID,
		map[string]any{"name": "Vermelho", "description": "x"},
		res,
	)
	igts.Equal(400, w.Code)
	igts.Equal("description só é aceito para tipos", res.Menssage)

	lk := &model.Lookup{}
	w = igts.send(
		http.MethodPost, "/vehicles/colors", adminID,
		map[string]any{"name": "Vermelho", "hex_code": "#ff0000"},
		lk,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())
	igts.Require().NotNil(lk.HexCode)
	igts.Equal("#ff0000", *lk.HexCode)

	dup := &messageResp{}
	w = igts.send(
		http.MethodPost, "/vehicles/colors", adminID,
		map[string]any{"name": "Vermelho"},
		dup,
	)
	igts.Equal(409, w.Code, "duplicate names must conflict")
}

func (igts *IntegrationGinTestSuite) createVehicle(
	plate string, owner *int64,
) *model.Vehicle {
	v := &model.Vehicle{}
	body := map[string]any{"license_plate": plate}
	if owner != nil {
		body["owner_id"] = *owner
	}
	w := igts.send(http.MethodPost, "/vehicles", adminID, body, v)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())
	return v
}

func (igts *IntegrationGinTestSuite) TestVehicleOwnerScoping() {
	owner := int64(3)
	own := igts.createVehicle("AAA1B11", &owner)
	other := igts.createVehicle("BBB2C22", nil)

	var list []*model.Vehicle
	w := igts.send(http.MethodGet, "/vehicles", ownerID, nil, &list)
	igts.Equal(200, w.Code)
	seen := false
	for _, lv := range list {
		igts.Require().NotNil(lv.Owner)
		igts.Equal(owner, *lv.Owner, "only own vehicles are listed")
		seen = seen || lv.ID == own.ID
	}
	igts.True(seen, "the owner's vehicle must be listed")

	w = igts.send(
		http.MethodGet,
		fmt.Sprintf("/vehicles/%d", other.ID), ownerID, nil, nil,
	)
	igts.Equal(404, w.Code, "foreign vehicles read as missing")

	list = nil
	w = igts.send(http.MethodGet, "/vehicles", adminID, nil, &list)
	igts.Equal(200, w.Code)
	igts.GreaterOrEqual(len(list), 2, "staff must see every vehicle")
}

func (igts *IntegrationGinTestSuite) TestVehiclePatchResolvesNames() {
	v := igts.createVehicle("CCC3D33", nil)
	igts.Nil(v.Brand)

	patched := &model.Vehicle{}
	w := igts.send(
		http.MethodPatch,
		fmt.Sprintf("/vehicles/%d", v.ID), adminID,
		map[string]any{"brand": "Fiat Nova", "color": " Azul  Escuro "},
		patched,
	)
	igts.Require().Equal(200, w.Code, "body: %s", w.Body.String())
	igts.Require().NotNil(patched.Brand)
	igts.Equal("fiat-nova", *patched.Brand)
	igts.Require().NotNil(patched.Color)
	igts.Equal("azul-escuro", *patched.Color)

	// A respelled name must resolve to the same lookup row.
	other := igts.createVehicle("DDD4E44", nil)
	patched2 := &model.Vehicle{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/vehicles/%d", other.ID), adminID,
		map[string]any{"brand": "FIAT-NOVA"},
		patched2,
	)
	igts.Require().Equal(200, w.Code)
	igts.Require().NotNil(patched2.Brand)
	igts.Equal(*patched.Brand, *patched2.Brand)

	var brands []*model.Lookup
	w = igts.send(
		http.MethodGet,
		"/vehicles/brands?name=fiat-nova", adminID, nil, &brands,
	)
	igts.Equal(200, w.Code)
	igts.Len(brands, 1, "find-or-create must not duplicate rows")

	res := &messageResp{}
	w = igts.send(
		http.MethodDelete,
		fmt.Sprintf("/vehicles/brands/%d", brands[0].ID),
		adminID, nil, res,
	)
	igts.Equal(409, w.Code, "referenced lookups must not be deleted")

	res = &messageResp{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/vehicles/%d", v.ID), adminID,
		map[string]any{"brand": "  --  "},
		res,
	)
	igts.Equal(400, w.Code, "blank names cannot be resolved")
}

func (igts *IntegrationGinTestSuite) createSpot(
	number string,
) *model.ParkingSpot {
	s := &model.ParkingSpot{}
	w := igts.send(
		http.MethodPost, "/spots", operatorID,
		map[string]any{"spot_number": number}, s,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())
	igts.False(s.IsOccupied, "fresh spots start free")
	return s
}

func (igts *IntegrationGinTestSuite) getSpot(
	id int64,
) *model.ParkingSpot {
	s := &model.ParkingSpot{}
	w := igts.send(
		http.MethodGet,
		fmt.Sprintf("/spots/%d", id), operatorID, nil, s,
	)
	igts.Require().Equal(200, w.Code)
	return s
}

func (igts *IntegrationGinTestSuite) TestParkingFlow() {
	spot := igts.createSpot("A1")
	v := igts.createVehicle("EEE5F55", nil)

	rec := &model.ParkingRecord{}
	w := igts.send(
		http.MethodPost, "/records", operatorID,
		map[string]any{
			"vehicle_id":      v.ID,
			"parking_spot_id": spot.ID,
		},
		rec,
	)
	igts.Require().Equal(201, w.Code, "body: %s", w.Body.String())
	igts.Equal(v.ID, rec.Vehicle)
	igts.Equal(spot.ID, rec.Spot)
	igts.False(rec.EntryTime.IsZero(), "entry time is set on entry")
	igts.Nil(rec.ExitTime)
	igts.True(igts.getSpot(spot.ID).IsOccupied, "entry occupies")

	exit := time.Now().UTC().Truncate(time.Second)
	patched := &model.ParkingRecord{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/records/%d", rec.ID), operatorID,
		map[string]any{"exit_time": exit}, patched,
	)
	igts.Require().Equal(200, w.Code, "body: %s", w.Body.String())
	igts.Require().NotNil(patched.ExitTime)
	igts.True(exit.Equal(*patched.ExitTime))
	igts.False(igts.getSpot(spot.ID).IsOccupied, "exit frees")

	reopened := &model.ParkingRecord{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/records/%d", rec.ID), operatorID,
		map[string]any{"exit_time": nil}, reopened,
	)
	igts.Require().Equal(200, w.Code)
	igts.Nil(reopened.ExitTime)
	igts.True(
		igts.getSpot(spot.ID).IsOccupied, "re-opening re-occupies",
	)
}

func (igts *IntegrationGinTestSuite) TestParkingRecordMove() {
	first := igts.createSpot("B1")
	second := igts.createSpot("B2")
	v := igts.createVehicle("FFF6G66", nil)

	rec := &model.ParkingRecord{}
	w := igts.send(
		http.MethodPost, "/records", operatorID,
		map[string]any{
			"vehicle_id":      v.ID,
			"parking_spot_id": first.ID,
		},
		rec,
	)
	igts.Require().Equal(201, w.Code)
	igts.True(igts.getSpot(first.ID).IsOccupied)

	moved := &model.ParkingRecord{}
	w = igts.send(
		http.MethodPatch,
		fmt.Sprintf("/records/%d", rec.ID), operatorID,
		map[string]any{"parking_spot_id": second.ID}, moved,
	)
	igts.Require().Equal(200, w.Code, "body: %s", w.Body.String())
	igts.Equal(second.ID, moved.Spot)
	igts.False(
		igts.getSpot(first.ID).IsOccupied,
		"moving must free the previous spot",
	)
	igts.True(igts.getSpot(second.ID).IsOccupied)
}

func (igts *IntegrationGinTestSuite) TestRecordOwnerScoping() {
	spot := igts.createSpot("C1")
	owner := int64(3)
	own := igts.createVehicle("GGG7H77", &owner)
	foreign := igts.createVehicle("HHH8J88", nil)

	for _, vid := range []int64{own.ID, foreign.ID} {
		w := igts.send(
			http.MethodPost, "/records", adminID,
			map[string]any{
				"vehicle_id":      vid,
				"parking_spot_id": spot.ID,
			},
			nil,
		)
		igts.Require().Equal(201, w.Code)
	}

	var list []*model.ParkingRecord
	w := igts.send(
		http.MethodGet,
		"/records?license_plate=GGG", ownerID, nil, &list,
	)
	igts.Equal(200, w.Code)
	igts.Require().Len(list, 1)
	igts.Equal(own.ID, list[0].Vehicle)

	list = nil
	w = igts.send(
		http.MethodGet,
		"/records?license_plate=HHH", ownerID, nil, &list,
	)
	igts.Equal(200, w.Code)
	igts.Empty(list, "foreign records must stay invisible")

	w = igts.send(http.MethodGet, "/records", "", nil, nil)
	igts.Equal(403, w.Code)
}

func (igts *IntegrationGinTestSuite) TestSpotNumberConflict() {
	igts.createSpot("D1")
	res := &messageResp{}
	w := igts.send(
		http.MethodPost, "/spots", operatorID,
		map[string]any{"spot_number": "D1"}, res,
	)
	igts.Equal(409, w.Code)
}
