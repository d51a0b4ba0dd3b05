// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package platelookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencarpark/parkapi/pkg/adapter/enrich/platelookup"
	"github.com/opencarpark/parkapi/pkg/core/usecase/enrichuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const platesPage = `<html><body>
<h1>Consulta de placas</h1>
<table>
  <tr><th>Placa</th><th>Marca</th><th>Modelo</th><th>Cor</th></tr>
  <tr><td> ABC1D23 </td><td>Fiat</td><td>Uno</td><td>Azul</td></tr>
  <tr><td>XYZ9A88</td><td>Honda</td><td>Civic</td><td></td></tr>
  <tr><td>QWE2R45</td><td>VW</td></tr>
</table>
</body></html>`

func newServer(t *testing.T) *platelookup.Client {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(platesPage))
		},
	))
	t.Cleanup(srv.Close)
	return platelookup.New(srv.URL, 2*time.Second)
}

func TestLookup(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	d, err := c.Lookup(ctx, "abc1d23")
	require.NoError(t, err)
	require.NotNil(t, d, "plates must match case-insensitively")
	assert.Equal(t, &enrichuc.PlateData{
		Brand: "Fiat", Model: "Uno", Color: "Azul",
	}, d)
	assert.True(t, d.Complete())

	d, err = c.Lookup(ctx, "XYZ9A88")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.False(t, d.Complete(), "empty color is incomplete")

	d, err = c.Lookup(ctx, "QWE2R45")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "VW", d.Brand)
	assert.Empty(t, d.Model, "short rows read as empty cells")

	d, err = c.Lookup(ctx, "ZZZ0Z00")
	require.NoError(t, err)
	assert.Nil(t, d, "missing plates are not an error")
}

func TestLookupBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
	))
	t.Cleanup(srv.Close)
	c := platelookup.New(srv.URL, 2*time.Second)
	_, err := c.Lookup(context.Background(), "ABC1D23")
	assert.Error(t, err)
}
