// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStates(t *testing.T) {
	type payload struct {
		Name model.Optional[string] `json:"name"`
		User model.Optional[int64]  `json:"user_id"`
	}
	for _, tc := range []struct {
		name string
		body string
		want payload
	}{
		{
			name: "absent fields stay unset",
			body: `{}`,
			want: payload{},
		},
		{
			name: "null raises Set only",
			body: `{"user_id": null}`,
			want: payload{User: model.Null[int64]()},
		},
		{
			name: "value raises Set and Valid",
			body: `{"name": "Maria", "user_id": 7}`,
			want: payload{
				Name: model.Some("Maria"),
				User: model.Some(int64(7)),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := payload{}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestOptionalPtr(t *testing.T) {
	assert.Nil(t, model.Optional[string]{}.Ptr())
	assert.Nil(t, model.Null[string]().Ptr())
	p := model.Some("abc").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "abc", *p)
}

func TestLookupRefUnmarshal(t *testing.T) {
	type payload struct {
		Brand model.LookupRef `json:"brand"`
	}

	p := payload{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Brand.Set)
	assert.True(t, p.Brand.Empty())

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand": null}`), &p))
	assert.True(t, p.Brand.Set)
	assert.True(t, p.Brand.Empty())

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand": 42}`), &p))
	require.NotNil(t, p.Brand.ID)
	assert.Equal(t, int64(42), *p.Brand.ID)
	assert.Nil(t, p.Brand.Name)

	p = payload{}
	require.NoError(
		t, json.Unmarshal([]byte(`{"brand": "Fiat"}`), &p),
	)
	require.NotNil(t, p.Brand.Name)
	assert.Equal(t, "Fiat", *p.Brand.Name)
	assert.Nil(t, p.Brand.ID)

	p = payload{}
	err := json.Unmarshal([]byte(`{"brand": [1]}`), &p)
	assert.Error(t, err, "arrays are not a valid reference")
}
