// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authz_test

import (
	"testing"

	"github.com/opencarpark/parkapi/pkg/core/authz"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestIsInternal(t *testing.T) {
	assert.False(t, authz.IsInternal(nil), "anonymous is not internal")
	assert.False(t, authz.IsInternal(&model.User{}))
	assert.True(t, authz.IsInternal(&model.User{IsStaff: true}))
	assert.True(t, authz.IsInternal(&model.User{IsSuperuser: true}))
	assert.True(t, authz.IsInternal(&model.User{
		IsStaff: true, IsSuperuser: true,
	}))
}

func TestHasPermissions(t *testing.T) {
	staff := &model.User{IsStaff: true}
	granted := &model.User{
		Perms: []string{
			"vehicles.add_vehicle", "vehicles.view_vehicle",
		},
	}
	for _, tc := range []struct {
		name  string
		user  *model.User
		perms []string
		want  bool
	}{
		{
			name:  "anonymous is denied",
			user:  nil,
			perms: []string{"vehicles.view_vehicle"},
			want:  false,
		},
		{
			name: "anonymous is denied without perms too",
			user: nil,
			want: false,
		},
		{
			name:  "staff bypasses the perms",
			user:  staff,
			perms: []string{"vehicles.delete_vehicle"},
			want:  true,
		},
		{
			name: "empty perms only passes internal users",
			user: staff,
			want: true,
		},
		{
			name: "empty perms denies normal users",
			user: granted,
			want: false,
		},
		{
			name:  "all perms held",
			user:  granted,
			perms: []string{"vehicles.add_vehicle"},
			want:  true,
		},
		{
			name: "one missing perm denies",
			user: granted,
			perms: []string{
				"vehicles.add_vehicle", "vehicles.delete_vehicle",
			},
			want: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := authz.HasPermissions(tc.user, tc.perms)
			assert.Equal(t, tc.want, got)
		})
	}
}
