// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package middleware contains the gin middlewares for resolving the
// authenticated user and gating endpoints by permission codenames.
// Authentication itself happens upstream; the gateway forwards the
// authenticated user id in the X-User header and this backend trusts
// it, loading the user row with its granted permissions.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/serdser"
	"github.com/opencarpark/parkapi/pkg/core/authz"
	"github.com/opencarpark/parkapi/pkg/core/model"
	"github.com/opencarpark/parkapi/pkg/core/usecase/usersuc"
)

// userKey is the gin context key holding the resolved *model.User.
const userKey = "currentUser"

// UserHeader carries the authenticated user id as forwarded by the
// upstream gateway.
const UserHeader = "X-User"

// CurrentUser resolves the X-User header into a user model and
// stores it in the request context. A request without the header
// proceeds anonymously; a malformed or unknown id is rejected with
// 401 since the gateway should never forward one.
func CurrentUser(users *usersuc.UseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader(UserHeader)
		if h == "" {
			c.Next()
			return
		}
		id, err := strconv.ParseInt(h, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				serdser.Message("Usuário inválido"),
			)
			return
		}
		u, err := users.Get(c, id)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				serdser.Message("Usuário inválido"),
			)
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// UserFrom returns the resolved user of the request, or nil for an
// anonymous request.
func UserFrom(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		return v.(*model.User)
	}
	return nil
}

// RequirePerms gates the following handlers by the perms permission
// codenames. Internal (staff or superuser) users always pass; other
// users must hold every codename.
func RequirePerms(perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.HasPermissions(UserFrom(c), perms) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				serdser.Message(
					"Apenas administaradores tem essa função",
				),
			)
			return
		}
		c.Next()
	}
}
