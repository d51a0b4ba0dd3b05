// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Role is a string specifying a database connection role. Each role
// has a set of granted privileges which indicates which operations
// may be performed after using it for connecting to a database.
type Role string

// These constants specify the expected database roles. The AdminRole
// must exist beforehand (i.e., must be created manually) with super
// user privileges, so the "db init" command can use it to create the
// schema and provision the NormalRole. The authentication information
// of both roles is kept in the configuration file.
const (
	// AdminRole is an administrator (super user) role which is only
	// used by the database initialization command.
	AdminRole Role = "admin"

	// NormalRole is the unprivileged role which the web server uses
	// for all request handling.
	NormalRole Role = "parkapi"
)
