// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Command parkapi runs the parking lot management REST API server.
// The root command starts the web server, the "db init" sub-command
// prepares the database schema and roles, and the "consume"
// sub-command runs the vehicle data enrichment queue consumer.
package main

import "github.com/opencarpark/parkapi/cmd/parkapi/command"

func main() {
	command.Execute()
}
