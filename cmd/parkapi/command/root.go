// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the parkapi
// project. Commands are organized using the cobra library.
// The root command starts the web server itself, the "db" sub-command
// manages the database schema and roles, and the "consume"
// sub-command runs the enrichment queue consumer.
//
//	./parkapi [-c /path/of/main/config.yaml]       # start web server
//	./parkapi db init [-c /path/of/main/config.yaml]
//	./parkapi consume [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/opencarpark/parkapi/pkg/adapter/config"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin"
	"github.com/opencarpark/parkapi/pkg/adapter/restful/gin/routes"
	"github.com/opencarpark/parkapi/pkg/core/log"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/usecase/vehiclesuc"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "parkapi",
	Short: "Parking lot management REST API",
	Long: `Parking lot management REST API which keeps track of
customers, their vehicles, parking spots, and parking records.
Vehicle brands, models, colors, and types are managed as lookup
tables, so vehicles can reference them consistently. Requests are
authenticated by an upstream gateway and authorized here based on
the per-user permission codenames. Vehicles which are registered
with incomplete data may be completed asynchronously by the
enrichment queue consumer.`,
	RunE: startWebServer,
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("config.LoadFile(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var d vehiclesuc.Dispatcher
	if c.Enrichment.Enabled() {
		client, err := c.Enrichment.NewSQSClient(ctx)
		if err != nil {
			return fmt.Errorf("creating SQS client: %w", err)
		}
		d = c.Enrichment.NewDispatcher(client)
		log.Info(ctx, "enrichment dispatching enabled")
	}
	var e *gin.Engine = c.Gin.NewEngine()
	routes.Register(e, p, d)
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
