// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/opencarpark/parkapi/pkg/adapter/config"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/customersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/lookupsrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/parkingrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/usersrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init sub-command creates or updates the
database tables and provisions the unprivileged web server role.`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema and roles",
	Long: `Initialize the database schema and roles. Tables are
created or updated in their foreign key dependency order and the
unprivileged web server role is created (or its password is updated)
with the minimal table privileges. The admin role credentials are
read from the passwords directory, so they must be provisioned in
advance.`,
	RunE: initDatabase,
}

func initDatabase(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("config.LoadFile(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating admin DB pool: %w", err)
	}
	defer p.Close()
	return p.Conn(ctx, func(ctx context.Context, cc repo.Conn) error {
		conn := cc.(*postgres.Conn)
		if err := migrateTables(ctx, conn); err != nil {
			return fmt.Errorf("migrating tables: %w", err)
		}
		if err := provisionNormalRole(ctx, conn, c); err != nil {
			return fmt.Errorf("provisioning normal role: %w", err)
		}
		return nil
	})
}

// migrateTables creates or updates all tables. The order follows the
// foreign key dependencies, so referenced tables exist before the
// referencing constraints are created.
func migrateTables(ctx context.Context, conn *postgres.Conn) error {
	if err := usersrp.AutoMigrate(ctx, conn); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	if err := customersrp.AutoMigrate(ctx, conn); err != nil {
		return fmt.Errorf("customers: %w", err)
	}
	if err := lookupsrp.AutoMigrate(ctx, conn); err != nil {
		return fmt.Errorf("lookups: %w", err)
	}
	if err := vehiclesrp.AutoMigrate(ctx, conn); err != nil {
		return fmt.Errorf("vehicles: %w", err)
	}
	if err := parkingrp.AutoMigrate(ctx, conn); err != nil {
		return fmt.Errorf("parking: %w", err)
	}
	return nil
}

// provisionNormalRole creates the unprivileged web server role, or
// updates its password if it already exists, and grants it the
// minimal privileges. The password is hashed locally with the
// configured SCRAM mechanism, so the plaintext never appears in a
// DDL statement (which may be logged by the DBMS server).
func provisionNormalRole(
	ctx context.Context, conn *postgres.Conn, c *config.Config,
) error {
	role := string(repo.NormalRole + c.Database.RoleSuffix)
	pass, err := c.Database.Password(repo.NormalRole)
	if err != nil {
		return fmt.Errorf("reading role password: %w", err)
	}
	hash, err := c.Database.Hasher().Hash(pass, "", 15000)
	if err != nil {
		return fmt.Errorf("hashing role password: %w", err)
	}
	dbName, _, _ := c.Database.ConnectionInfo()
	stmts := []string{
		fmt.Sprintf(`DO $$ BEGIN
IF NOT EXISTS (SELECT FROM pg_roles WHERE rolname = '%[1]s') THEN
	CREATE ROLE "%[1]s" LOGIN PASSWORD '%[2]s';
ELSE
	ALTER ROLE "%[1]s" LOGIN PASSWORD '%[2]s';
END IF;
END $$`, role, hash),
		fmt.Sprintf(
			`GRANT CONNECT ON DATABASE "%s" TO "%s"`, dbName, role,
		),
		fmt.Sprintf(`GRANT USAGE ON SCHEMA public TO "%s"`, role),
		fmt.Sprintf(
			`GRANT SELECT, INSERT, UPDATE, DELETE
ON ALL TABLES IN SCHEMA public TO "%s"`, role,
		),
		fmt.Sprintf(
			`GRANT USAGE, SELECT
ON ALL SEQUENCES IN SCHEMA public TO "%s"`, role,
		),
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt, err)
		}
	}
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
