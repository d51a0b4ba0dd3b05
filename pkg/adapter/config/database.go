// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	hscram "github.com/opencarpark/parkapi/pkg/adapter/hash/scram"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/scram"
)

// Database contains the database related configuration settings.
type Database struct {
	Host    string // domain name or IP address of the DBMS server
	Port    int    // port number of the DBMS server
	Name    string // database name, like parkapi
	PassDir string `yaml:"pass-dir"` // path of the passwords dir

	// RoleSuffix specifies a possibly empty suffix for the database
	// role names. Normally, repo.AdminRole and repo.NormalRole roles
	// are used. In the parallel test cases, it is required to create
	// multiple non-colliding roles in the same database cluster and
	// so having a unique (per test) role suffix helps with
	// parallelism.
	RoleSuffix repo.Role `yaml:"role-suffix,omitempty"`

	// AuthMethod specifies the database authentication method name,
	// indicating how role passwords should be hashed before they are
	// stored in the database. Currently, only scram-sha-1 and
	// scram-sha-256 methods are supported. The scram-sha-256 is the
	// default value.
	AuthMethod string `yaml:"auth-method,omitempty"`

	// hasher is instantiated based on the AuthMethod; the database
	// initialization command uses it to provision role passwords
	// without sending them in plaintext DDL queries.
	hasher scram.Hasher `yaml:"-"`
}

// ValidateAndNormalize validates the database settings, replaces the
// zero port with the PostgreSQL default, and instantiates the hasher
// matching the AuthMethod.
func (d *Database) ValidateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("database host must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("database name must be set")
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	switch am := d.AuthMethod; am {
	case "scram-sha-1":
		d.hasher = hscram.SHA1()
	case "":
		d.AuthMethod = "scram-sha-256"
		fallthrough
	case "scram-sha-256":
		d.hasher = hscram.SHA256()
	default:
		return fmt.Errorf(
			"unsupported database authentication method: %q", am,
		)
	}
	return nil
}

// Hasher returns the scram hasher matching the configured AuthMethod.
// ValidateAndNormalize must have been called beforehand.
func (d *Database) Hasher() scram.Hasher {
	return d.hasher
}

// ConnectionPool creates a database connection pool for the `r` role,
// reading its password from the .pgpass file in the d.PassDir folder.
// The `d.RoleSuffix` will be appended to the given role name.
func (d Database) ConnectionPool(
	ctx context.Context, r repo.Role,
) (repo.Pool, error) {
	u, err := d.ConnectionURL(r)
	if err != nil {
		return nil, err
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return p, nil
}

// ConnectionURL returns the database connection URL embedding the
// host, port, suffixed role name, database name, and the password as
// read by the Password method. Returned URL has the postgresql
// scheme.
func (d Database) ConnectionURL(r repo.Role) (string, error) {
	pass, err := d.Password(r)
	if err != nil {
		return "", err
	}
	r = r + d.RoleSuffix
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(string(r), pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// Password reads the password of the suffixed `r` role from the
// .pgpass file in the d.PassDir folder. The file may contain empty or
// `#`-commented lines in addition to the password specifying lines
// which should conform with the pgpass files format:
//
//	host:port:dbname:role:password
func (d Database) Password(r repo.Role) (string, error) {
	path := filepath.Join(d.PassDir, ".pgpass")
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	r = r + d.RoleSuffix
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, r)
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			return line[len(prfx):], nil
		}
	}
	return "", fmt.Errorf("no matching password line for role %q", r)
}

// ConnectionInfo returns the host, port, and database name of the
// connection information which are kept in this Database instance.
func (d Database) ConnectionInfo() (dbName, host string, port int) {
	return d.Name, d.Host, d.Port
}
