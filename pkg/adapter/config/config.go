// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads and validates the YAML configuration file and
// provides factory methods which turn the settings into concrete
// adapter instances (database connection pool, gin engine, and the
// plate enrichment queue pieces).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rgin "github.com/opencarpark/parkapi/pkg/adapter/restful/gin"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database   Database   // PostgreSQL database connection settings
	Gin        Gin        // Gin-Gonic instantiation settings
	Enrichment Enrichment // plate enrichment queue settings
}

// Load unmarshals the data byte slice into a Config instance. Extra
// items in the data will be ignored and missing items will take their
// default values. Thereafter, the loaded Config will be validated and
// normalized in order to ensure that provided settings are
// acceptable.
func Load(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// LoadFile reads the path file and loads it with Load.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q file: %w", path, err)
	}
	return Load(data)
}

// ValidateAndNormalize validates the settings of all sections and
// fills their defaults.
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return err
	}
	c.Gin.Normalize()
	return c.Enrichment.ValidateAndNormalize()
}

// Gin contains the gin-gonic related configuration settings. Fields
// are defined as pointers, so it is possible to detect if they are or
// are not initialized and fill them with their default values.
type Gin struct {
	Logger   *bool // whether to register the request logging middleware
	Recovery *bool // whether to register the panic recovery middleware
}

// Normalize enables the logger and recovery middlewares unless they
// are explicitly configured.
func (g *Gin) Normalize() {
	t := true
	if g.Logger == nil {
		g.Logger = &t
	}
	if g.Recovery == nil {
		g.Recovery = &t
	}
}

// NewEngine instantiates a new gin-gonic engine instance based on the
// `g` settings.
func (g Gin) NewEngine() *rgin.Engine {
	middlewares := make([]rgin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, rgin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, rgin.Recovery())
	}
	return rgin.New(middlewares...)
}
