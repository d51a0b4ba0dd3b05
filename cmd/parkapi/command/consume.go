// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/opencarpark/parkapi/pkg/adapter/config"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/lookupsrp"
	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/opencarpark/parkapi/pkg/core/log"
	"github.com/opencarpark/parkapi/pkg/core/repo"
	"github.com/opencarpark/parkapi/pkg/core/usecase/enrichuc"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the vehicle data enrichment queue consumer",
	Long: `Run the vehicle data enrichment queue consumer. Messages
are received from the configured SQS queue, the license plate data
source is consulted, and vehicles with missing brand, model, or
color are completed in the database. The consumer runs until it is
interrupted by SIGINT or SIGTERM.`,
	RunE: consumeQueue,
}

func consumeQueue(cmd *cobra.Command, _ []string) error {
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("config.LoadFile(%q): %w", cfgPath, err)
	}
	if !c.Enrichment.Enabled() {
		return fmt.Errorf("enrichment queue-url is not configured")
	}
	ctx, stop := signal.NotifyContext(
		cmd.Context(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()
	p, err := c.Database.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	client, err := c.Enrichment.NewSQSClient(ctx)
	if err != nil {
		return fmt.Errorf("creating SQS client: %w", err)
	}
	enrich := enrichuc.New(
		p, vehiclesrp.New(), lookupsrp.New(),
		c.Enrichment.NewPlateSource(),
	)
	consumer := c.Enrichment.NewConsumer(client, enrich)
	log.Info(ctx, "enrichment consumer starting")
	err = consumer.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running consumer: %w", err)
	}
	log.Info(ctx, "enrichment consumer stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
