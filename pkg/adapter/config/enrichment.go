// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/opencarpark/parkapi/pkg/adapter/enrich/platelookup"
	"github.com/opencarpark/parkapi/pkg/adapter/queue/sqs"
)

// Enrichment contains the plate enrichment related configuration
// settings. An empty QueueURL disables enrichment entirely; vehicles
// registered with missing data are then left for manual updates.
type Enrichment struct {
	QueueURL  string `yaml:"queue-url"`
	Region    string
	SourceURL string `yaml:"source-url"`

	// Workers is the size of the consumer worker pool.
	Workers int

	// Timeout bounds one HTTP fetch of the plate data source.
	Timeout Duration
}

// Enabled reports whether the enrichment queue is configured.
func (e Enrichment) Enabled() bool {
	return e.QueueURL != ""
}

// ValidateAndNormalize fills the worker pool and timeout defaults and
// checks that an enabled enrichment names its data source.
func (e *Enrichment) ValidateAndNormalize() error {
	if !e.Enabled() {
		return nil
	}
	if e.SourceURL == "" {
		return fmt.Errorf("enrichment source-url must be set")
	}
	if e.Workers == 0 {
		e.Workers = 4
	}
	if e.Timeout == 0 {
		e.Timeout = Duration(10 * time.Second)
	}
	return nil
}

// NewSQSClient instantiates an SQS client from the ambient AWS
// credentials and the configured region.
func (e Enrichment) NewSQSClient(ctx context.Context) (*awssqs.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if e.Region != "" {
		opts = append(opts, awsconfig.WithRegion(e.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return awssqs.NewFromConfig(cfg), nil
}

// NewDispatcher instantiates the enrichment queue producer.
func (e Enrichment) NewDispatcher(client *awssqs.Client) *sqs.Dispatcher {
	return sqs.NewDispatcher(client, e.QueueURL)
}

// NewConsumer instantiates the enrichment queue consumer.
func (e Enrichment) NewConsumer(client *awssqs.Client, c sqs.Completer) *sqs.Consumer {
	return sqs.NewConsumer(client, e.QueueURL, c, e.Workers)
}

// NewPlateSource instantiates the plate data source client.
func (e Enrichment) NewPlateSource() *platelookup.Client {
	return platelookup.New(e.SourceURL, time.Duration(e.Timeout))
}
