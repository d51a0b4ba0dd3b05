// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqs adapts the plate enrichment queue over AWS SQS. The
// Dispatcher enqueues enrichment requests from the web server and the
// Consumer drains them with a worker pool, running the enrichment use
// case per message.
package sqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// message is the queue wire format of one enrichment request. The id
// only serves log correlation between the producer and the consumer.
type message struct {
	ID           string `json:"id"`
	LicensePlate string `json:"license_plate"`
}

// Dispatcher enqueues plate enrichment requests. It implements the
// vehiclesuc.Dispatcher interface.
type Dispatcher struct {
	client   *sqs.Client
	queueURL string
}

func NewDispatcher(client *sqs.Client, queueURL string) *Dispatcher {
	return &Dispatcher{client: client, queueURL: queueURL}
}

// DispatchPlateLookup enqueues one enrichment request for the
// licensePlate.
func (d *Dispatcher) DispatchPlateLookup(ctx context.Context, licensePlate string) error {
	body, err := json.Marshal(message{
		ID:           uuid.NewString(),
		LicensePlate: licensePlate,
	})
	if err != nil {
		return fmt.Errorf("marshalling message: %w", err)
	}
	sbody := string(body)
	_, err = d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &d.queueURL,
		MessageBody: &sbody,
	})
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
