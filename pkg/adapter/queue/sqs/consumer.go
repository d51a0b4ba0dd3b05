// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqs

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/goccy/go-json"

	"github.com/opencarpark/parkapi/pkg/core/log"
)

// Completer runs the enrichment of one license plate. The enrichment
// use case implements it.
type Completer interface {
	Complete(ctx context.Context, licensePlate string) error
}

// Consumer drains the enrichment queue. Messages are long-polled in
// batches and handed to a fixed pool of workers; a message is deleted
// from the queue only after its enrichment succeeds, so a failed one
// comes back after the visibility timeout.
type Consumer struct {
	client    *sqs.Client
	queueURL  string
	completer Completer
	workers   int
}

func NewConsumer(client *sqs.Client, queueURL string, c Completer, workers int) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		client:    client,
		queueURL:  queueURL,
		completer: c,
		workers:   workers,
	}
}

// Start blocks receiving messages until the ctx is cancelled. It
// always returns the ctx cancellation cause.
func (c *Consumer) Start(ctx context.Context) error {
	log.Info(ctx, "enrichment consumer started", log.Str("queue", c.queueURL))
	msgs := make(chan types.Message)
	var wg sync.WaitGroup
	wg.Add(c.workers)
	for i := 0; i < c.workers; i++ {
		go func() {
			defer wg.Done()
			for m := range msgs {
				c.handle(ctx, m)
			}
		}()
	}
	defer func() {
		close(msgs)
		wg.Wait()
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &c.queueURL,
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			VisibilityTimeout:   60,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error(ctx, "receiving messages", log.Err("error", err))
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		for _, m := range out.Messages {
			select {
			case msgs <- m:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, m types.Message) {
	if m.Body == nil {
		c.delete(ctx, m.ReceiptHandle)
		return
	}
	var msg message
	if err := json.Unmarshal([]byte(*m.Body), &msg); err != nil {
		log.Warn(
			ctx, "dropping malformed message",
			log.Err("error", err),
		)
		c.delete(ctx, m.ReceiptHandle)
		return
	}
	if err := c.completer.Complete(ctx, msg.LicensePlate); err != nil {
		// left in the queue for a retry after the visibility timeout
		log.Error(
			ctx, "plate enrichment failed",
			log.Err("error", err),
			log.Plate(msg.LicensePlate),
			log.Str("message_id", msg.ID),
		)
		return
	}
	c.delete(ctx, m.ReceiptHandle)
}

func (c *Consumer) delete(ctx context.Context, receiptHandle *string) {
	if receiptHandle == nil {
		return
	}
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &c.queueURL,
		ReceiptHandle: receiptHandle,
	})
	if err != nil {
		log.Error(ctx, "deleting message", log.Err("error", err))
	}
}
