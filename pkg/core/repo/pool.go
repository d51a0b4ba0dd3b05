// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo defines the interfaces which the use cases layer
// expects from the repositories, including the connection pool,
// connection, and transaction abstractions and one queryer interface
// per entity. Implementations live in the adapter layer (see
// pkg/adapter/db/postgres) and are injected into the use cases.
package repo

import "context"

type ConnHandler func(context.Context, Conn) error

type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error

	// Close releases the pooled connections. Commands defer it right
	// after creating the pool.
	Close() error
}
