// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/opencarpark/parkapi/pkg/core/model"
)

type LookupsConnQueryer interface {
	LookupsQueryer
}

type LookupsTxQueryer interface {
	LookupsQueryer
}

// LookupsQueryer manages the four named reference tables behind one
// interface; every operation selects its table by the kind argument.
type LookupsQueryer interface {
	Create(ctx context.Context, k model.LookupKind, nl model.NewLookup) (*model.Lookup, error)
	List(ctx context.Context, k model.LookupKind, f model.LookupFilter) ([]model.Lookup, error)
	GetByID(ctx context.Context, k model.LookupKind, id int64) (*model.Lookup, error)
	Patch(ctx context.Context, k model.LookupKind, id int64, p model.LookupPatch) (*model.Lookup, error)
	Delete(ctx context.Context, k model.LookupKind, id int64) error

	// FindOrCreate resolves a normalized name into a lookup row,
	// inserting it when absent. The insert relies on the unique name
	// constraint (ON CONFLICT DO NOTHING plus a reselect), so
	// concurrent resolutions of one name never create duplicates.
	FindOrCreate(ctx context.Context, k model.LookupKind, name string) (*model.Lookup, error)
}

type Lookups interface {
	Conn(Conn) LookupsConnQueryer
	Tx(Tx) LookupsTxQueryer
}
