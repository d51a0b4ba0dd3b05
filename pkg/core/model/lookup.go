// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// LookupKind enumerates the named reference tables which a Vehicle
// may point to. Each kind maps to its own table and pt-BR display
// name (used in the generic API messages).
type LookupKind int

const (
	BrandLookup LookupKind = iota
	ModelLookup
	ColorLookup
	TypeLookup
)

// DisplayName returns the pt-BR entity name used in API messages.
func (k LookupKind) DisplayName() string {
	switch k {
	case BrandLookup:
		return "Marca de Veículo"
	case ModelLookup:
		return "Modelo de Veículo"
	case ColorLookup:
		return "Cor de Veículo"
	case TypeLookup:
		return "Tipo de Veículo"
	}
	panic("unknown lookup kind")
}

// Lookup models one row of a named reference table. HexCode is only
// meaningful for the color kind and Description for the type kind;
// they stay nil for the other kinds and are omitted from responses.
type Lookup struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	HexCode     *string   `json:"hex_code,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LookupFilter restricts a lookup listing. Both fields match
// case-insensitively as substrings; nil fields impose no constraint.
type LookupFilter struct {
	Name    *string `form:"name"`
	HexCode *string `form:"hex_code"`
}
