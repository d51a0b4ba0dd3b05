// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package slug_test

import (
	"testing"

	"github.com/opencarpark/parkapi/pkg/core/slug"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Fiat", "fiat"},
		{"  Azul  Escuro ", "azul-escuro"},
		{"azul_escuro", "azul-escuro"},
		{"AZUL-ESCURO", "azul-escuro"},
		{"Citroën", "citroën"},
		{"Caminhão 4x4", "caminhão-4x4"},
		{"a!@#b", "ab"},
		{"--- ", ""},
		{"", ""},
	} {
		assert.Equal(t, tc.want, slug.Make(tc.in), "Make(%q)", tc.in)
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, in := range []string{
		"Azul  Escuro", "Citroën C3", "moto", " Vaga 12 ",
	} {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "Make(%q)", in)
	}
}
