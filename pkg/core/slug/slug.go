// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package slug normalizes free-text lookup names before they are used
// as find-or-create keys, so that two spellings of the same name
// ("Azul Escuro", " azul  escuro ") resolve to one lookup row.
// Unicode letters are preserved, following the NFKC normalization
// form, so accented brand or color names keep their letters intact.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make converts s into its slug form: NFKC-normalized, lowercased,
// with any run of whitespace or hyphens collapsed into one hyphen and
// all other non-letter non-digit runes dropped. Surrounding
// whitespace never contributes separators.
func Make(s string) string {
	s = norm.NFKC.String(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
