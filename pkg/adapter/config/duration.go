// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"time"
)

// Duration is a specialization of the time.Duration which can be
// decoded from the human-readable representation (e.g., 10s or 1m30s)
// in a YAML configuration file.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so a
// byte slice read from a YAML file can be decoded as a time duration
// conforming to the time.ParseDuration expected format.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface using
// the time.Duration string representation.
func (d *Duration) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, errors.New("nil duration")
	}
	return []byte(time.Duration(*d).String()), nil
}
