// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"
)

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Plate returns an Attr for a vehicle license plate value.
func Plate(value string) slog.Attr {
	return slog.String("license_plate", value)
}

// Str returns an Attr for a string value.
func Str(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int64 returns an Attr for an int64 value.
func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}
