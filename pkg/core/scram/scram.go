// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interface for a Salted Challenge
// Response Authentication Mechanism (SCRAM) hasher. For the
// corresponding implementation, check the adapter layer.
//
// In our use cases it is only required to generate a hash string with
// the standard format (having a password, salt, and iteration count),
// so it can be passed to a PostgreSQL CREATE/ALTER ROLE query by the
// database initialization command without sending the plaintext role
// password in a DDL query (so its possible logging is not a threat).
// The server and client side SCRAM conversations are managed by the
// PostgreSQL server and its driver and are not needed here.
package scram

// Hasher represents the expectations from a SCRAM hasher
// implementation which for a specific underlying hash function (e.g.,
// SHA1 or SHA256) computes the storedKey and serverKey values
// whenever its Hash method is called with the relevant pass, salt,
// and iters arguments. Although a username and an authorization
// identifier are required in a SCRAM protocol, they do not affect the
// storedKey and serverKey and so are not asked by this interface.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication.
	//
	// The pass argument must be non-empty. The salt must contain a
	// base64 encoding of the desired salt bytes, otherwise, if an
	// empty value is passed, a random salt will be generated and used
	// instead. The iters must be at least equal to 4096 (RFC 7677
	// recommends 15000 or more).
	//
	// In absence of errors, a hashed string will be returned which
	// conforms to the following format.
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	Hash(pass, salt string, iters int) (string, error)
}
