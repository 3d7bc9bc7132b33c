// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import "errors"

var (
	// ErrBadArgs reports a malformed input: wrong length, non-canonical
	// scalar, invalid point encoding, or a setup that does not match the
	// compiled blob size.
	ErrBadArgs = errors.New("kzg4844: bad arguments")

	// ErrIO reports a trusted-setup read failure. The underlying error is
	// wrapped.
	ErrIO = errors.New("kzg4844: trusted setup read failed")

	// ErrInternal reports an invariant violation; it indicates a bug in the
	// library, not bad input.
	ErrInternal = errors.New("kzg4844: internal error")

	// ErrSettingsFreed is returned when a KZGSettings is used after Free.
	ErrSettingsFreed = errors.New("kzg4844: settings have been freed")
)
