// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

// Package debug gates internal assertions behind the "debug" build tag.
package debug

// Debug reports whether the library was built with the debug tag.
const Debug = false

// Assert does nothing unless the debug build tag is provided.
func Assert(condition bool, message ...string) {}
