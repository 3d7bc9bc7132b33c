// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build minimal

package kzg4844

// FieldElementsPerBlob is the number of field elements in a blob (minimal
// preset, for testing).
const FieldElementsPerBlob = 4
