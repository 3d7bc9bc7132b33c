// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bls wraps the gnark-crypto BLS12-381 backend with the byte
// conventions of the blob commitment scheme: 32-byte little-endian canonical
// scalars, 48-byte compressed G1 points and 96-byte compressed G2 points.
//
// Arithmetic on fr.Element, bls12381.G1Affine and bls12381.G2Affine is used
// directly from the backend; this package only adds the operations the
// backend spells differently (length-bounded scalar multiplication, linear
// combinations, the two-sided pairing check) and the wire encodings.
package bls

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

var (
	// ErrNonCanonicalScalar is returned when a 32-byte scalar encoding is
	// greater than or equal to the field modulus.
	ErrNonCanonicalScalar = errors.New("scalar is not a canonical field element")

	// ErrInvalidPoint is returned when a compressed point encoding does not
	// decode to a point on the curve in the prime-order subgroup.
	ErrInvalidPoint = errors.New("invalid compressed point")

	// ErrLengthMismatch is returned by G1LinComb when the point and scalar
	// slices differ in length.
	ErrLengthMismatch = errors.New("points and scalars differ in length")
)

var (
	// GenG1 is the standard generator of G1.
	GenG1 bls12381.G1Affine
	// GenG2 is the standard generator of G2.
	GenG2 bls12381.G2Affine
	// ZeroG1 is the point at infinity of G1.
	ZeroG1 bls12381.G1Affine
)

func init() {
	_, _, GenG1, GenG2 = bls12381.Generators()
}
