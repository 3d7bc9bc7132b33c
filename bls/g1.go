// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// CompressedSizeG1 is the byte length of a compressed G1 point.
const CompressedSizeG1 = bls12381.SizeOfG1AffineCompressed

// G1FromCompressed deserializes a G1 point from its 48-byte compressed
// encoding, rejecting encodings that are non-canonical, off the curve or
// outside the prime-order subgroup.
func G1FromCompressed(b [CompressedSizeG1]byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}

// G1ToCompressed serializes a G1 point to its 48-byte compressed encoding.
func G1ToCompressed(p *bls12381.G1Affine) [CompressedSizeG1]byte {
	return p.Bytes()
}

// G1Mul multiplies a G1 point by a scalar.
//
// Scalars zero and one are fast-pathed; the FFT butterflies multiply by small
// roots of unity most of the time and the backend's big.Int multiplication is
// already bounded to the operand's bit length. Not constant time.
func G1Mul(p *bls12381.G1Affine, scalar *fr.Element) bls12381.G1Affine {
	if scalar.IsZero() {
		return ZeroG1
	}
	if scalar.IsOne() {
		return *p
	}
	var s big.Int
	scalar.BigInt(&s)
	var out bls12381.G1Affine
	out.ScalarMultiplication(p, &s)
	return out
}

// naiveLinCombThreshold is the size up to which a double-and-add loop beats
// the fixed cost of setting up a multi-exponentiation.
const naiveLinCombThreshold = 8

// G1LinComb returns the linear combination sum_i scalars[i]*points[i].
//
// Large combinations go through the backend's Pippenger multi-exponentiation.
func G1LinComb(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, ErrLengthMismatch
	}
	if len(points) <= naiveLinCombThreshold {
		acc := ZeroG1
		for i := range points {
			t := G1Mul(&points[i], &scalars[i])
			acc.Add(&acc, &t)
		}
		return acc, nil
	}
	var out bls12381.G1Affine
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, err
	}
	return out, nil
}
