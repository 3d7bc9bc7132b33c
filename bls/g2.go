// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CompressedSizeG2 is the byte length of a compressed G2 point.
const CompressedSizeG2 = bls12381.SizeOfG2AffineCompressed

// G2FromCompressed deserializes a G2 point from its 96-byte compressed
// encoding, with the same canonicity, curve and subgroup checks as
// G1FromCompressed.
func G2FromCompressed(b [CompressedSizeG2]byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}
