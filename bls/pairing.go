// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PairingCheck reports whether e(a1, a2) * e(b1, b2) == 1.
//
// Verification equations of the form e(P, Q) == e(R, S) are expressed by
// negating one of the G1 arguments before the call.
func PairingCheck(a1 *bls12381.G1Affine, a2 *bls12381.G2Affine, b1 *bls12381.G1Affine, b2 *bls12381.G2Affine) (bool, error) {
	return bls12381.PairingCheck(
		[]bls12381.G1Affine{*a1, *b1},
		[]bls12381.G2Affine{*a2, *b2},
	)
}
