// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// VerifyKZGProof checks the pairing identity
//
//	e(proof, [tau]G2 - [z]G2) == e(commitment - [y]G1, G2)
//
// The returned bool is the cryptographic verdict; the error reports whether
// verification could run at all (decoding failures, freed settings). The two
// must not be conflated: (false, nil) is a failed proof, not a failed call.
func (s *KZGSettings) VerifyKZGProof(commitment KZGCommitment, zBytes, yBytes [BytesPerFieldElement]byte, proof KZGProof) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	c, err := bls.G1FromCompressed(commitment)
	if err != nil {
		return false, fmt.Errorf("%w: commitment: %v", ErrBadArgs, err)
	}
	z, err := bls.FrFromBytes(zBytes)
	if err != nil {
		return false, fmt.Errorf("%w: z: %v", ErrBadArgs, err)
	}
	y, err := bls.FrFromBytes(yBytes)
	if err != nil {
		return false, fmt.Errorf("%w: y: %v", ErrBadArgs, err)
	}
	p, err := bls.G1FromCompressed(proof)
	if err != nil {
		return false, fmt.Errorf("%w: proof: %v", ErrBadArgs, err)
	}
	return s.verifyProof(&c, &z, &y, &p)
}

func (s *KZGSettings) verifyProof(commitment *bls12381.G1Affine, z, y *fr.Element, proof *bls12381.G1Affine) (bool, error) {
	// [tau - z]G2
	var zBig big.Int
	z.BigInt(&zBig)
	var genG2Jac, zG2Jac, xMinusZJac bls12381.G2Jac
	genG2Jac.FromAffine(&s.g2Values[0])
	zG2Jac.ScalarMultiplication(&genG2Jac, &zBig)
	xMinusZJac.FromAffine(&s.g2Values[1])
	xMinusZJac.SubAssign(&zG2Jac)
	var xMinusZ bls12381.G2Affine
	xMinusZ.FromJacobian(&xMinusZJac)

	// [commitment - y]G1
	yG1 := bls.G1Mul(&bls.GenG1, y)
	var yG1Jac, pMinusYJac bls12381.G1Jac
	yG1Jac.FromAffine(&yG1)
	pMinusYJac.FromAffine(commitment)
	pMinusYJac.SubAssign(&yG1Jac)
	var pMinusY bls12381.G1Affine
	pMinusY.FromJacobian(&pMinusYJac)

	// e(P - [y], G2) * e(-proof, X - [z]) == 1
	var negProof bls12381.G1Affine
	negProof.Neg(proof)
	ok, err := bls.PairingCheck(&pMinusY, &s.g2Values[0], &negProof, &xMinusZ)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return ok, nil
}
