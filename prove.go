// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// ComputeKZGProof proves the evaluation of a blob's polynomial at the point
// z, given as a 32-byte little-endian scalar.
func (s *KZGSettings) ComputeKZGProof(blob *Blob, zBytes [BytesPerFieldElement]byte) (KZGProof, error) {
	if err := s.ready(); err != nil {
		return KZGProof{}, err
	}
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return KZGProof{}, err
	}
	z, err := bls.FrFromBytes(zBytes)
	if err != nil {
		return KZGProof{}, fmt.Errorf("%w: z: %v", ErrBadArgs, err)
	}
	proof, _, err := s.computeProof(poly, &z)
	if err != nil {
		return KZGProof{}, err
	}
	return KZGProof(bls.G1ToCompressed(&proof)), nil
}

// computeProof commits to the quotient polynomial q(X) = (p(X) - p(z))/(X - z)
// in Lagrange form and also returns the evaluation y = p(z).
//
// On the evaluation domain the quotient is computed point-wise. The domain
// index m with D_m = z (if any) cannot be divided at directly; its value is
// recovered from the other points as
//
//	q[m] = sum_{i != m} (p[i] - y) * D_i / (D_m * (D_m - D_i))
func (s *KZGSettings) computeProof(poly []fr.Element, z *fr.Element) (bls12381.G1Affine, fr.Element, error) {
	y, m := s.evaluatePolynomialInEvaluationForm(poly, z)
	roots := s.fs.RootsOfUnity

	// D_i - z for all i, with the degenerate index patched so the batch
	// inversion stays well defined.
	denoms := make([]fr.Element, s.length)
	for i := range denoms {
		denoms[i].Sub(&roots[i], z)
	}
	if m >= 0 {
		denoms[m].SetOne()
	}
	invDenoms := fr.BatchInvert(denoms)

	q := make([]fr.Element, s.length)
	var num fr.Element
	for i := range q {
		if i == m {
			continue
		}
		num.Sub(&poly[i], &y)
		q[i].Mul(&num, &invDenoms[i])
	}

	if m >= 0 {
		// invDenoms[i] is 1/(D_i - D_m); flipping the sign of each summand
		// accounts for the 1/(D_m - D_i) in the formula.
		var qm, t, invDm fr.Element
		invDm.Inverse(&roots[m])
		for i := range q {
			if i == m {
				continue
			}
			t.Sub(&poly[i], &y)
			t.Mul(&t, &roots[i])
			t.Mul(&t, &invDenoms[i])
			qm.Sub(&qm, &t)
		}
		qm.Mul(&qm, &invDm)
		q[m] = qm
	}

	proof, err := bls.G1LinComb(s.g1Values, q)
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return proof, y, nil
}
