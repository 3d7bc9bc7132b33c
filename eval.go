// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// evaluatePolynomialInEvaluationForm evaluates a polynomial given in
// Lagrange form at an arbitrary point using the barycentric formula
//
//	p(z) = (z^n - 1)/n * sum_i p[i] * D_i / (z - D_i)
//
// over the bit-reversed domain D. When z is a domain point the formula
// degenerates; the evaluation is then read off directly and the returned
// index identifies the domain point, -1 otherwise.
func (s *KZGSettings) evaluatePolynomialInEvaluationForm(poly []fr.Element, z *fr.Element) (fr.Element, int) {
	width := s.length
	roots := s.fs.RootsOfUnity

	denoms := make([]fr.Element, width)
	for i := uint64(0); i < width; i++ {
		if roots[i].Equal(z) {
			return poly[i], int(i)
		}
		denoms[i].Sub(z, &roots[i])
	}
	invDenoms := fr.BatchInvert(denoms)

	var sum, tmp fr.Element
	for i := uint64(0); i < width; i++ {
		tmp.Mul(&poly[i], &roots[i])
		tmp.Mul(&tmp, &invDenoms[i])
		sum.Add(&sum, &tmp)
	}

	// (z^n - 1) / n
	var factor, one fr.Element
	one.SetOne()
	factor.Exp(*z, new(big.Int).SetUint64(width))
	factor.Sub(&factor, &one)
	nInv := fr.NewElement(width)
	nInv.Inverse(&nInv)
	factor.Mul(&factor, &nInv)

	sum.Mul(&sum, &factor)
	return sum, -1
}

// computePowers returns 1, x, x^2, ..., x^(n-1).
func computePowers(x *fr.Element, n int) []fr.Element {
	powers := make([]fr.Element, n)
	if n == 0 {
		return powers
	}
	powers[0].SetOne()
	for i := 1; i < n; i++ {
		powers[i].Mul(&powers[i-1], x)
	}
	return powers
}

// vectorLinComb combines vectors coefficient-wise:
// out[i] = sum_j scalars[j] * vectors[j][i].
func vectorLinComb(vectors [][]fr.Element, scalars []fr.Element) []fr.Element {
	out := make([]fr.Element, FieldElementsPerBlob)
	var tmp fr.Element
	for j := range vectors {
		for i := range out {
			tmp.Mul(&scalars[j], &vectors[j][i])
			out[i].Add(&out[i], &tmp)
		}
	}
	return out
}
