// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fourier

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// FFTG1 computes the discrete Fourier transform of a vector of G1 points,
// or its inverse. The input length must be a power of two no larger than
// MaxWidth. The input is left untouched.
func (s *Settings) FFTG1(values []bls12381.G1Affine, inverse bool) ([]bls12381.G1Affine, error) {
	n := uint64(len(values))
	if n == 0 || n > s.MaxWidth || n&(n-1) != 0 {
		return nil, ErrInvalidSize
	}
	rootsStride := s.MaxWidth / n
	out := make([]bls12381.G1Affine, n)

	if !inverse {
		fftG1(out, values, 1, s.ExpandedRootsOfUnity, rootsStride)
		return out, nil
	}

	fftG1(out, values, 1, s.ReverseRootsOfUnity, rootsStride)
	invLen := fr.NewElement(n)
	invLen.Inverse(&invLen)
	for i := range out {
		out[i] = bls.G1Mul(&out[i], &invLen)
	}
	return out, nil
}

// fftG1 is the radix-2 decimation-in-frequency recursion. The even-indexed
// half of the input (with respect to stride) lands in the low half of out,
// the odd-indexed half in the high half, then the butterflies combine them.
func fftG1(out, in []bls12381.G1Affine, stride uint64, roots []fr.Element, rootsStride uint64) {
	n := uint64(len(out))
	if n == 1 {
		out[0] = in[0]
		return
	}
	half := n / 2
	fftG1(out[:half], in, stride*2, roots, rootsStride*2)
	fftG1(out[half:], in[stride:], stride*2, roots, rootsStride*2)
	for i := uint64(0); i < half; i++ {
		t := bls.G1Mul(&out[i+half], &roots[i*rootsStride])
		out[i+half].Sub(&out[i], &t)
		out[i].Add(&out[i], &t)
	}
}
