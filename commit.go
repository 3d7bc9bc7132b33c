// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// BlobToKZGCommitment commits to the polynomial whose Lagrange coefficients
// are the blob's field elements.
func (s *KZGSettings) BlobToKZGCommitment(blob *Blob) (KZGCommitment, error) {
	if err := s.ready(); err != nil {
		return KZGCommitment{}, err
	}
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return KZGCommitment{}, err
	}
	c, err := s.commitPolynomial(poly)
	if err != nil {
		return KZGCommitment{}, err
	}
	return KZGCommitment(bls.G1ToCompressed(&c)), nil
}

// commitPolynomial is a single multi-exponentiation against the Lagrange
// basis; the per-commit FFT was paid once at setup load.
func (s *KZGSettings) commitPolynomial(poly []fr.Element) (bls12381.G1Affine, error) {
	c, err := bls.G1LinComb(s.g1Values, poly)
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return c, nil
}
