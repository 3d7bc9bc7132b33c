// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// ComputeAggregateKZGProof folds any number of blobs into a single
// polynomial using powers of a Fiat-Shamir challenge and proves its
// evaluation at a second derived challenge point. The resulting proof
// verifies against the blobs' individual commitments with
// VerifyAggregateKZGProof.
func (s *KZGSettings) ComputeAggregateKZGProof(blobs []Blob) (KZGProof, error) {
	if err := s.ready(); err != nil {
		return KZGProof{}, err
	}

	polys := make([][]fr.Element, len(blobs))
	commitments := make([]KZGCommitment, len(blobs))
	for j := range blobs {
		poly, err := blobToPolynomial(&blobs[j])
		if err != nil {
			return KZGProof{}, fmt.Errorf("blob %d: %w", j, err)
		}
		c, err := s.commitPolynomial(poly)
		if err != nil {
			return KZGProof{}, err
		}
		polys[j] = poly
		commitments[j] = KZGCommitment(bls.G1ToCompressed(&c))
	}

	r, z := computeChallenges(blobs, commitments)
	aggPoly := vectorLinComb(polys, computePowers(&r, len(blobs)))

	proof, _, err := s.computeProof(aggPoly, &z)
	if err != nil {
		return KZGProof{}, err
	}
	return KZGProof(bls.G1ToCompressed(&proof)), nil
}

// VerifyAggregateKZGProof recomputes the challenges and the aggregated
// polynomial from the blobs, folds the commitments with the same powers,
// and checks the single evaluation proof. Verdict and error are separated
// as in VerifyKZGProof.
func (s *KZGSettings) VerifyAggregateKZGProof(blobs []Blob, commitments []KZGCommitment, proof KZGProof) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if len(blobs) != len(commitments) {
		return false, fmt.Errorf("%w: %d blobs but %d commitments", ErrBadArgs, len(blobs), len(commitments))
	}

	polys := make([][]fr.Element, len(blobs))
	points := make([]bls12381.G1Affine, len(commitments))
	for j := range blobs {
		poly, err := blobToPolynomial(&blobs[j])
		if err != nil {
			return false, fmt.Errorf("blob %d: %w", j, err)
		}
		polys[j] = poly
		p, err := bls.G1FromCompressed(commitments[j])
		if err != nil {
			return false, fmt.Errorf("%w: commitment %d: %v", ErrBadArgs, j, err)
		}
		points[j] = p
	}

	proofPoint, err := bls.G1FromCompressed(proof)
	if err != nil {
		return false, fmt.Errorf("%w: proof: %v", ErrBadArgs, err)
	}

	r, z := computeChallenges(blobs, commitments)
	powers := computePowers(&r, len(blobs))

	aggPoly := vectorLinComb(polys, powers)
	y, _ := s.evaluatePolynomialInEvaluationForm(aggPoly, &z)

	aggCommitment, err := bls.G1LinComb(points, powers)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return s.verifyProof(&aggCommitment, &z, &y, &proofPoint)
}
