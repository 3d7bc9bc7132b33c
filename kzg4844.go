// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

const (
	// BytesPerFieldElement is the serialized size of a scalar.
	BytesPerFieldElement = bls.ScalarSize

	// BytesPerBlob is the serialized size of a blob.
	BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

	// BytesPerCommitment is the serialized size of a commitment.
	BytesPerCommitment = bls.CompressedSizeG1

	// BytesPerProof is the serialized size of an evaluation proof.
	BytesPerProof = bls.CompressedSizeG1
)

// BLSModulus is the order of the scalar field. Every 32-byte chunk of a blob
// must be strictly smaller than it, read as a little-endian integer.
var BLSModulus = new(big.Int).Set(fr.Modulus())

// Blob is a vector of FieldElementsPerBlob scalars, each serialized as 32
// little-endian bytes. It holds a polynomial in Lagrange evaluation form:
// chunk i is the evaluation at the i-th root of unity in bit-reversed order.
type Blob [BytesPerBlob]byte

// KZGCommitment is a compressed G1 point binding to a blob's polynomial.
type KZGCommitment [BytesPerCommitment]byte

// KZGProof is a compressed G1 point proving a polynomial evaluation.
type KZGProof [BytesPerProof]byte

// GetFieldElementsPerBlob returns the compiled blob size in field elements.
func GetFieldElementsPerBlob() uint64 {
	return FieldElementsPerBlob
}

// blobToPolynomial deserializes every chunk of a blob into a field element.
func blobToPolynomial(blob *Blob) ([]fr.Element, error) {
	poly := make([]fr.Element, FieldElementsPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		var b [BytesPerFieldElement]byte
		copy(b[:], blob[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement])
		e, err := bls.FrFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("%w: blob element %d: %v", ErrBadArgs, i, err)
		}
		poly[i] = e
	}
	return poly, nil
}
