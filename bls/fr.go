// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bls

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the byte length of a serialized field element.
const ScalarSize = fr.Bytes

// FrFromBytes deserializes a scalar from its 32-byte little-endian canonical
// encoding. The encoding must be strictly less than the field modulus.
func FrFromBytes(b [ScalarSize]byte) (fr.Element, error) {
	var be [ScalarSize]byte
	for i := range b {
		be[ScalarSize-1-i] = b[i]
	}
	var e fr.Element
	if err := e.SetBytesCanonical(be[:]); err != nil {
		return fr.Element{}, fmt.Errorf("%w: %v", ErrNonCanonicalScalar, err)
	}
	return e, nil
}

// FrToBytes serializes a scalar to its 32-byte little-endian canonical
// encoding.
func FrToBytes(e *fr.Element) [ScalarSize]byte {
	be := e.Bytes()
	var le [ScalarSize]byte
	for i := range be {
		le[ScalarSize-1-i] = be[i]
	}
	return le
}

// FrFromDigestReduced interprets a 32-byte hash digest as a little-endian
// integer and reduces it into the field. Unlike FrFromBytes it never fails;
// it is the hash-to-field map of the Fiat-Shamir transcript.
func FrFromDigestReduced(digest [32]byte) fr.Element {
	var be [32]byte
	for i := range digest {
		be[31-i] = digest[i]
	}
	var e fr.Element
	e.SetBytes(be[:])
	return e
}
