// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/bls"
)

// fiatShamirProtocolDomain separates this protocol's transcripts from any
// other use of the hash function. The byte layout hashed below is
// consensus-critical and must not change.
const fiatShamirProtocolDomain = "FSBLOBVERIFY_V1_"

// challengeSeparatorZ is appended to the first digest to derive the second,
// independent challenge.
const challengeSeparatorZ = 0x01

// computeChallenges derives the two aggregation challenges from the public
// transcript. The transcript is
//
//	"FSBLOBVERIFY_V1_" || degree (8 bytes LE) || k (8 bytes LE) ||
//	blobs || commitments
//
// hashed with SHA-256. r is the digest reduced into the field; z is the
// reduction of SHA-256(digest || 0x01).
func computeChallenges(blobs []Blob, commitments []KZGCommitment) (r, z fr.Element) {
	h := sha256.New()
	h.Write([]byte(fiatShamirProtocolDomain))

	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], FieldElementsPerBlob)
	h.Write(u64[:])
	binary.LittleEndian.PutUint64(u64[:], uint64(len(blobs)))
	h.Write(u64[:])

	for i := range blobs {
		h.Write(blobs[i][:])
	}
	for i := range commitments {
		h.Write(commitments[i][:])
	}

	var digest [sha256.Size]byte
	h.Sum(digest[:0])
	r = bls.FrFromDigestReduced(digest)

	second := sha256.New()
	second.Write(digest[:])
	second.Write([]byte{challengeSeparatorZ})
	var zDigest [sha256.Size]byte
	second.Sum(zDigest[:0])
	z = bls.FrFromDigestReduced(zDigest)

	return r, z
}
