// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/kzg4844/bls"
)

// The transcript byte layout is consensus-critical; this test recomputes the
// empty-input challenge from first principles so any layout drift fails
// loudly.
func TestChallengeEmptyInputVector(t *testing.T) {
	assert := require.New(t)

	var transcript []byte
	transcript = append(transcript, []byte("FSBLOBVERIFY_V1_")...)
	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], FieldElementsPerBlob)
	transcript = append(transcript, u64[:]...)
	binary.LittleEndian.PutUint64(u64[:], 0)
	transcript = append(transcript, u64[:]...)

	digest := sha256.Sum256(transcript)
	wantR := bls.FrFromDigestReduced(digest)
	zDigest := sha256.Sum256(append(digest[:], 0x01))
	wantZ := bls.FrFromDigestReduced(zDigest)

	r, z := computeChallenges(nil, nil)
	assert.True(r.Equal(&wantR))
	assert.True(z.Equal(&wantZ))
	assert.False(r.Equal(&z))
}

func TestChallengeDeterminismAndSensitivity(t *testing.T) {
	assert := require.New(t)

	blobs := []Blob{constantBlob(7), constantBlob(9)}
	commitments := make([]KZGCommitment, 2)
	commitments[0][0] = 0xc0
	commitments[1][0] = 0xc0

	r1, z1 := computeChallenges(blobs, commitments)
	r2, z2 := computeChallenges(blobs, commitments)
	assert.True(r1.Equal(&r2))
	assert.True(z1.Equal(&z2))

	// Any transcript change moves both challenges.
	blobs[1][5] ^= 0xa5
	r3, z3 := computeChallenges(blobs, commitments)
	assert.False(r1.Equal(&r3))
	assert.False(z1.Equal(&z3))

	// Commitment bytes are part of the transcript too.
	blobs[1][5] ^= 0xa5
	commitments[1][1] ^= 1
	r4, _ := computeChallenges(blobs, commitments)
	assert.False(r1.Equal(&r4))
}
