// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fourier

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/consensys/kzg4844/bls"
)

func randomG1Points(t *testing.T, n int) []bls12381.G1Affine {
	t.Helper()
	points := make([]bls12381.G1Affine, n)
	for i := range points {
		var k fr.Element
		_, err := k.SetRandom()
		require.NoError(t, err)
		var kBig big.Int
		k.BigInt(&kBig)
		points[i].ScalarMultiplication(&bls.GenG1, &kBig)
	}
	return points
}

func TestFFTG1RoundTrip(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(6)
	assert.NoError(err)

	for n := 1; n <= 64; n *= 2 {
		in := randomG1Points(t, n)

		freq, err := s.FFTG1(in, false)
		assert.NoError(err)
		back, err := s.FFTG1(freq, true)
		assert.NoError(err)

		for i := range in {
			assert.True(back[i].Equal(&in[i]), "n=%d index %d", n, i)
		}
	}
}

func TestFFTG1MatchesDirectEvaluation(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(3)
	assert.NoError(err)

	// The forward transform of coefficients c must produce
	// out[k] = sum_i w^(k*i) * c[i].
	in := randomG1Points(t, 8)
	out, err := s.FFTG1(in, false)
	assert.NoError(err)

	for k := uint64(0); k < 8; k++ {
		want := bls.ZeroG1
		for i := uint64(0); i < 8; i++ {
			root := s.ExpandedRootsOfUnity[(k*i)%8]
			term := bls.G1Mul(&in[i], &root)
			want.Add(&want, &term)
		}
		assert.True(out[k].Equal(&want), "frequency %d", k)
	}
}

func TestFFTG1InvalidSizes(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(3)
	assert.NoError(err)

	_, err = s.FFTG1(randomG1Points(t, 3), false)
	assert.ErrorIs(err, ErrInvalidSize)

	_, err = s.FFTG1(randomG1Points(t, 16), false)
	assert.ErrorIs(err, ErrInvalidSize)

	_, err = s.FFTG1(nil, false)
	assert.ErrorIs(err, ErrInvalidSize)
}

func TestFFTG1InverseScales(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(2)
	assert.NoError(err)

	// IFFT of a constant vector [P, P, ..., P] is [P, 0, ..., 0].
	var p bls12381.G1Affine
	p.ScalarMultiplication(&bls.GenG1, big.NewInt(7))
	in := []bls12381.G1Affine{p, p, p, p}

	out, err := s.FFTG1(in, true)
	assert.NoError(err)
	assert.True(out[0].Equal(&p))
	for i := 1; i < 4; i++ {
		assert.True(out[i].IsInfinity(), "index %d", i)
	}
}
