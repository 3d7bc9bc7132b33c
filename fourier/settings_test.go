// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fourier

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(4)
	assert.NoError(err)
	assert.Equal(uint64(16), s.MaxWidth)
	assert.Len(s.ExpandedRootsOfUnity, 17)
	assert.Len(s.ReverseRootsOfUnity, 17)
	assert.Len(s.RootsOfUnity, 16)

	// First and last expanded roots are one, nothing in between is.
	assert.True(s.ExpandedRootsOfUnity[0].IsOne())
	assert.True(s.ExpandedRootsOfUnity[s.MaxWidth].IsOne())
	for i := uint64(1); i < s.MaxWidth; i++ {
		assert.False(s.ExpandedRootsOfUnity[i].IsOne(), "index %d", i)
	}

	// Reverse table is the expanded table read backwards.
	for i := uint64(0); i <= s.MaxWidth; i++ {
		assert.True(s.ReverseRootsOfUnity[i].Equal(&s.ExpandedRootsOfUnity[s.MaxWidth-i]))
	}
}

func TestRootsOfUnityInvariants(t *testing.T) {
	assert := require.New(t)

	s, err := NewSettings(5)
	assert.NoError(err)

	// Every root raised to MaxWidth is one.
	exp := new(big.Int).SetUint64(s.MaxWidth)
	for i := range s.RootsOfUnity {
		var p fr.Element
		p.Exp(s.RootsOfUnity[i], exp)
		assert.True(p.IsOne(), "index %d", i)
	}

	// The bit-reversed table is a permutation of the first MaxWidth
	// expanded roots.
	seen := make(map[string]int)
	for i := uint64(0); i < s.MaxWidth; i++ {
		seen[s.ExpandedRootsOfUnity[i].String()]++
	}
	for i := range s.RootsOfUnity {
		seen[s.RootsOfUnity[i].String()]--
	}
	for k, v := range seen {
		assert.Zero(v, "root %s", k)
	}
}

func TestNewSettingsBounds(t *testing.T) {
	assert := require.New(t)

	_, err := NewSettings(MaxScale + 1)
	assert.ErrorIs(err, ErrInvalidSize)

	s, err := NewSettings(0)
	assert.NoError(err)
	assert.Equal(uint64(1), s.MaxWidth)
	assert.True(s.RootsOfUnity[0].IsOne())
}

func TestExpandRootOfUnityRejectsWrongOrder(t *testing.T) {
	assert := require.New(t)

	// A root of order 8 cannot expand to a width-16 table.
	root := scale2RootsOfUnity[3]
	_, err := expandRootOfUnity(&root, 16)
	assert.ErrorIs(err, ErrCorruptRootTable)

	// Nor to a width-4 table: the cycle overruns.
	_, err = expandRootOfUnity(&root, 4)
	assert.ErrorIs(err, ErrCorruptRootTable)
}
