// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package fourier implements radix-2 discrete Fourier transforms over the
// BLS12-381 groups, parameterized by precomputed roots of unity in the
// scalar field.
package fourier

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	// ErrInvalidSize is returned when a transform or permutation length is
	// not a power of two within the supported range.
	ErrInvalidSize = errors.New("length is not a power of two within range")

	// ErrCorruptRootTable signals that the seed root of unity does not have
	// the expected multiplicative order. It indicates a bug, not bad input.
	ErrCorruptRootTable = errors.New("root of unity table is corrupt")
)

// Settings holds the precomputed roots of unity for transforms of size up to
// MaxWidth. A Settings value is immutable after construction and safe for
// concurrent use.
type Settings struct {
	// MaxWidth is the largest transform size supported, a power of two.
	MaxWidth uint64

	// ExpandedRootsOfUnity holds w^0, w^1, ..., w^MaxWidth for w a primitive
	// MaxWidth-th root of unity. First and last entries are one.
	ExpandedRootsOfUnity []fr.Element

	// ReverseRootsOfUnity is ExpandedRootsOfUnity read backwards, used for
	// inverse transforms.
	ReverseRootsOfUnity []fr.Element

	// RootsOfUnity is the first MaxWidth expanded roots permuted into
	// bit-reversed index order; it is the evaluation domain of polynomials
	// committed in Lagrange form.
	RootsOfUnity []fr.Element
}

// NewSettings precomputes the root-of-unity tables for transforms of size up
// to 2^maxScale.
func NewSettings(maxScale uint8) (*Settings, error) {
	if int(maxScale) > MaxScale {
		return nil, ErrInvalidSize
	}
	s := &Settings{
		MaxWidth: 1 << maxScale,
	}

	var err error
	if s.ExpandedRootsOfUnity, err = expandRootOfUnity(&scale2RootsOfUnity[maxScale], s.MaxWidth); err != nil {
		return nil, err
	}

	s.ReverseRootsOfUnity = make([]fr.Element, s.MaxWidth+1)
	for i := uint64(0); i <= s.MaxWidth; i++ {
		s.ReverseRootsOfUnity[i] = s.ExpandedRootsOfUnity[s.MaxWidth-i]
	}

	s.RootsOfUnity = make([]fr.Element, s.MaxWidth)
	copy(s.RootsOfUnity, s.ExpandedRootsOfUnity[:s.MaxWidth])
	if err := BitReversalPermute(s.RootsOfUnity); err != nil {
		return nil, err
	}

	return s, nil
}

// expandRootOfUnity fills a table with successive powers of root, starting
// from one and stopping when one is reached again. The cycle must close at
// exactly index width, i.e. root must have multiplicative order width.
func expandRootOfUnity(root *fr.Element, width uint64) ([]fr.Element, error) {
	out := make([]fr.Element, width+1)
	out[0].SetOne()
	out[1] = *root

	for i := uint64(2); !out[i-1].IsOne(); i++ {
		if i > width {
			return nil, ErrCorruptRootTable
		}
		out[i].Mul(&out[i-1], root)
	}
	if !out[width].IsOne() {
		return nil, ErrCorruptRootTable
	}
	return out, nil
}
