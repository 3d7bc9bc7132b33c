// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package kzg4844

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/bits"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/kzg4844/bls"
	"github.com/consensys/kzg4844/fourier"
	"github.com/consensys/kzg4844/logger"
)

// KZGSettings holds the processed trusted setup: the G1 powers of tau in
// Lagrange form over the bit-reversed evaluation domain, the two G2 points
// needed for verification, and the precomputed roots of unity.
//
// A KZGSettings is immutable after construction and safe for concurrent use.
type KZGSettings struct {
	length   uint64
	g1Values []bls12381.G1Affine
	g2Values []bls12381.G2Affine
	fs       *fourier.Settings
}

// Length returns the number of G1 Lagrange points, equal to
// FieldElementsPerBlob.
func (s *KZGSettings) Length() uint64 {
	return s.length
}

// Free drops the setup tables. Any subsequent operation on s fails with
// ErrSettingsFreed. Mirrors the lifecycle of the caller-owned settings of
// the binding layer; in Go the memory itself is reclaimed by the collector.
func (s *KZGSettings) Free() {
	s.length = 0
	s.g1Values = nil
	s.g2Values = nil
	s.fs = nil
}

func (s *KZGSettings) ready() error {
	if s == nil || s.g1Values == nil || s.g2Values == nil || s.fs == nil {
		return ErrSettingsFreed
	}
	return nil
}

// LoadTrustedSetup reads a trusted setup in the text format: two decimal
// counts n1 and n2, then n1 48-byte G1 points and n2 96-byte G2 points in
// compressed form as hex digits, with arbitrary whitespace in between.
//
// n1 must equal FieldElementsPerBlob and n2 must be at least 2. The G1
// points are the monomial powers of tau; the loader converts them to
// Lagrange form over the bit-reversed domain with an inverse FFT, so that
// committing to a blob is a single multi-exponentiation.
func LoadTrustedSetup(r io.Reader) (*KZGSettings, error) {
	start := time.Now()

	var n1, n2 uint64
	if _, err := fmt.Fscan(r, &n1, &n2); err != nil {
		return nil, fmt.Errorf("%w: reading point counts: %v", ErrBadArgs, err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	compact := strings.Map(dropSpace, string(rest))
	raw, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: setup is not valid hex: %v", ErrBadArgs, err)
	}

	g1Size := n1 * bls.CompressedSizeG1
	g2Size := n2 * bls.CompressedSizeG2
	if uint64(len(raw)) != g1Size+g2Size {
		return nil, fmt.Errorf("%w: setup holds %d point bytes, expected %d", ErrBadArgs, len(raw), g1Size+g2Size)
	}

	s, err := newSettings(raw[:g1Size], raw[g1Size:])
	if err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().Uint64("n1", n1).Uint64("n2", n2).Dur("took", time.Since(start)).Msg("loaded trusted setup")
	return s, nil
}

// LoadTrustedSetupFile loads a trusted setup from a file in the text format.
func LoadTrustedSetupFile(path string) (*KZGSettings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return LoadTrustedSetup(f)
}

// LoadTrustedSetupFromBytes builds settings from raw concatenated compressed
// points: g1 holds FieldElementsPerBlob 48-byte monomial G1 points, g2 at
// least two 96-byte G2 points.
func LoadTrustedSetupFromBytes(g1, g2 []byte) (*KZGSettings, error) {
	if len(g1)%bls.CompressedSizeG1 != 0 || len(g2)%bls.CompressedSizeG2 != 0 {
		return nil, fmt.Errorf("%w: point bytes are not a whole number of points", ErrBadArgs)
	}
	return newSettings(g1, g2)
}

func newSettings(g1Bytes, g2Bytes []byte) (*KZGSettings, error) {
	n1 := uint64(len(g1Bytes) / bls.CompressedSizeG1)
	n2 := uint64(len(g2Bytes) / bls.CompressedSizeG2)
	if n1 != FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: setup has %d G1 points, compiled blob size is %d", ErrBadArgs, n1, FieldElementsPerBlob)
	}
	if n2 < 2 {
		return nil, fmt.Errorf("%w: setup needs at least 2 G2 points, got %d", ErrBadArgs, n2)
	}

	g1Monomial, err := decompressG1(g1Bytes)
	if err != nil {
		return nil, err
	}
	g2Values, err := decompressG2(g2Bytes)
	if err != nil {
		return nil, err
	}

	maxScale := uint8(bits.Len64(n1 - 1))
	fs, err := fourier.NewSettings(maxScale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	g1Lagrange, err := fs.FFTG1(g1Monomial, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	// Reorder to match the bit-reversed evaluation domain, so that
	// g1Values[i] is the Lagrange point at fs.RootsOfUnity[i].
	if err := fourier.BitReversalPermute(g1Lagrange); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &KZGSettings{
		length:   n1,
		g1Values: g1Lagrange,
		g2Values: g2Values,
		fs:       fs,
	}, nil
}

func decompressG1(data []byte) ([]bls12381.G1Affine, error) {
	points := make([]bls12381.G1Affine, len(data)/bls.CompressedSizeG1)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range points {
		g.Go(func() error {
			var buf [bls.CompressedSizeG1]byte
			copy(buf[:], data[i*bls.CompressedSizeG1:])
			p, err := bls.G1FromCompressed(buf)
			if err != nil {
				return fmt.Errorf("%w: G1 point %d: %v", ErrBadArgs, i, err)
			}
			points[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func decompressG2(data []byte) ([]bls12381.G2Affine, error) {
	points := make([]bls12381.G2Affine, len(data)/bls.CompressedSizeG2)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range points {
		g.Go(func() error {
			var buf [bls.CompressedSizeG2]byte
			copy(buf[:], data[i*bls.CompressedSizeG2:])
			p, err := bls.G2FromCompressed(buf)
			if err != nil {
				return fmt.Errorf("%w: G2 point %d: %v", ErrBadArgs, i, err)
			}
			points[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func dropSpace(r rune) rune {
	if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
		return -1
	}
	return r
}

// Process-wide settings slot. The core library never consults it; it exists
// as a convenience for binding layers that want load-once semantics.
var (
	globalMu       sync.RWMutex
	globalSettings *KZGSettings
)

// LoadGlobalTrustedSetupFile loads a setup file into the process-wide slot.
func LoadGlobalTrustedSetupFile(path string) error {
	s, err := LoadTrustedSetupFile(path)
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalSettings = s
	globalMu.Unlock()
	return nil
}

// GlobalSettings returns the process-wide settings, or nil if none loaded.
func GlobalSettings() *KZGSettings {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalSettings
}

// FreeGlobalTrustedSetup frees and clears the process-wide slot.
func FreeGlobalTrustedSetup() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalSettings != nil {
		globalSettings.Free()
		globalSettings = nil
	}
}
