// Package kzg4844 implements the KZG polynomial commitment scheme over
// BLS12-381 in the profile used by blob transactions: committing to
// fixed-size vectors of field elements ("blobs") held in Lagrange evaluation
// form, producing succinct evaluation proofs, and verifying them singly or
// aggregated across many blobs.
//
// The trusted setup is loaded once into an immutable KZGSettings; all
// commitment, proof and verification operations are pure functions of their
// inputs and the settings, and are safe for concurrent use.
//
// The blob size is a compile-time preset: 4096 field elements by default,
// 4 with the "minimal" build tag.
package kzg4844

import (
	"github.com/blang/semver/v4"
)

// Version of the library
var Version = semver.MustParse("0.1.0")
