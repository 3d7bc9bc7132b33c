// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fourier

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MaxScale is the 2-adicity of the scalar field: the multiplicative group
// contains subgroups of order 2^k for every k up to 32, and no larger.
const MaxScale = 32

// scale2RootsOfUnity[k] generates the subgroup of order 2^k. Entry MaxScale
// is 7^((q-1)/2^32) mod q, 7 being a primitive element of the field; lower
// entries are obtained by squaring.
var scale2RootsOfUnity [MaxScale + 1]fr.Element

func init() {
	if _, err := scale2RootsOfUnity[MaxScale].SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131"); err != nil {
		panic(err)
	}
	for i := MaxScale - 1; i >= 0; i-- {
		scale2RootsOfUnity[i].Square(&scale2RootsOfUnity[i+1])
	}
}
