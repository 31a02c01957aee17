// SPDX-License-Identifier: MIT
// Test bridge: exposes private kernels to package combination_test.
// Being a _test.go file, it never reaches production builds.

package combination

import "github.com/holiman/uint256"

// MulModForTest exposes mulMod.
func MulModForTest(a, b, m uint64) uint64 { return mulMod(a, b, m) }

// PowModForTest exposes powMod on uint64 arguments.
func PowModForTest(base, exp, m uint64) uint64 {
	return powMod(uint256.NewInt(base), uint256.NewInt(exp), uint256.NewInt(m)).Uint64()
}

// FermatInverseForTest exposes fermatInverse on uint64 arguments.
func FermatInverseForTest(a, m uint64) uint64 {
	return fermatInverse(uint256.NewInt(a), uint256.NewInt(m)).Uint64()
}
