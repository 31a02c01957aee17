// SPDX-License-Identifier: MIT

package combination_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvcomb/combination"
	"github.com/stretchr/testify/assert"
)

// TestMulMod_Wide compares the 128-bit kernel with math/big near 2^64.
func TestMulMod_Wide(t *testing.T) {
	vals := []uint64{0, 1, 2, 12345, p1e9 - 1, 1 << 63, pMax64 - 2, pMax64 - 1}
	for _, a := range vals {
		for _, b := range vals {
			want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			want.Mod(want, new(big.Int).SetUint64(pMax64))
			assert.Equal(t, want.Uint64(), combination.MulModForTest(a, b, pMax64), "%d·%d", a, b)
		}
	}
}

// TestPowMod covers small exponents, the zero exponent and modulus 1.
func TestPowMod(t *testing.T) {
	assert.Equal(t, uint64(24), combination.PowModForTest(2, 10, 1000))
	assert.Equal(t, uint64(1), combination.PowModForTest(7, 0, p1e9))
	assert.Equal(t, uint64(0), combination.PowModForTest(7, 0, 1), "1 mod 1")
	assert.Equal(t, uint64(0), combination.PowModForTest(0, 5, p13))
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(1<<40), new(big.Int).SetUint64(pMax64))
	assert.Equal(t, want.Uint64(), combination.PowModForTest(3, 1<<40, pMax64))
}

// TestFermatInverse verifies a·a^-1 ≡ 1 for several primes.
func TestFermatInverse(t *testing.T) {
	for _, p := range []uint64{2, 3, p13, p998, p1e9, pMax64} {
		for _, a := range []uint64{1, 2, 5, 11, 1234567} {
			if a%p == 0 {
				continue
			}
			inv := combination.FermatInverseForTest(a, p)
			assert.Equal(t, uint64(1), combination.MulModForTest(a%p, inv, p), "p=%d a=%d", p, a)
		}
	}
	assert.Equal(t, uint64(0), combination.FermatInverseForTest(p13, p13), "multiple of p has no inverse")
}
