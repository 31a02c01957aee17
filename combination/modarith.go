// SPDX-License-Identifier: MIT

package combination

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// mulMod returns a·b mod m using a 128-bit intermediate product,
// so any uint64 modulus is safe. m must be non-zero.
//
// Complexity: O(1).
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}

// powMod returns base^exp mod m by square-and-multiply on 256-bit words.
// The result is written into a fresh *uint256.Int; base and exp are not modified.
//
// Complexity: O(log exp) MulMod calls.
func powMod(base, exp, m *uint256.Int) *uint256.Int {
	result := uint256.NewInt(1)
	result.Mod(result, m) // 1 mod 1 == 0
	b := new(uint256.Int).Mod(base, m)
	e := exp.Clone()
	for !e.IsZero() {
		if e.Uint64()&1 == 1 {
			result.MulMod(result, b, m)
		}
		b.MulMod(b, b, m)
		e.Rsh(e, 1)
	}

	return result
}

// fermatInverse returns a^(m-2) mod m, the inverse of a when m is prime and
// m does not divide a. For a ≡ 0 and m > 2 the result is 0.
// Requires m >= 2.
func fermatInverse(a, m *uint256.Int) *uint256.Int {
	exp := new(uint256.Int).Sub(m, uint256.NewInt(2))

	return powMod(a, exp, m)
}
