// SPDX-License-Identifier: MIT

package combination

import "github.com/holiman/uint256"

// NCr returns C(n, r) mod modulus without any precomputed table.
//
// Description:
//
//	Single-shot alternative to Table.CountNCr for when building a table of
//	size n would be wasteful. modulus is expected prime; a composite modulus
//	silently yields incorrect values.
//
// Algorithm:
//  1. Guard: n < r, n < 0 or r < 0 ⇒ 0.
//  2. acc = n·(n−1)·…·(n−r+1) mod p (falling product).
//  3. For i = 1..r: acc = acc · i^(p−2) mod p (Fermat inverse of each factor of r!).
//
// The result is exact for n < modulus. For n >= modulus the falling product
// can contain a multiple of the modulus and collapse to 0 even where the true
// coefficient is non-zero mod p; Lucas' theorem is not applied.
//
// Products are formed on 256-bit words, so any uint64 modulus is safe.
// modulus == 1 returns 0. modulus == 0 panics (programmer error).
//
// Complexity: O(r log p) time, O(1) space.
func NCr(n, r int64, modulus uint64) uint64 {
	if modulus == 0 {
		panic(panicZeroModulus)
	}
	if n < r || n < 0 || r < 0 {
		return 0
	}
	if modulus == 1 {
		return 0
	}

	m := uint256.NewInt(modulus)
	acc := uint256.NewInt(1)
	factor := new(uint256.Int)

	// falling product
	for i := n; i > n-r; i-- {
		factor.SetUint64(uint64(i))
		acc.MulMod(acc, factor, m)
	}

	// divide by r! one factor at a time
	for i := int64(1); i <= r; i++ {
		factor.SetUint64(uint64(i))
		acc.MulMod(acc, fermatInverse(factor, m), m)
	}

	return acc.Uint64()
}

// NHr returns H(n, r) = C(n+r-1, r) mod modulus without a table.
// Guards follow NCr applied to (n+r-1, r).
func NHr(n, r int64, modulus uint64) uint64 {
	return NCr(n+r-1, r, modulus)
}

// NCrDefault is NCr with DefaultModulus.
func NCrDefault(n, r int64) uint64 {
	return NCr(n, r, DefaultModulus)
}

// NHrDefault is NHr with DefaultModulus.
func NHrDefault(n, r int64) uint64 {
	return NHr(n, r, DefaultModulus)
}
