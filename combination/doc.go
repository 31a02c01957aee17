// Package combination counts combinations modulo a prime.
//
// 🚀 What is in here?
//
//	Two strategies for the same numbers:
//	  • Table — one O(bound) precomputation of n!, (n!)^-1 and i^-1 mod p,
//	    then O(1) per query. Use it when thousands of queries share a
//	    modulus and an upper bound on n.
//	  • NCr / NHr — O(r log p) per call, no stored state. Use it for
//	    one-off queries where a full table would be wasted.
//
// ✨ Key features:
//   - nCr ("n choose r"), nHr ("n multichoose r" = C(n+r-1, r)), nPr
//   - modular inverses of 1..bound-1 in linear total time via
//     inv[i] = p − inv[p mod i]·⌊p/i⌋
//   - 128-/256-bit intermediate products: any uint64 modulus is safe
//   - n < r, n < 0 or r < 0 are counted as 0, never as errors
//   - n ≥ bound panics in the O(1) queries; Checked* variants return ErrOutOfBound
//   - immutable after construction: share one *Table across goroutines freely
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcomb/combination"
//
//	tbl, err := combination.NewTable(200_001, combination.DefaultModulus)
//	if err != nil {
//	  // ErrBadBound, ErrBadModulus, ErrBoundExceedsModulus, ErrNonPrimeModulus
//	}
//	ways := tbl.CountNCr(200_000, 100_000) // O(1)
//	bags := tbl.CountNHr(5, 3)             // C(7, 3) = 35
//
//	one := combination.NCr(10, 3, combination.DefaultModulus) // 120, no table
//
// Performance:
//
//   - NewTable: O(bound) time, 3·bound·8 bytes.
//   - CountNCr / CountNHr / CountNPr: O(1).
//   - NCr / NHr: O(r log p).
//
// The modulus must be prime: inverses come from Fermat's little theorem and
// the linear recurrence, both of which assume it. Pass WithPrimeCheck to
// NewTable to have that verified.
package combination
