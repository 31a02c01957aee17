// Package lvcomb is a small toolbox for counting combinations modulo a
// prime, fast enough to sit inside the inner loop of a counting problem.
//
// 🚀 What is lvcomb?
//
//	A pure-Go, allocation-once library that brings together:
//		• Precomputed tables: n!, (n!)^-1 and i^-1 mod p up to a bound
//		• O(1) queries: nCr, nHr (multiset), nPr
//		• Table-free single queries: NCr / NHr in O(r log p)
//
// ✨ Why choose lvcomb?
//
//   - Linear-time modular inverses, no per-element exponentiation
//   - Full 64-bit moduli: products are formed in 128/256 bits
//   - Read-only after construction: share one table across goroutines
//   - Explicit guards: invalid shapes count as 0, out-of-bound n is reported
//
// Subpackages:
//
//	combination/ — Table (precomputed) and NCr/NHr (direct) strategies
//
//	go get github.com/katalvlaran/lvcomb/combination
package lvcomb
