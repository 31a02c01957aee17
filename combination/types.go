// SPDX-License-Identifier: MIT

package combination

// Table is a precomputed index of factorials, inverse factorials and modular
// inverses for every n in [0, Bound) modulo a fixed prime.
//
// All three slices are allocated with exact length by NewTable and never
// written again, so a *Table may be queried concurrently from many goroutines
// once construction has returned. Build a new Table for a different
// (bound, modulus) pair; nothing is shared between instances.
type Table struct {
	modulus uint64   // fixed prime modulus, >= 2
	fact    []uint64 // fact[n] = n! mod modulus
	invFact []uint64 // invFact[n] = (n!)^-1 mod modulus
	inv     []uint64 // inv[i] = i^-1 mod modulus for i >= 1; inv[0] unused (0)
}
