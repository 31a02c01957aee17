// SPDX-License-Identifier: MIT

package combination

import (
	"fmt"
	"math/big"
)

// NewTable precomputes factorial, inverse-factorial and inverse tables of
// length bound modulo modulus.
//
// Algorithm:
//  1. fact[0] = fact[1] = 1; fact[i] = fact[i-1]·i.
//  2. inv[1] = 1; inv[i] = p − inv[p mod i]·⌊p/i⌋ (mod p).
//     p mod i < i, so the right-hand side only reads computed entries.
//  3. invFact[0] = invFact[1] = 1; invFact[i] = invFact[i-1]·inv[i].
//
// The three recurrences share one pass over i = 2..bound-1.
//
// Errors:
//   - ErrBadBound            — bound < 1.
//   - ErrBadModulus          — modulus < 2.
//   - ErrBoundExceedsModulus — bound > modulus.
//   - ErrNonPrimeModulus     — modulus composite and WithPrimeCheck was given.
//
// A composite modulus without WithPrimeCheck is accepted and yields
// mathematically incorrect coefficients.
//
// Complexity: O(bound) time, O(bound) space (three tables).
func NewTable(bound int, modulus uint64, opts ...Option) (*Table, error) {
	if bound < 1 {
		return nil, fmt.Errorf("NewTable: bound=%d: %w", bound, ErrBadBound)
	}
	if modulus < 2 {
		return nil, fmt.Errorf("NewTable: modulus=%d: %w", modulus, ErrBadModulus)
	}
	if uint64(bound) > modulus {
		return nil, fmt.Errorf("NewTable: bound=%d, modulus=%d: %w", bound, modulus, ErrBoundExceedsModulus)
	}

	o := gatherOptions(opts...)
	if o.primeCheck && !new(big.Int).SetUint64(modulus).ProbablyPrime(o.primeRounds) {
		return nil, fmt.Errorf("NewTable: modulus=%d: %w", modulus, ErrNonPrimeModulus)
	}

	t := &Table{
		modulus: modulus,
		fact:    make([]uint64, bound),
		invFact: make([]uint64, bound),
		inv:     make([]uint64, bound),
	}
	t.fact[0], t.invFact[0] = 1, 1
	if bound > 1 {
		t.fact[1], t.invFact[1], t.inv[1] = 1, 1, 1
	}

	p := modulus
	for i := 2; i < bound; i++ {
		u := uint64(i)
		t.fact[i] = mulMod(t.fact[i-1], u, p)
		t.inv[i] = p - mulMod(t.inv[p%u], p/u, p)
		t.invFact[i] = mulMod(t.invFact[i-1], t.inv[i], p)
	}

	return t, nil
}

// Bound returns the exclusive upper limit on n.
func (t *Table) Bound() int { return len(t.fact) }

// Modulus returns the modulus fixed at construction.
func (t *Table) Modulus() uint64 { return t.modulus }

// CountNCr returns C(n, r) mod Modulus: the number of r-element subsets of an
// n-element set.
//
// Returns 0 when n < r, n < 0 or r < 0. These shapes are folded into zero
// rather than reported as errors.
//
// Panics with an error wrapping ErrOutOfBound when n >= Bound();
// use CheckedNCr to receive the error instead.
//
// Complexity: O(1).
func (t *Table) CountNCr(n, r int) uint64 {
	if n < r || n < 0 || r < 0 {
		return 0
	}
	t.mustIndex("CountNCr", n)

	return t.nCr(n, r)
}

// CountNHr returns H(n, r) = C(n+r-1, r) mod Modulus: the number of
// multisets of size r drawn from n kinds.
//
// The guards of CountNCr apply to (n+r-1, r). In particular n = 0 gives
// n+r-1 < r, hence 0, and CountNHr(0, 0) evaluates C(-1, 0) = 0.
//
// Panics with an error wrapping ErrOutOfBound when n+r-1 >= Bound().
//
// Complexity: O(1).
func (t *Table) CountNHr(n, r int) uint64 {
	return t.CountNCr(n+r-1, r)
}

// CountNPr returns P(n, r) = n!/(n-r)! mod Modulus: the number of ordered
// selections of r elements out of n.
//
// Guards and panics follow CountNCr.
//
// Complexity: O(1).
func (t *Table) CountNPr(n, r int) uint64 {
	if n < r || n < 0 || r < 0 {
		return 0
	}
	t.mustIndex("CountNPr", n)

	return mulMod(t.fact[n], t.invFact[n-r], t.modulus)
}

// Factorial returns n! mod Modulus for 0 <= n < Bound().
// Panics with an error wrapping ErrOutOfBound otherwise.
func (t *Table) Factorial(n int) uint64 {
	t.mustIndex("Factorial", n)

	return t.fact[n]
}

// InverseFactorial returns (n!)^-1 mod Modulus for 0 <= n < Bound().
// Panics with an error wrapping ErrOutOfBound otherwise.
func (t *Table) InverseFactorial(n int) uint64 {
	t.mustIndex("InverseFactorial", n)

	return t.invFact[n]
}

// Inverse returns i^-1 mod Modulus for 1 <= i < Bound().
// Inverse(0) returns 0: zero has no inverse and the slot is unused.
// Panics with an error wrapping ErrOutOfBound for i < 0 or i >= Bound().
func (t *Table) Inverse(i int) uint64 {
	t.mustIndex("Inverse", i)

	return t.inv[i]
}

// nCr is the unguarded kernel shared by CountNCr and CheckedNCr.
// Requires 0 <= r <= n < Bound().
func (t *Table) nCr(n, r int) uint64 {
	p := t.modulus

	return mulMod(t.fact[n], mulMod(t.invFact[r], t.invFact[n-r], p), p)
}

// indexError reports whether idx addresses a table slot, returning a wrapped
// ErrOutOfBound tagged with op when it does not.
func (t *Table) indexError(op string, idx int) error {
	if idx < 0 || idx >= len(t.fact) {
		return fmt.Errorf("%s: index=%d, bound=%d: %w", op, idx, len(t.fact), ErrOutOfBound)
	}

	return nil
}

// mustIndex panics with the indexError value when idx is out of range.
func (t *Table) mustIndex(op string, idx int) {
	if err := t.indexError(op, idx); err != nil {
		panic(err)
	}
}
