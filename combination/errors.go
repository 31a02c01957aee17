// SPDX-License-Identifier: MIT
// Package combination: sentinel error set.
// Every message is prefixed with "combination: ..." so it greps cleanly.
// Return these sentinels directly or wrap them with fmt.Errorf("ctx: %w", ErrX);
// callers match with errors.Is.

package combination

import "errors"

var (
	// ErrBadBound is returned when a table is requested with bound < 1.
	ErrBadBound = errors.New("combination: bound must be >= 1")

	// ErrBadModulus is returned when the modulus is < 2.
	ErrBadModulus = errors.New("combination: modulus must be >= 2")

	// ErrBoundExceedsModulus is returned when bound > modulus. The inverse
	// recurrence has no defined value for indices that are multiples of the modulus.
	ErrBoundExceedsModulus = errors.New("combination: bound exceeds modulus")

	// ErrNonPrimeModulus is returned by NewTable under WithPrimeCheck when the
	// modulus fails the probabilistic primality test.
	ErrNonPrimeModulus = errors.New("combination: modulus is not prime")

	// ErrOutOfBound indicates that a query index (n, or n+r-1 for nHr) is
	// at or beyond the precomputed bound.
	ErrOutOfBound = errors.New("combination: index out of precomputed bound")

	// ErrNilTable indicates a nil *Table receiver.
	ErrNilTable = errors.New("combination: nil table")
)
