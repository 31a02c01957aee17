// SPDX-License-Identifier: MIT
// Package combination_test contains test helpers.
//
// Purpose:
//   • An exact math/big oracle for C(n, r) mod m, independent of both strategies.
//   • Small fixtures (primes, table constructor) shared by every test file.

package combination_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvcomb/combination"
	"github.com/stretchr/testify/require"
)

// Primes used across tests.
const (
	p1e9   uint64 = 1_000_000_007
	p998   uint64 = 998_244_353
	p13    uint64 = 13
	pMax64 uint64 = 18_446_744_073_709_551_557 // 2^64 − 59, largest 64-bit prime
)

// binomialMod returns C(n, r) mod m computed exactly with math/big.
// Invalid shapes (n < r, n < 0, r < 0) return 0.
func binomialMod(n, r int64, m uint64) uint64 {
	if n < r || n < 0 || r < 0 {
		return 0
	}
	z := new(big.Int).Binomial(n, r)

	return z.Mod(z, new(big.Int).SetUint64(m)).Uint64()
}

// mustTable builds a Table or fails the test immediately.
func mustTable(t testing.TB, bound int, modulus uint64, opts ...combination.Option) *combination.Table {
	t.Helper()
	tbl, err := combination.NewTable(bound, modulus, opts...)
	require.NoError(t, err, "NewTable(%d, %d)", bound, modulus)
	require.NotNil(t, tbl)

	return tbl
}

// requirePanicsErrorIs asserts that fn panics with an error value matching target.
func requirePanicsErrorIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
