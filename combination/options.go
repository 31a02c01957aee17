// SPDX-License-Identifier: MIT

// Package combination: functional configuration for NewTable.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The modulus and bound are positional arguments of NewTable, not options:
//     every table needs both and neither has a meaningful default for a table.
//   - The free function NCr has no options; NCrDefault applies DefaultModulus.
package combination

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultModulus is the prime 10^9+7 used by NCrDefault and NHrDefault.
	DefaultModulus uint64 = 1_000_000_007

	// DefaultPrimeCheck toggles the primality test of the modulus in NewTable.
	// false ⇒ a composite modulus silently produces incorrect coefficients.
	DefaultPrimeCheck = false

	// DefaultPrimeRounds is the number of Miller–Rabin rounds used when the
	// primality test is enabled. math/big also runs a Baillie–PSW test, which is
	// exact for every uint64, so the rounds only matter as extra margin.
	DefaultPrimeRounds = 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrimeRoundsInvalid = "combination: WithPrimeRounds: rounds must be >= 1"
	panicZeroModulus        = "combination: NCr: modulus must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; NewTable resolves a ...Option list via gatherOptions.
type Options struct {
	primeCheck  bool // DefaultPrimeCheck
	primeRounds int  // DefaultPrimeRounds, >= 1
}

// WithPrimeCheck makes NewTable reject a composite modulus with ErrNonPrimeModulus.
//
// Complexity: the test itself is O(rounds · log³ modulus), run once per NewTable.
func WithPrimeCheck() Option {
	return func(o *Options) { o.primeCheck = true }
}

// WithPrimeRounds sets the Miller–Rabin round count of the primality test.
// It does not enable the test by itself; combine with WithPrimeCheck.
//
// Panics with a stable message when rounds < 1.
func WithPrimeRounds(rounds int) Option {
	if rounds < 1 {
		panic(panicPrimeRoundsInvalid)
	}

	return func(o *Options) { o.primeRounds = rounds }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		primeCheck:  DefaultPrimeCheck,
		primeRounds: DefaultPrimeRounds,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
