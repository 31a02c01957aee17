// SPDX-License-Identifier: MIT

package combination

// Checked queries.
//
// The Count* methods treat n >= Bound() as a programmer error and panic.
// The Checked* variants below surface the same condition as a wrapped
// ErrOutOfBound, and a nil receiver as ErrNilTable, for callers whose n comes
// from untrusted input. Combinatorially empty shapes (n < r, n < 0, r < 0)
// are not errors: they return (0, nil) exactly like the Count* methods.

// CheckedNCr is CountNCr with an explicit error for out-of-bound n.
func (t *Table) CheckedNCr(n, r int) (uint64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if n < r || n < 0 || r < 0 {
		return 0, nil
	}
	if err := t.indexError("CheckedNCr", n); err != nil {
		return 0, err
	}

	return t.nCr(n, r), nil
}

// CheckedNHr is CountNHr with an explicit error when n+r-1 >= Bound().
func (t *Table) CheckedNHr(n, r int) (uint64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	m := n + r - 1
	if m < r || m < 0 || r < 0 {
		return 0, nil
	}
	if err := t.indexError("CheckedNHr", m); err != nil {
		return 0, err
	}

	return t.nCr(m, r), nil
}

// CheckedNPr is CountNPr with an explicit error for out-of-bound n.
func (t *Table) CheckedNPr(n, r int) (uint64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if n < r || n < 0 || r < 0 {
		return 0, nil
	}
	if err := t.indexError("CheckedNPr", n); err != nil {
		return 0, err
	}

	return mulMod(t.fact[n], t.invFact[n-r], t.modulus), nil
}
