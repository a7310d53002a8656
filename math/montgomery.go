//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package math

import gerr "github.com/bfix/intfact/errors"

// Montgomery holds the precomputed constants for Montgomery-form modular
// arithmetic under an odd modulus n: R = 2^k with k = bitlen(n), n' with
// n*n' = -1 (mod R), and R mod n / R^2 mod n for the to/from conversions.
// An optional alternative to Int.ModPow; the engines in package
// factorizer do not build one and use Int.ModPow directly.
type Montgomery struct {
	n     *Int
	k     uint
	R     *Int // 2^k mod n is implicit; R itself kept for REDC
	RmodN *Int // R mod n
	R2    *Int // R^2 mod n
	nInv  *Int // -n^-1 mod R
}

// NewMontgomery precomputes the Montgomery constants for odd modulus n.
func NewMontgomery(n *Int) (*Montgomery, error) {
	if n.IsEven() {
		return nil, gerr.New(ErrInvalidInput, "NewMontgomery(%s): even modulus", n)
	}
	k := uint(n.BitLen())
	R := TWO.Pow(int(k))
	nInv, err := n.ModInverse(R)
	if err != nil {
		return nil, err
	}
	negNInv := R.Sub(nInv).Mod(R)
	return &Montgomery{
		n:     n,
		k:     k,
		R:     R,
		RmodN: R.Mod(n),
		R2:    R.Mul(R).Mod(n),
		nInv:  negNInv,
	}, nil
}

// redc computes REDC(t) = (t + ((t * nInv) mod R) * n) / R, with one
// conditional subtraction of n.
func (m *Montgomery) redc(t *Int) *Int {
	mlow := t.Mul(m.nInv).Mod(m.R)
	u := t.Add(mlow.Mul(m.n)).Rsh(m.k)
	if u.Cmp(m.n) >= 0 {
		u = u.Sub(m.n)
	}
	return u
}

// ToMontgomery converts x in [0,n) to Montgomery form x*R mod n.
func (m *Montgomery) ToMontgomery(x *Int) *Int {
	return m.redc(x.Mul(m.R2))
}

// FromMontgomery converts a Montgomery-form residue back to [0,n).
func (m *Montgomery) FromMontgomery(xbar *Int) *Int {
	return m.redc(xbar)
}

// MulMod multiplies two Montgomery-form residues.
func (m *Montgomery) MulMod(abar, bbar *Int) *Int {
	return m.redc(abar.Mul(bbar))
}

// ModPow computes x^e mod n via Montgomery multiplication, using the
// standard square-and-multiply ladder over e's bits.
func (m *Montgomery) ModPow(x, e *Int) *Int {
	xbar := m.ToMontgomery(x)
	rbar := m.ToMontgomery(ONE)
	for i := e.BitLen() - 1; i >= 0; i-- {
		rbar = m.MulMod(rbar, rbar)
		if e.Bit(i) == 1 {
			rbar = m.MulMod(rbar, xbar)
		}
	}
	return m.FromMontgomery(rbar)
}
