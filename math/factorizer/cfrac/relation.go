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

package cfrac

import "github.com/bfix/intfact/math"

// SmoothRelation is one congruence p_k^2 = (-n/2,n/2]-folded residue r
// (mod n) where |r| is fully smooth over the factor base. X is p_k mod
// n; Q is the signed residue r (kept as an integer, not reduced, since
// the square-root extraction needs its true magnitude); V is the
// exponent-parity vector: bit 0 is the sign flag (set iff r < 0), bit 1
// is the parity of 2's exponent in |r|, and bit 2+i is the parity of
// the exponent of FactorBase.Primes[i].
type SmoothRelation struct {
	X *math.Int
	Q *math.Int
	V *BitVector
}

// trialFactor attempts to fully factor |r| over the factor base by
// trial division. It returns the exponent-parity vector and true on
// success, or (nil, false) if a cofactor larger than 1 remains once the
// base is exhausted.
func trialFactor(r *math.Int, fb *FactorBase) (*BitVector, bool) {
	if r.Sign() == 0 {
		return nil, false
	}
	vec := NewBitVector(fb.Cols())
	if r.Sign() < 0 {
		vec.Flip(0)
	}
	rem := r.Abs()

	for rem.Cmp(math.ONE) > 0 && rem.IsEven() {
		rem = rem.Div(math.TWO)
		vec.Flip(1)
	}
	for i, p := range fb.Primes {
		for rem.Cmp(math.ONE) > 0 && rem.Mod(p).Equals(math.ZERO) {
			rem = rem.Div(p)
			vec.Flip(2 + i)
		}
	}
	if !rem.Equals(math.ONE) {
		return nil, false
	}
	return vec, true
}
