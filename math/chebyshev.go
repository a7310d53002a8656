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

// ChebyshevT computes T_k(x) mod n via a binary ladder over k's bits,
// maintaining the pair (T_k, T_{k+1}) and applying
//
//	T_{2m}(x)   = 2*T_m(x)^2 - 1
//	T_{m+1}(x)  = 2*x*T_m(x) - T_{m-1}(x)
//
// at each bit. Used by the ρ-combined Pollard variant (factorizer
// package) as one of its three rotating iteration maps.
func ChebyshevT(k int, x, n *Int) *Int {
	if k == 0 {
		return ONE.Mod(n)
	}
	tLo, tHi := x.Mod(n), TWO.Mul(x).Mul(x).Sub(ONE).Mod(n)
	for b := bitLenInt(k) - 1; b >= 1; b-- {
		if (k>>uint(b-1))&1 == 1 {
			// advance (T_m, T_{m+1}) -> (T_{2m+1}, T_{2m+2})
			t2m := TWO.Mul(tLo).Mul(tLo).Sub(ONE).Mod(n)
			t2m1 := TWO.Mul(tLo).Mul(tHi).Sub(x).Mod(n)
			tLo, tHi = t2m1, TWO.Mul(tHi).Mul(tHi).Sub(ONE).Mod(n)
			_ = t2m
		} else {
			t2m := TWO.Mul(tLo).Mul(tLo).Sub(ONE).Mod(n)
			t2m1 := TWO.Mul(tLo).Mul(tHi).Sub(x).Mod(n)
			tLo, tHi = t2m, t2m1
		}
	}
	return tLo
}

// ChebyshevTConstantTime computes T_k(x) mod n the same way as
// ChebyshevT, but always evaluates both the "bit set" and "bit clear"
// branch outputs and selects between them without a data-dependent
// branch, so the two are bit-for-bit identical for equal inputs (the
// testable property of spec.md §8).
func ChebyshevTConstantTime(k int, x, n *Int) *Int {
	if k == 0 {
		return ONE.Mod(n)
	}
	tLo, tHi := x.Mod(n), TWO.Mul(x).Mul(x).Sub(ONE).Mod(n)
	for b := bitLenInt(k) - 1; b >= 1; b-- {
		t2m := TWO.Mul(tLo).Mul(tLo).Sub(ONE).Mod(n)
		t2m1 := TWO.Mul(tLo).Mul(tHi).Sub(x).Mod(n)
		t2m2 := TWO.Mul(tHi).Mul(tHi).Sub(ONE).Mod(n)

		bit := (k >> uint(b-1)) & 1
		lo := selectInt(bit, t2m1, t2m)
		hi := selectInt(bit, t2m2, t2m1)
		tLo, tHi = lo, hi
	}
	return tLo
}

// selectInt returns a if bit is 1 and b if bit is 0, computed as
// b + bit*(a-b) so that no branch depends on bit (both a and b are
// always fully computed by the caller before this is invoked).
func selectInt(bit int, a, b *Int) *Int {
	return b.Add(a.Sub(b).Mul(NewInt(int64(bit))))
}

func bitLenInt(k int) int {
	n := 0
	for k > 0 {
		n++
		k >>= 1
	}
	return n
}
