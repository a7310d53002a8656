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

// Isqrt computes floor(sqrt(x)) with Newton's method, seeded at
// 2^((bitlen(x)+1)/2) and iterated until the next candidate stops
// shrinking. Panics (via ErrInvalidInput) on a negative x.
func Isqrt(x *Int) *Int {
	if x.Sign() < 0 {
		panic(gerr.New(ErrInvalidInput, "Isqrt(%s)", x))
	}
	if x.Sign() == 0 {
		return ZERO
	}
	r := TWO.Pow((x.BitLen() + 1) / 2)
	for {
		next := r.Add(x.Div(r)).Div(TWO)
		if next.Cmp(r) >= 0 {
			break
		}
		r = next
	}
	// correct for the case the loop stopped one step early
	for r.Mul(r).Cmp(x) > 0 {
		r = r.Sub(ONE)
	}
	for r.Add(ONE).Mul(r.Add(ONE)).Cmp(x) <= 0 {
		r = r.Add(ONE)
	}
	return r
}

// IsPerfectSquare reports whether x = Isqrt(x)^2.
func IsPerfectSquare(x *Int) bool {
	if x.Sign() < 0 {
		return false
	}
	r := Isqrt(x)
	return r.Mul(r).Equals(x)
}

// Root computes floor(x^(1/k)) via Newton's step
// x_{i+1} = ((k-1)*x_i + n/x_i^(k-1)) / k, terminating on non-decrease.
// k must be >= 1; an even k rejects a negative radicand.
func Root(n *Int, k int) *Int {
	if k < 1 {
		panic(gerr.New(ErrInvalidInput, "Root(_,%d)", k))
	}
	if n.Sign() < 0 && k%2 == 0 {
		panic(gerr.New(ErrInvalidInput, "Root(%s,%d)", n, k))
	}
	if n.Sign() == 0 {
		return ZERO
	}
	neg := n.Sign() < 0
	x := n.Abs()
	if k == 1 {
		if neg {
			return x.Neg()
		}
		return x
	}
	kk := NewInt(int64(k))
	r := TWO.Pow(x.BitLen()/k + 1)
	for {
		next := kk.Sub(ONE).Mul(r).Add(x.Div(r.Pow(k - 1))).Div(kk)
		if next.Cmp(r) >= 0 {
			break
		}
		r = next
	}
	for r.Pow(k).Cmp(x) > 0 {
		r = r.Sub(ONE)
	}
	for r.Add(ONE).Pow(k).Cmp(x) <= 0 {
		r = r.Add(ONE)
	}
	if neg {
		return r.Neg()
	}
	return r
}
