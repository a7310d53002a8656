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

//********************************************************************/
//*    PGMID.        POLLARD RHO ALGORITHM.                          */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    DATE WRITTEN. 07/02/05.                                       */
//*    COPYRIGHT.    (C) BY BERND R. FIX. ALL RIGHTS RESERVED.       */
//*                  LICENSED MATERIAL - PROGRAM PROPERTY OF THE     */
//*                  AUTHOR. REFER TO COPYRIGHT INSTRUCTIONS.        */
//*    REMARKS.                                                      */
//********************************************************************/

package factorizer

import "github.com/bfix/intfact/math"

// Algorithm constants
const (
	RHO_RETRY = 100
	RHO_LOOP  = 8192
)

// PollardRho finds a factor of n with Brent/Floyd cycle detection over
// f(x) = x^2 + c mod n. c restarts at a new value on every unsuccessful
// retry.
type PollardRho struct{}

// GetFactor runs the standard rho iteration.
func (pr *PollardRho) GetFactor(n *math.Int) *math.Int {
	c := math.ONE
	for range RHO_RETRY {
		f := func(x *math.Int) *math.Int { return x.Mul(x).Add(c).Mod(n) }

		x, y, d := math.TWO, math.TWO, math.ONE
		for loop := 0; d.Equals(math.ONE) && loop < RHO_LOOP; loop++ {
			x = f(x)
			y = f(f(y))
			d = n.GCD(x.Sub(y).Abs())
		}
		if d.Cmp(math.ONE) > 0 && d.Cmp(n) < 0 {
			return d
		}
		c = c.Add(math.ONE)
	}
	return nil
}

// PollardRhoCombined runs the same Brent/Floyd cycle detection as
// PollardRho, but rotates the iteration map as the retry loop
// progresses: Chebyshev T_2 while the loop counter is below n's
// bit-length/9, the self-referential map x -> x^x mod n up to
// 2*bitlen(n)/9 more iterations, then x^2+1 up to 2*bitlen(n)/5 more,
// cycling back to T_2 thereafter. Each map is expected to uncover a
// different family of short cycles, so a single seed sweeps three
// distinct rho trails instead of one.
type PollardRhoCombined struct{}

func (pc *PollardRhoCombined) GetFactor(n *math.Int) *math.Int {
	bl := n.BitLen()
	t1 := bl / 9
	t2 := t1 + 2*bl/9
	t3 := t2 + 2*bl/5
	if t3 == 0 {
		t1, t2, t3 = 1, 2, 3 // degenerate tiny n: still rotate through all three maps
	}

	mapFor := func(i int) func(x *math.Int) *math.Int {
		switch pos := i % t3; {
		case pos < t1:
			return func(x *math.Int) *math.Int { return math.ChebyshevT(2, x, n) }
		case pos < t2:
			return func(x *math.Int) *math.Int {
				e := x.Mod(n)
				if e.Sign() == 0 {
					e = math.ONE
				}
				return x.ModPow(e, n)
			}
		default:
			return func(x *math.Int) *math.Int { return x.Mul(x).Add(math.ONE).Mod(n) }
		}
	}

	for range RHO_RETRY {
		x, y, d := math.NewIntRnd(n), math.NewIntRnd(n), math.ONE
		for loop := 0; d.Equals(math.ONE) && loop < RHO_LOOP; loop++ {
			f := mapFor(loop)
			x = f(x)
			y = f(f(y))
			d = n.GCD(x.Sub(y).Abs())
		}
		if d.Cmp(math.ONE) > 0 && d.Cmp(n) < 0 {
			return d
		}
	}
	return nil
}
