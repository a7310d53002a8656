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
//*    PGMID.        WILLIAM P+1 ALGORITHM.                          */
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
	PP1_MAXSTEP = 100
	PP1_AMAX    = 10000
)

// WilliamPplus1 finds a factor of n via the Lucas sequence V_k(P,1) mod
// n, walked with a Montgomery ladder: if p+1 is B-smooth for some prime
// factor p of n, V_k(P,1) == 2 (mod p) once k absorbs p+1's factors, so
// gcd(V_k - 2, n) surfaces p.
type WilliamPplus1 struct{}

// GetFactor tries successive starting parameters P = 3, 4, 5, ..., and
// for each one composes V_2(P), V_3(V_2(P)), V_4(V_3(...)), ...: since
// Lucas sequences satisfy V_a(V_b(x)) = V_{ab}(x), this builds up
// V_{2*3*4*...*step}(P) one smooth factor at a time, the same
// multiplicative smoothness sweep Pollard p-1 does with its exponent M.
func (f *WilliamPplus1) GetFactor(n *math.Int) *math.Int {
	for p := int64(3); p < PP1_AMAX; p++ {
		B := math.NewInt(p)
		for step := 2; step < PP1_MAXSTEP; step++ {
			V := vStep(n, B, step)
			g := n.GCD(V.Sub(math.TWO).Mod(n))
			if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
				return g
			}
			if g.Equals(n) {
				break
			}
			B = V
		}
	}
	return nil
}

// vStep computes V_idx(P,1) mod n via the standard Lucas-ladder binary
// recurrence, maintaining the pair (V_i, V_{i+1}) as idx's bits are
// scanned from the top (Montgomery's ladder for Lucas sequences: the
// pair advances as (V_i,V_{i+1}) -> (V_2i,V_2i+1) or (V_2i+1,V_2i+2)
// depending on the next bit, mirroring a Montgomery-ladder scalar
// multiplication).
func vStep(n, P *math.Int, idx int) *math.Int {
	lo := P                                      // V_1
	hi := P.Mul(P).Sub(math.TWO).Mod(n)          // V_2
	i := math.NewInt(int64(idx))
	for pos := i.BitLen() - 2; pos >= 0; pos-- {
		if i.Bit(pos) == 1 {
			lo = lo.Mul(hi).Sub(P).Mod(n)
			hi = hi.Mul(hi).Sub(math.TWO).Mod(n)
		} else {
			hi = lo.Mul(hi).Sub(P).Mod(n)
			lo = lo.Mul(lo).Sub(math.TWO).Mod(n)
		}
	}
	return lo
}
