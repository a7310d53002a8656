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

// Package squfof implements Shanks' square forms factorization: a
// two-phase binary quadratic form cycle over k*n for a small multiplier
// k, cheap in memory (O(1) state) and effective on composites up to
// roughly 2^62 before CFRAC's larger machinery pays off.
package squfof

import "github.com/bfix/intfact/math"

// multipliers is the Shanks-Riesel multiplier set tried in order; a
// multiplier that sends kn outside a representable form, or whose cycle
// never produces a square Q, is simply skipped.
var multipliers = []int64{1, 3, 5, 7, 11, 15, 21, 33, 35, 55, 77, 105, 165, 231, 385, 1155}

// safetyCeiling bounds the forward-phase iteration count regardless of
// the kn^(1/4) estimate, so a pathological input cannot spin forever.
const safetyCeiling = 1_000_000

// GetFactor runs SQUFOF against n, returning a nontrivial factor or nil
// if every multiplier in the Shanks-Riesel set failed to split n within
// the iteration budget.
func GetFactor(n *math.Int) *math.Int {
	if n.Cmp(math.TWO) < 0 {
		return nil
	}
	for _, k := range multipliers {
		if g := tryMultiplier(n, k); g != nil {
			return g
		}
	}
	return nil
}

func tryMultiplier(n *math.Int, k int64) *math.Int {
	kn := n.Mul(math.NewInt(k))

	sqrtKn := math.Isqrt(kn)
	if sqrtKn.Mul(sqrtKn).Equals(kn) {
		// kn is itself a perfect square: gcd(n, sqrt(kn)) may split n
		g := n.GCD(sqrtKn)
		if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
			return g
		}
		return nil
	}

	L := 3*fourthRoot(kn) + 100
	if L > safetyCeiling {
		L = safetyCeiling
	}

	// forward phase: walk the principal cycle of reduced forms of kn,
	// looking for an odd step with a perfect-square Q.
	P := sqrtKn
	Qprev := math.ONE
	Q := kn.Sub(P.Mul(P))

	for i := 1; i <= L; i++ {
		b := sqrtKn.Add(P).Div(Q)
		Pnext := b.Mul(Q).Sub(P)
		Qnext := Qprev.Add(b.Mul(P.Sub(Pnext)))
		Qprev, P, Q = Q, Pnext, Qnext

		if Q.Sign() <= 0 {
			break
		}
		if i%2 == 0 {
			continue
		}
		if !math.IsPerfectSquare(Q) {
			continue
		}
		s := math.Isqrt(Q)
		if s.Equals(math.ONE) {
			continue
		}
		if g := reversePhase(n, kn, sqrtKn, P, s); g != nil {
			return g
		}
	}
	return nil
}

// reversePhase reinitializes the cycle from the square root s of the
// square Q found in the forward phase and walks it until the period
// closes (P repeats), at which point gcd(n, P) is the candidate factor.
func reversePhase(n, kn, sqrtKn, P, s *math.Int) *math.Int {
	b0 := sqrtKn.Sub(P).Div(s)
	Pinv := b0.Mul(s).Add(P)
	Qprev := s
	Q := kn.Sub(Pinv.Mul(Pinv)).Div(s)

	prevP := Pinv
	for i := 0; i < safetyCeiling; i++ {
		b := sqrtKn.Add(prevP).Div(Q)
		Pnext := b.Mul(Q).Sub(prevP)
		Qnext := Qprev.Add(b.Mul(prevP.Sub(Pnext)))

		if Pnext.Equals(prevP) {
			break
		}
		Qprev, prevP, Q = Q, Pnext, Qnext
	}

	g := n.GCD(Pinv)
	if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
		return g
	}
	return nil
}

// fourthRoot returns floor(x^(1/4)) via two applications of Isqrt.
func fourthRoot(x *math.Int) int {
	return int(math.Isqrt(math.Isqrt(x)).Int64())
}
