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

// Package cfiter produces the continued-fraction expansion of sqrt(n):
// the lazy partial-quotient sequence (a_k) and the convergent pair
// (p_k mod n, q_k mod n) that drive the Morrison-Brillhart congruence of
// squares used by CFRAC (math/factorizer/cfrac).
//
// Generalized from the "Function" siever-source idiom in the teacher's
// math/factorizer/{qs,sac} packages (a stateful object producing a
// sequence of (x,y) pairs pulled by a consumer); here the produced pair
// is the continued-fraction convergent rather than a quadratic-sieve
// polynomial value.
package cfiter

import "github.com/bfix/intfact/math"

// State is the five recurrence variables driving the expansion of
// sqrt(n), plus the two trailing convergent numerators/denominators
// (reduced mod n, since every downstream consumer needs them only mod
// n). Invariant: 0 < d, |m| < a0 after the first step,
// a = floor((a0+m)/d), n - m^2 = 0 (mod d).
type State struct {
	n  *math.Int
	a0 *math.Int

	m, d, a *math.Int

	pPrev, pCurr *math.Int // p_{k-1} mod n, p_k mod n
	qPrev, qCurr *math.Int // q_{k-1} mod n, q_k mod n

	k        int
	finished bool // n is a perfect square: the expansion terminates immediately
}

// New starts a fresh continued-fraction expansion of sqrt(n). If n is a
// perfect square, the returned state is immediately Done().
func New(n *math.Int) *State {
	a0 := math.Isqrt(n)
	s := &State{
		n:  n,
		a0: a0,
		m:  math.ZERO,
		d:  math.ONE,
		a:  a0,

		pPrev: math.ONE,
		pCurr: a0.Mod(n),
		qPrev: math.ZERO,
		qCurr: math.ONE,

		k: 0,
	}
	if math.IsPerfectSquare(n) {
		s.finished = true
	}
	return s
}

// Done reports whether the expansion has terminated (only possible when
// n is a perfect square); otherwise the sequence is infinite and the
// caller bounds its own prefix.
func (s *State) Done() bool {
	return s.finished
}

// A0 returns floor(sqrt(n)), the zeroth partial quotient.
func (s *State) A0() *math.Int {
	return s.a0
}

// Convergent is one step of the expansion: the partial quotient a_k and
// the convergent numerator/denominator reduced mod n.
type Convergent struct {
	K int
	A *math.Int
	P *math.Int // p_k mod n
	Q *math.Int // q_k mod n
}

// Next advances the recurrence by one step and returns the resulting
// convergent. Must not be called once Done() is true.
func (s *State) Next() Convergent {
	// m_{k+1} = d_k*a_k - m_k
	mNext := s.d.Mul(s.a).Sub(s.m)
	// d_{k+1} = (n - m_{k+1}^2) / d_k
	dNext := s.n.Sub(mNext.Mul(mNext)).Div(s.d)
	// a_{k+1} = floor((a0 + m_{k+1}) / d_{k+1})
	aNext := s.a0.Add(mNext).Div(dNext)

	s.m, s.d, s.a = mNext, dNext, aNext
	s.k++

	// p_k = a_k*p_{k-1} + p_{k-2} (mod n), same for q
	pNext := s.a.Mul(s.pCurr).Add(s.pPrev).Mod(s.n)
	qNext := s.a.Mul(s.qCurr).Add(s.qPrev).Mod(s.n)
	s.pPrev, s.pCurr = s.pCurr, pNext
	s.qPrev, s.qCurr = s.qCurr, qNext

	if s.d.Equals(math.ONE) && s.k > 0 {
		// the period has closed; the expansion is periodic and infinite,
		// not finished -- restart is the caller's responsibility if it
		// wants a fresh prefix.
	}
	return Convergent{K: s.k, A: s.a, P: s.pCurr, Q: s.qCurr}
}

// Prefix returns the first count convergents, restarting the expansion
// from scratch (the sequence is restartable only from k=0, never
// resumable mid-stream).
func Prefix(n *math.Int, count int) []Convergent {
	s := New(n)
	if s.Done() {
		return nil
	}
	out := make([]Convergent, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, s.Next())
	}
	return out
}
