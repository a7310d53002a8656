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

package cfiter

import (
	"testing"

	"github.com/bfix/intfact/math"
)

// reference recomputes the same recurrence without the mod-n reduction,
// so the test can check that reducing early (as State does) agrees with
// reducing late.
func reference(n *math.Int, count int) []Convergent {
	a0 := math.Isqrt(n)
	m, d, a := math.ZERO, math.ONE, a0
	pPrev, pCurr := math.ONE, a0
	qPrev, qCurr := math.ZERO, math.ONE

	out := make([]Convergent, 0, count)
	for k := 1; k <= count; k++ {
		mNext := d.Mul(a).Sub(m)
		dNext := n.Sub(mNext.Mul(mNext)).Div(d)
		aNext := a0.Add(mNext).Div(dNext)
		m, d, a = mNext, dNext, aNext

		pNext := a.Mul(pCurr).Add(pPrev)
		qNext := a.Mul(qCurr).Add(qPrev)
		pPrev, pCurr = pCurr, pNext
		qPrev, qCurr = qCurr, qNext

		out = append(out, Convergent{K: k, A: a, P: pCurr.Mod(n), Q: qCurr.Mod(n)})
	}
	return out
}

func TestConvergentsMatchUnreducedRecurrence(t *testing.T) {
	for _, nv := range []int64{2, 3, 13, 991, 123456791} {
		n := math.NewInt(nv)
		want := reference(n, 20)
		got := Prefix(n, 20)
		if len(got) != len(want) {
			t.Fatalf("n=%d: length mismatch", nv)
		}
		for i := range want {
			if !got[i].A.Equals(want[i].A) || !got[i].P.Equals(want[i].P) || !got[i].Q.Equals(want[i].Q) {
				t.Fatalf("n=%d step %d: got %+v want %+v", nv, i, got[i], want[i])
			}
		}
	}
}

func TestPerfectSquareTerminatesImmediately(t *testing.T) {
	n := math.NewInt(144)
	s := New(n)
	if !s.Done() {
		t.Fatal("perfect square should terminate the expansion")
	}
	if !s.A0().Equals(math.NewInt(12)) {
		t.Fatalf("A0 = %v, want 12", s.A0())
	}
}

func TestSquareCongruence(t *testing.T) {
	// x^2 = q (mod n) where x = p_k mod n and q is p_k^2 - n*q_k^2.
	n := math.NewInt(991)
	for _, c := range Prefix(n, 15) {
		x2 := c.P.Mul(c.P).Mod(n)
		q := c.Q.Mul(c.Q).Mul(n)
		qred := c.P.Mul(c.P).Sub(q).Mod(n)
		if !x2.Equals(qred) {
			t.Fatalf("step %d: x^2 mod n = %v, (x^2-n*q^2) mod n = %v", c.K, x2, qred)
		}
	}
}
