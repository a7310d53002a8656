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

// Package math: number-theory kit. Generalized from the Legendre/
// Shanks-Tonelli code in the teacher's math/int.go into free functions
// shared by every engine (CFRAC factor-base construction, SQUFOF,
// Pollard p-1/rho).
package math

import gerr "github.com/bfix/intfact/errors"

// mrWitnesses are the deterministic witnesses that make Miller-Rabin
// exact for every n < 3.317e24 (Jaeschke / Pomerance-Selfridge-Wagstaff).
var mrWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// mrBound is 3.317e24, the threshold under which the fixed witness set
// above is provably deterministic.
var mrBound = NewIntFromString("3317000000000000000000000")

// smallPrimeChecks are divided out before Miller-Rabin runs, matching the
// driver's own small-prime screening (factorizer.go).
var smallPrimeChecks = []int64{2, 3, 5}

// IsProbablePrime runs Miller-Rabin on n. For n < 3.317e24 the fixed
// witness set above makes the result deterministic; for larger n,
// rounds additional random bases are drawn (0 defaults to 20, matching
// math/big's conventional margin).
func IsProbablePrime(n *Int, rounds int) bool {
	if n.Cmp(TWO) < 0 {
		return false
	}
	for _, p := range smallPrimeChecks {
		pp := NewInt(p)
		if n.Equals(pp) {
			return true
		}
		if n.Mod(pp).Equals(ZERO) {
			return false
		}
	}
	// write n-1 = 2^r * d with d odd
	d := n.Sub(ONE)
	r := 0
	for d.Bit(0) == 0 {
		r++
		d = d.Rsh(1)
	}
	witness := func(a *Int) bool {
		x := a.ModPow(d, n)
		if x.Equals(ONE) || x.Equals(n.Sub(ONE)) {
			return true
		}
		for i := 0; i < r-1; i++ {
			x = x.Mul(x).Mod(n)
			if x.Equals(n.Sub(ONE)) {
				return true
			}
		}
		return false
	}
	for _, a := range mrWitnesses {
		base := NewInt(a)
		if base.Cmp(n.Sub(ONE)) >= 0 {
			continue
		}
		if !witness(base) {
			return false
		}
	}
	if n.Cmp(mrBound) < 0 {
		return true
	}
	if rounds <= 0 {
		rounds = 20
	}
	for i := 0; i < rounds; i++ {
		a := NewIntRndRange(TWO, n.Sub(TWO))
		if !witness(a) {
			return false
		}
	}
	return true
}

// LegendreSymbol computes (a|p) via Euler's criterion a^((p-1)/2) mod p.
// p must be an odd prime.
func LegendreSymbol(a, p *Int) int {
	r := a.Mod(p)
	if r.Equals(ZERO) {
		return 0
	}
	e := p.Sub(ONE).Div(TWO)
	x := r.ModPow(e, p)
	if x.Equals(ONE) {
		return 1
	}
	return -1
}

// TonelliShanks computes a square root of a modulo the odd prime p, when
// a is a quadratic residue (LegendreSymbol(a,p) == 1). Returns
// ErrNoSquareRoot otherwise.
func TonelliShanks(a, p *Int) (*Int, error) {
	if LegendreSymbol(a, p) != 1 {
		return nil, gerr.New(ErrNoSquareRoot, "TonelliShanks(%s,%s)", a, p)
	}
	// p = 3 (mod 4): direct formula
	if p.Mod(FOUR).Equals(THREE) {
		return a.ModPow(p.Add(ONE).Div(FOUR), p), nil
	}
	// factor p-1 = Q * 2^S, Q odd
	S := 0
	Q := p.Sub(ONE)
	for Q.Bit(0) == 0 {
		S++
		Q = Q.Div(TWO)
	}
	// find a quadratic non-residue z
	z := TWO
	for LegendreSymbol(z, p) != -1 {
		z = z.Add(ONE)
	}
	c := z.ModPow(Q, p)
	R := a.ModPow(Q.Add(ONE).Div(TWO), p)
	t := a.ModPow(Q, p)
	M := S
	for {
		if t.Equals(ONE) {
			return R, nil
		}
		i := 1
		tt := t.Mul(t).Mod(p)
		for ; i < M; i++ {
			if tt.Equals(ONE) {
				break
			}
			tt = tt.Mul(tt).Mod(p)
		}
		b := c
		for j := 0; j < M-i-1; j++ {
			b = b.Mul(b).Mod(p)
		}
		R = R.Mul(b).Mod(p)
		c = b.Mul(b).Mod(p)
		t = t.Mul(c).Mod(p)
		M = i
	}
}

// ExtendedGcd returns (g, x, y) with a*x + b*y = g = gcd(a,b), using an
// iterative two-row update (no recursion, unlike the teacher's original
// recursive ExtendedEuclid).
func ExtendedGcd(a, b *Int) (g, x, y *Int) {
	oldR, r := a, b
	oldS, s := ONE, ZERO
	oldT, t := ZERO, ONE
	for !r.Equals(ZERO) {
		q := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}
	return oldR, oldS, oldT
}

// ModInverse returns the multiplicative inverse of a modulo m.
func ModInverse(a, m *Int) (*Int, error) {
	return a.Mod(m).ModInverse(m)
}

// NextProbablePrime returns the smallest probable prime strictly greater
// than i, stepping by 2 once past the even case -- the small-prime-sieve
// building block used by the CFRAC factor base and the driver's trial
// division.
func (i *Int) NextProbablePrime(rounds int) *Int {
	n := i.Add(ONE)
	if n.Cmp(TWO) <= 0 {
		return TWO
	}
	if n.IsEven() {
		n = n.Add(ONE)
	}
	for !IsProbablePrime(n, rounds) {
		n = n.Add(TWO)
	}
	return n
}
