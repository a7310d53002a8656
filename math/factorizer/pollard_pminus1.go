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
//*    PGMID.        POLLARD P-1 ALGORITHM.                          */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    DATE WRITTEN. 07/02/05.                                       */
//*    COPYRIGHT.    (C) BY BERND R. FIX. ALL RIGHTS RESERVED.       */
//*                  LICENSED MATERIAL - PROGRAM PROPERTY OF THE     */
//*                  AUTHOR. REFER TO COPYRIGHT INSTRUCTIONS.        */
//*    REMARKS.                                                      */
//********************************************************************/

package factorizer

import (
	"math"

	intfactmath "github.com/bfix/intfact/math"
)

// Algorithm constants
const (
	PM1_RETRY = 100
	PM1_BMAX  = 10000
)

// Pm1Variant selects one of the four p-1 update rules sharing the same
// outer "try a coprime base, raise it, gcd-check" shell.
type Pm1Variant int

const (
	// Pm1Standard raises a by successive integers b = 2, 3, 4, ...
	Pm1Standard Pm1Variant = iota
	// Pm1SelfReferential raises a to itself: a <- a^a mod n.
	Pm1SelfReferential
	// Pm1PowerMod interleaves one square-and-multiply step per outer
	// iteration instead of a full ModPow call.
	Pm1PowerMod
	// Pm1Reference multiplies a's exponent by each prime power <= B in
	// turn, gcd-checking every GcdInterval primes (the "smooth bound"
	// variant).
	Pm1Reference
)

// PollardPminus1 finds a factor of n via p-1: for a group order p-1
// that is B-smooth, a^(p-1) == 1 (mod p), so gcd(a^M - 1, n) is
// frequently a nontrivial factor once M absorbs all of p-1's prime
// power factors.
type PollardPminus1 struct {
	Variant Pm1Variant
	Config  Config
}

// GetFactor dispatches to the configured variant.
func (f *PollardPminus1) GetFactor(n *intfactmath.Int) *intfactmath.Int {
	switch f.Variant {
	case Pm1SelfReferential:
		return f.selfReferential(n)
	case Pm1PowerMod:
		return f.powerMod(n)
	case Pm1Reference:
		return f.reference(n)
	default:
		return f.standard(n)
	}
}

// coprimeBase draws a random residue coprime to n, or returns it
// directly as a lucky factor if it already shares one with n.
func coprimeBase(n *intfactmath.Int) (a, luckyFactor *intfactmath.Int) {
	a = intfactmath.NewIntRnd(n)
	if a.Cmp(intfactmath.TWO) < 0 {
		a = intfactmath.TWO
	}
	d := a.GCD(n)
	if d.Cmp(intfactmath.ONE) > 0 {
		return a, d
	}
	return a, nil
}

func (f *PollardPminus1) standard(n *intfactmath.Int) *intfactmath.Int {
	Bmax := intfactmath.NewInt(PM1_BMAX)
	for range PM1_RETRY {
		a, lucky := coprimeBase(n)
		if lucky != nil {
			return lucky
		}
		for b := intfactmath.TWO; b.Cmp(Bmax) <= 0; b = b.Add(intfactmath.ONE) {
			a = a.ModPow(b, n)
			t := a.Sub(intfactmath.ONE).Mod(n)
			d := t.GCD(n)
			if d.Cmp(intfactmath.ONE) > 0 && d.Cmp(n) < 0 {
				return d
			}
			if d.Equals(n) {
				break
			}
		}
	}
	return nil
}

func (f *PollardPminus1) selfReferential(n *intfactmath.Int) *intfactmath.Int {
	for range PM1_RETRY {
		a, lucky := coprimeBase(n)
		if lucky != nil {
			return lucky
		}
		for step := 0; step < PM1_BMAX; step++ {
			a = a.ModPow(a, n)
			d := a.Sub(intfactmath.ONE).Mod(n).GCD(n)
			if d.Cmp(intfactmath.ONE) > 0 && d.Cmp(n) < 0 {
				return d
			}
			if d.Equals(n) {
				break
			}
		}
	}
	return nil
}

// powerMod interleaves one square-and-multiply step of a^M mod n per
// outer iteration, instead of recomputing a^M from scratch with ModPow
// every time M grows by one factor. r holds the running square-and-
// multiply accumulator; e holds the remaining bits of M still to be
// folded in; once e is exhausted, M grows by one more factor (extending
// the smooth bound by one) and e is reloaded from the updated M.
func (f *PollardPminus1) powerMod(n *intfactmath.Int) *intfactmath.Int {
	Bmax := intfactmath.NewInt(PM1_BMAX)
	for range PM1_RETRY {
		a, lucky := coprimeBase(n)
		if lucky != nil {
			return lucky
		}

		M := intfactmath.ONE
		r := intfactmath.ONE
		base := a
		bitpos := -1 // exhausted: force a reload on first step

		b := intfactmath.TWO
		for b.Cmp(Bmax) <= 0 {
			if bitpos < 0 {
				M = M.Mul(b).Div(M.GCD(b)).Mod(n)
				r = intfactmath.ONE
				base = a
				bitpos = M.BitLen() - 1
				b = b.Add(intfactmath.ONE)
			}
			r = r.Mul(r).Mod(n)
			if M.Bit(bitpos) == 1 {
				r = r.Mul(base).Mod(n)
			}
			bitpos--

			if bitpos < 0 {
				d := r.Sub(intfactmath.ONE).Mod(n).GCD(n)
				if d.Cmp(intfactmath.ONE) > 0 && d.Cmp(n) < 0 {
					return d
				}
				if d.Equals(n) {
					break
				}
			}
		}
	}
	return nil
}

// smoothBound computes exp(sqrt(ln n * ln ln n) / sqrt(2)), clamped to
// [1e3, 1e15], the heuristic B used when Config.Bound is unset.
func smoothBound(n *intfactmath.Int) *intfactmath.Int {
	lnN := float64(n.BitLen()) * math.Ln2
	lnlnN := math.Log(lnN)
	if lnlnN < 1 {
		lnlnN = 1
	}
	b := math.Exp(math.Sqrt(lnN*lnlnN) / math.Sqrt2)
	if b < 1e3 {
		b = 1e3
	}
	if b > 1e15 {
		b = 1e15
	}
	return intfactmath.NewInt(int64(b))
}

// reference is the smooth-bound variant: for each prime p <= B, raise a
// to p^e with e = floor(log_p(B)), folding all of them into one running
// exponentiation and gcd-checking every GcdInterval primes.
func (f *PollardPminus1) reference(n *intfactmath.Int) *intfactmath.Int {
	B := f.Config.Bound
	if B == nil {
		B = smoothBound(n)
	}
	gcdInterval := f.Config.GcdInterval
	if gcdInterval < 1 {
		gcdInterval = 20
	}

	for attempt := 0; attempt < PM1_RETRY; attempt++ {
		a := f.Config.base()
		if f.Config.Base == nil && attempt > 0 {
			// default base exhausted on the first pass without a hit:
			// later retries vary the base instead of repeating it
			a = intfactmath.NewIntRnd(n)
		}
		d := a.GCD(n)
		if d.Cmp(intfactmath.ONE) > 0 {
			return d
		}

		count := 0
		for p := intfactmath.TWO; p.Cmp(B) <= 0; p = p.NextProbablePrime(32) {
			e := plog(p, B)
			a = a.ModPow(p.Pow(e), n)
			count++
			if count%gcdInterval == 0 {
				g := a.Sub(intfactmath.ONE).Mod(n).GCD(n)
				if g.Cmp(intfactmath.ONE) > 0 && g.Cmp(n) < 0 {
					return g
				}
				if g.Equals(n) {
					break
				}
			}
		}
		g := a.Sub(intfactmath.ONE).Mod(n).GCD(n)
		if g.Cmp(intfactmath.ONE) > 0 && g.Cmp(n) < 0 {
			return g
		}
	}
	return nil
}

// plog returns floor(log_p(bound)).
func plog(p, bound *intfactmath.Int) int {
	e := 0
	acc := intfactmath.ONE
	for acc.Mul(p).Cmp(bound) <= 0 {
		acc = acc.Mul(p)
		e++
	}
	if e == 0 {
		e = 1
	}
	return e
}
