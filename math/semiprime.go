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

import (
	"math/rand"

	gerr "github.com/bfix/intfact/errors"
)

// GenerateSemiprime builds a composite test case: split d decimal digits
// into halves d1+d2, draw two distinct random primes in
// [10^(d1-1), 10^d1-1] and [10^(d2-1), 10^d2-1], and return their product
// together with the two factors. Without a seed, candidates are drawn
// from crypto/rand (NewIntRnd); with a seed, a math/rand source is used
// instead so the end-to-end scenario in spec.md §8 is reproducible.
func GenerateSemiprime(digits int, seed ...int64) (n, p, q *Int) {
	if digits < 2 {
		panic(gerr.New(ErrInvalidInput, "GenerateSemiprime(%d)", digits))
	}
	d1 := digits / 2
	d2 := digits - d1

	genPrime := func(lo, hi *Int, src *rand.Rand) *Int {
		for {
			var cand *Int
			if src == nil {
				cand = lo.Add(NewIntRnd(hi.Sub(lo).Add(ONE)))
			} else {
				span := new(bigRange).init(lo, hi, src)
				cand = span.next()
			}
			if cand.Bit(0) == 0 {
				cand = cand.Add(ONE)
			}
			if cand.Cmp(hi) > 0 {
				continue
			}
			if IsProbablePrime(cand, 40) {
				return cand
			}
		}
	}

	bounds := func(digits int) (lo, hi *Int) {
		lo = TEN.Pow(digits - 1)
		hi = TEN.Pow(digits).Sub(ONE)
		return
	}

	lo1, hi1 := bounds(d1)
	lo2, hi2 := bounds(d2)

	var src *rand.Rand
	if len(seed) > 0 {
		src = rand.New(rand.NewSource(seed[0]))
	}

	p = genPrime(lo1, hi1, src)
	for {
		q = genPrime(lo2, hi2, src)
		if !q.Equals(p) {
			break
		}
	}
	n = p.Mul(q)
	return
}

// TEN is 10, used only by GenerateSemiprime's digit-range bounds.
var TEN = NewInt(10)

// bigRange draws a uniform random Int in [lo,hi] from a seeded
// math/rand.Rand, by rejection sampling over the bit length of the span.
type bigRange struct {
	lo, span *Int
	src      *rand.Rand
}

func (b *bigRange) init(lo, hi *Int, src *rand.Rand) *bigRange {
	b.lo = lo
	b.span = hi.Sub(lo).Add(ONE)
	b.src = src
	return b
}

func (b *bigRange) next() *Int {
	bits := b.span.BitLen()
	for {
		buf := make([]byte, (bits+7)/8)
		b.src.Read(buf)
		cand := NewIntFromBytes(buf)
		if bits%8 != 0 {
			cand = cand.Mod(TWO.Pow(bits))
		}
		if cand.Cmp(b.span) < 0 {
			return b.lo.Add(cand)
		}
	}
}
