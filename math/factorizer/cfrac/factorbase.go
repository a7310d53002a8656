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

package cfrac

import (
	stdmath "math"

	"github.com/bfix/intfact/math"
)

// FactorBase is the ascending list of odd primes p with Legendre
// symbol (n|p) = 1, plus the implicit sign flag and the prime 2 that
// every CFRAC run starts from. Primes holds only the odd QR primes;
// the sign flag and the factor 2 are tracked as the first two columns
// of every exponent-parity vector (see relation.go), not as entries
// here.
type FactorBase struct {
	N      *math.Int
	Primes []*math.Int
}

// Cols is the width of the exponent-parity vector this base produces:
// one column for the sign flag, one for the factor 2, one per odd
// prime.
func (fb *FactorBase) Cols() int {
	return 2 + len(fb.Primes)
}

// defaultSize returns max(200, exp(0.4*sqrt(ln n * ln ln n))), the
// heuristic factor base size when the caller does not override it.
func defaultSize(n *math.Int) int {
	lnN := float64(n.BitLen()) * stdmath.Ln2
	lnlnN := stdmath.Log(lnN)
	if lnlnN < 1 {
		lnlnN = 1
	}
	size := int(stdmath.Exp(0.4 * stdmath.Sqrt(lnN*lnlnN)))
	if size < 200 {
		size = 200
	}
	return size
}

// Build constructs the factor base for n: 2 is always present; odd
// primes are scanned in ascending order and kept when n is a quadratic
// residue mod p, until size primes have been collected. size <= 0
// selects the heuristic default.
func Build(n *math.Int, size int) *FactorBase {
	if size <= 0 {
		size = defaultSize(n)
	}
	primes := make([]*math.Int, 0, size)
	for p := math.THREE; len(primes) < size; p = p.NextProbablePrime(32) {
		if math.LegendreSymbol(n.Mod(p), p) == 1 {
			primes = append(primes, p)
		}
	}
	return &FactorBase{N: n, Primes: primes}
}
