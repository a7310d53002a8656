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

package factorizer

import (
	"testing"

	"github.com/bfix/intfact/math"
)

func checkFactor(t *testing.T, name string, n, g *math.Int) {
	t.Helper()
	if g == nil {
		t.Fatalf("%s: no factor found for %v", name, n)
	}
	if g.Cmp(math.ONE) <= 0 || g.Cmp(n) >= 0 {
		t.Fatalf("%s: factor %v out of range for %v", name, g, n)
	}
	if !n.Mod(g).Equals(math.ZERO) {
		t.Fatalf("%s: %v does not divide %v", name, g, n)
	}
}

func TestPollardRhoStandard(t *testing.T) {
	n := math.NewInt(8051) // 83 * 97
	g := new(PollardRho).GetFactor(n)
	checkFactor(t, "rho-standard", n, g)
}

func TestPollardRhoCombined(t *testing.T) {
	n := math.NewInt(10403) // 101 * 103
	g := new(PollardRhoCombined).GetFactor(n)
	checkFactor(t, "rho-combined", n, g)
}

func TestPollardPminus1Standard(t *testing.T) {
	n := math.NewInt(1000007) // 29 * 34483, 29-1 = 28 = 2^2*7 is smooth
	g := (&PollardPminus1{Variant: Pm1Standard}).GetFactor(n)
	checkFactor(t, "p-1-standard", n, g)
}

func TestPollardPminus1SelfReferential(t *testing.T) {
	n := math.NewInt(1000007)
	g := (&PollardPminus1{Variant: Pm1SelfReferential}).GetFactor(n)
	checkFactor(t, "p-1-self-referential", n, g)
}

func TestPollardPminus1Reference(t *testing.T) {
	n := math.NewInt(1000007)
	g := (&PollardPminus1{Variant: Pm1Reference}).GetFactor(n)
	checkFactor(t, "p-1-reference", n, g)
}

func TestWilliamPplus1(t *testing.T) {
	n := math.NewInt(2041) // 13 * 157, 13+1=14, 157+1=158=2*79
	g := new(WilliamPplus1).GetFactor(n)
	checkFactor(t, "williams-p+1", n, g)
}

func TestFactorizeSmallComposite(t *testing.T) {
	f := NewFactorizer(Config{}, PollardRhoStandard, PollardRhoCombined, PollardPm1Standard, WilliamsPplus1)
	n := math.NewInt(8051)
	factors := f.Factorize(n)

	product := math.ONE
	for _, p := range factors {
		if !p.ProbablyPrime(40) {
			t.Fatalf("%v is not prime", p)
		}
		product = product.Mul(p)
	}
	if !product.Equals(n) {
		t.Fatalf("product of factors %v != %v", product, n)
	}
}

func TestFactorizeScreensSmallPrimesAndSquares(t *testing.T) {
	f := NewFactorizer(Config{})

	factors := f.Factorize(math.NewInt(144))
	product := math.ONE
	for _, p := range factors {
		product = product.Mul(p)
	}
	if !product.Equals(math.NewInt(144)) {
		t.Fatalf("144: product %v != 144", product)
	}

	factors = f.Factorize(math.NewInt(2 * 3 * 5 * 7 * 11 * 13))
	product = math.ONE
	for _, p := range factors {
		product = product.Mul(p)
	}
	if !product.Equals(math.NewInt(2 * 3 * 5 * 7 * 11 * 13)) {
		t.Fatalf("product %v != 30030", product)
	}
}

func TestDefaultFactorAndFactorize(t *testing.T) {
	n := math.NewInt(8051) // 83 * 97
	g, ok := Factor(n)
	checkFactor(t, "default-factor", n, g)
	if !ok {
		t.Fatal("default Factor reported failure despite finding a factor")
	}

	factors := Factorize(n)
	product := math.ONE
	for _, p := range factors {
		if !p.ProbablyPrime(40) {
			t.Fatalf("%v is not prime", p)
		}
		product = product.Mul(p)
	}
	if !product.Equals(n) {
		t.Fatalf("product of factors %v != %v", product, n)
	}
}

func TestChooseAlgorithmCoversEveryVariant(t *testing.T) {
	for _, a := range []Algorithm{
		CFRAC, SQUFOF, PollardRhoStandard, PollardRhoCombined,
		PollardPm1Standard, PollardPm1SelfRef, PollardPm1PowMod,
		PollardPm1Reference, WilliamsPplus1,
	} {
		if eng := ChooseAlgorithm(a, Config{}); eng == nil {
			t.Fatalf("%v: expected a registered engine", a)
		}
	}
}

func TestChooseAlgorithmUnknownReturnsNil(t *testing.T) {
	if eng := ChooseAlgorithm(Algorithm(999), Config{}); eng != nil {
		t.Fatal("unregistered algorithm identifiers should yield no engine")
	}
}
