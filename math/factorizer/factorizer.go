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
//*    PGMID.        INTEGER PRIME DECOMPOSER.                       */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    DATE WRITTEN. 07/02/05.                                       */
//*    COPYRIGHT.    (C) BY BERND R. FIX. ALL RIGHTS RESERVED.       */
//*                  LICENSED MATERIAL - PROGRAM PROPERTY OF THE     */
//*                  AUTHOR. REFER TO COPYRIGHT INSTRUCTIONS.        */
//*    REMARKS.                                                      */
//********************************************************************/

// Package factorizer drives the prime decomposition of an arbitrary
// composite: a short trial-division screen, followed by the Pollard
// rho/p-1 family, Williams p+1, SQUFOF (sub-package squfof) and CFRAC
// (sub-package cfrac). A single composite may be handed to several
// engines in sequence; each engine is expected to fail silently
// (return nil) rather than error out, so the driver can move on.
//
// Factor and Factorize are the package-level default entrypoints: cheap
// screening, then Pollard rho-combined, then SQUFOF, then CFRAC. Callers
// that want a different chain or tunables build their own *Factorizer
// with NewFactorizer.
package factorizer

import (
	"context"
	"sort"

	"github.com/bfix/intfact/logger"
	"github.com/bfix/intfact/math"
	"github.com/bfix/intfact/math/factorizer/cfrac"
	"github.com/bfix/intfact/math/factorizer/squfof"
)

// Algorithm names one of the engines this package and its sub-packages
// implement: a closed enumeration covering CFRAC and SQUFOF (each in
// its own sub-package, adapted to Engine below) plus the Pollard/
// Williams family implemented directly in this package.
type Algorithm int

const (
	CFRAC Algorithm = iota
	SQUFOF
	PollardRhoStandard
	PollardRhoCombined
	PollardPm1Standard
	PollardPm1SelfRef
	PollardPm1PowMod
	PollardPm1Reference
	WilliamsPplus1
)

func (a Algorithm) String() string {
	switch a {
	case CFRAC:
		return "cfrac"
	case SQUFOF:
		return "squfof"
	case PollardRhoStandard:
		return "pollard-rho-standard"
	case PollardRhoCombined:
		return "pollard-rho-combined"
	case PollardPm1Standard:
		return "pollard-p-1-standard"
	case PollardPm1SelfRef:
		return "pollard-p-1-self-referential"
	case PollardPm1PowMod:
		return "pollard-p-1-power-mod"
	case PollardPm1Reference:
		return "pollard-p-1-reference"
	case WilliamsPplus1:
		return "williams-p+1"
	default:
		return "unknown"
	}
}

// Engine finds a single nontrivial factor of n, or reports nil if it
// exhausted its own retry budget without success (FactorizationExhausted
// is not an error: see math/errors.go).
type Engine interface {
	GetFactor(n *math.Int) *math.Int
}

// Config carries the tunables for the Pollard p-1 reference (smooth
// bound) variant. A zero-value Config falls back to the heuristic bound
// and the documented defaults.
type Config struct {
	// Bound overrides the heuristic smooth bound B; nil selects
	// exp(sqrt(ln n * ln ln n) / sqrt(2)), clamped to [1e3, 1e15].
	Bound *math.Int
	// GcdInterval is how many primes are folded into the exponent
	// between gcd checks. Default 20.
	GcdInterval int
	// Base is the starting residue a. Default 2.
	Base *math.Int
}

func (c Config) gcdInterval() int {
	if c.GcdInterval >= 1 {
		return c.GcdInterval
	}
	return 20
}

func (c Config) base() *math.Int {
	if c.Base != nil {
		return c.Base
	}
	return math.TWO
}

// squfofEngine adapts squfof.GetFactor to the Engine interface.
type squfofEngine struct{}

func (squfofEngine) GetFactor(n *math.Int) *math.Int { return squfof.GetFactor(n) }

// cfracEngine adapts cfrac.GetFactor to the Engine interface, running
// it against the background context with its default Config.
type cfracEngine struct{ cfg cfrac.Config }

func (e cfracEngine) GetFactor(n *math.Int) *math.Int {
	return cfrac.GetFactor(context.Background(), n, e.cfg)
}

// ChooseAlgorithm returns the engine registered for the given algorithm
// identifier.
func ChooseAlgorithm(a Algorithm, cfg Config) Engine {
	switch a {
	case CFRAC:
		return cfracEngine{}
	case SQUFOF:
		return squfofEngine{}
	case PollardRhoStandard:
		return new(PollardRho)
	case PollardRhoCombined:
		return new(PollardRhoCombined)
	case PollardPm1Standard:
		return &PollardPminus1{Variant: Pm1Standard}
	case PollardPm1SelfRef:
		return &PollardPminus1{Variant: Pm1SelfReferential}
	case PollardPm1PowMod:
		return &PollardPminus1{Variant: Pm1PowerMod}
	case PollardPm1Reference:
		return &PollardPminus1{Variant: Pm1Reference, Config: cfg}
	case WilliamsPplus1:
		return new(WilliamPplus1)
	default:
		return nil
	}
}

// Factorizer tries a fixed sequence of engines against whatever
// composite remains after the cheap small-prime screen.
type Factorizer struct {
	applied []Algorithm
	cfg     Config
}

// NewFactorizer builds a Factorizer that tries the given algorithms, in
// order, against any composite remainder.
func NewFactorizer(cfg Config, algs ...Algorithm) *Factorizer {
	return &Factorizer{applied: append([]Algorithm(nil), algs...), cfg: cfg}
}

// DefaultAlgorithms is the engine chain the package-level Factor and
// Factorize helpers apply after the cheap screen: Pollard rho-combined
// first (cheapest, catches most small-to-medium factors), then SQUFOF
// (cheap, covers what rho missed), then CFRAC (most expensive, broadest
// reach) last.
var DefaultAlgorithms = []Algorithm{PollardRhoCombined, SQUFOF, CFRAC}

// Default is the package-level Factorizer backing Factor and Factorize.
var Default = NewFactorizer(Config{}, DefaultAlgorithms...)

// Factor finds a single nontrivial factor of n using the default engine
// chain (cheap screening, then Pollard rho-combined, then SQUFOF, then
// CFRAC).
func Factor(n *math.Int) (*math.Int, bool) {
	return Default.Factor(n)
}

// Factorize decomposes n into its ordered (ascending) multiset of prime
// factors using the default engine chain.
func Factorize(n *math.Int) []*math.Int {
	return Default.Factorize(n)
}

// smallPrimeLimit bounds the trial-division screen run ahead of every
// engine (spec step 4: any prime <= 1000 dividing n).
var smallPrimeLimit = math.NewInt(1000)

// smallPrimes divides out every prime <= smallPrimeLimit, returning the
// (possibly still composite) remainder and the primes removed.
func smallPrimes(n *math.Int) (rem *math.Int, list []*math.Int) {
	rem = n
	for p := math.TWO; p.Cmp(smallPrimeLimit) <= 0; p = p.NextProbablePrime(32) {
		for rem.Cmp(math.ONE) > 0 && rem.Mod(p).Equals(math.ZERO) {
			rem = rem.Div(p)
			list = append(list, p)
		}
	}
	return
}

// Factor returns a single nontrivial factor of n and true, following the
// screening order from spec step 4.1, or (nil, false) if every engine in
// the chain was exhausted.
func (f *Factorizer) Factor(n *math.Int) (*math.Int, bool) {
	if n.Cmp(math.TWO) < 0 {
		return n, true
	}
	if n.IsEven() {
		return math.TWO, true
	}
	if math.IsPerfectSquare(n) {
		return math.Isqrt(n), true
	}
	if _, found := smallPrimes(n); len(found) > 0 {
		return found[0], true
	}
	for _, alg := range f.applied {
		eng := ChooseAlgorithm(alg, f.cfg)
		if eng == nil {
			continue
		}
		logger.Printf(logger.DBG, "factorizer: trying %s on %s", alg, n)
		if factor := eng.GetFactor(n); factor != nil && factor.Cmp(math.ONE) > 0 && factor.Cmp(n) < 0 {
			return factor, true
		}
	}
	return nil, false
}

// Factorize decomposes n into its ordered (ascending) multiset of prime
// factors. It maintains an explicit work queue: pop a candidate; if
// Miller-Rabin passes, emit it; otherwise split it via Factor and push
// both halves. If the split yields nothing useful (zero factors, or the
// factor equals the candidate itself), the candidate is emitted
// unchanged -- the documented fallback for an engine that could not
// make progress.
func (f *Factorizer) Factorize(n *math.Int) []*math.Int {
	var out []*math.Int
	rem, small := smallPrimes(n)
	out = append(out, small...)

	queue := []*math.Int{rem}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		if x.Cmp(math.ONE) == 0 {
			continue
		}
		if x.ProbablyPrime(40) {
			out = append(out, x)
			continue
		}
		factor, ok := f.Factor(x)
		if !ok || factor == nil || factor.Equals(x) || factor.Cmp(math.ONE) == 0 {
			// the engine chain made no progress: emit unchanged
			out = append(out, x)
			continue
		}
		other := x.Div(factor)
		queue = append(queue, factor, other)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}
