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

// Package cfrac implements the Morrison-Brillhart continued-fraction
// factorization method (CFRAC): build a factor base of primes that are
// quadratic residues of n, sieve continued-fraction convergents of
// sqrt(n) for residues that are smooth over that base, find a GF(2)
// linear dependency among their exponent-parity vectors, and extract a
// congruence of squares from it.
package cfrac

import (
	"context"
	"runtime"

	"github.com/bfix/intfact/logger"
	"github.com/bfix/intfact/math"
)

// Config carries the CFRAC tunables from spec section 6.
type Config struct {
	// FactorBaseSize overrides the heuristic base size; must be >= 50
	// when set. 0 selects the heuristic.
	FactorBaseSize int
	// RelationMargin is the oversample beyond the base size. Default 20.
	RelationMargin int
	// BatchSize is how many convergents are generated per sieve batch.
	// Default 2000.
	BatchSize int
	// Parallel enables the worker pool (GOMAXPROCS workers) for
	// smoothness testing and GF(2) elimination. When false, which is
	// the zero value and so what a zero Config uses, both run with a
	// single worker.
	Parallel bool
}

func (c Config) margin() int {
	if c.RelationMargin >= 1 {
		return c.RelationMargin
	}
	return 20
}

func (c Config) batchSize() int {
	if c.BatchSize >= 1 {
		return c.BatchSize
	}
	return 2000
}

func (c Config) workers() int {
	if !c.Parallel {
		return 1
	}
	if w := runtime.GOMAXPROCS(0); w > 1 {
		return w
	}
	return 1
}

// GetFactor runs CFRAC against n and returns a nontrivial factor, or
// nil if the elimination step exhausted every dependency without
// producing a proper split (spec's documented failure mode).
func GetFactor(ctx context.Context, n *math.Int, cfg Config) *math.Int {
	fb := Build(n, cfg.FactorBaseSize)
	logger.Printf(logger.INFO, "cfrac: factor base size %d for n=%s", len(fb.Primes), n)

	relations := Sieve(ctx, n, fb, cfg.batchSize(), cfg.margin(), cfg.workers())
	if len(relations) < fb.Cols() {
		logger.Printf(logger.WARN, "cfrac: sieve produced only %d relations, wanted >= %d", len(relations), fb.Cols())
		return nil
	}

	rows := make([]*BitVector, len(relations))
	for i, r := range relations {
		rows[i] = r.V
	}
	matrix := NewGF2Matrix(rows, fb.Cols())
	if err := matrix.Eliminate(ctx, cfg.workers()); err != nil {
		logger.Printf(logger.WARN, "cfrac: elimination aborted: %v", err)
		return nil
	}

	for _, dep := range matrix.Dependencies() {
		if g := extractSquare(n, relations, dep); g != nil {
			return g
		}
	}
	return nil
}

// extractSquare multiplies the X-values of every relation named by dep
// to get X mod n, multiplies their Q-values over the integers to get
// Y^2, takes Y = Isqrt(Y^2), and tests gcd(|X-Y|, n) and gcd(X+Y, n)
// for a proper factor.
func extractSquare(n *math.Int, relations []*SmoothRelation, dep *BitVector) *math.Int {
	X := math.ONE
	Y2 := math.ONE
	for i, r := range relations {
		if !dep.Get(i) {
			continue
		}
		X = X.Mul(r.X).Mod(n)
		Y2 = Y2.Mul(r.Q.Abs())
	}
	Y := math.Isqrt(Y2).Mod(n)

	if g := n.GCD(X.Sub(Y).Abs()); g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
		return g
	}
	if g := n.GCD(X.Add(Y).Mod(n)); g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
		return g
	}
	return nil
}
