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
	"context"
	"sync"

	"github.com/bfix/intfact/cfiter"
	"github.com/bfix/intfact/concurrent"
	"github.com/bfix/intfact/logger"
	"github.com/bfix/intfact/math"
)

// sieveCandidate is one continued-fraction convergent pulled off the
// (inherently serial) iterator, ready to be smoothness-tested.
type sieveCandidate struct {
	x, r *math.Int
}

// sieveDispatch implements concurrent.Dispatchable[sieveCandidate,
// *SmoothRelation]: each worker trial-divides one candidate's residue
// over the factor base; the dispatcher's own Eval never asks for early
// termination (Sieve tracks the target count itself and stops
// submitting once reached), it only files the hits away.
type sieveDispatch struct {
	fb *FactorBase
	wg *sync.WaitGroup

	mu    sync.Mutex
	found []*SmoothRelation
}

func (s *sieveDispatch) Worker(ctx context.Context, _ int, taskCh chan sieveCandidate, resCh chan *SmoothRelation) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-taskCh:
			if !ok {
				return
			}
			var rel *SmoothRelation
			if vec, smooth := trialFactor(t.r, s.fb); smooth {
				rel = &SmoothRelation{X: t.x, Q: t.r, V: vec}
			}
			resCh <- rel
		}
	}
}

func (s *sieveDispatch) Eval(rel *SmoothRelation) bool {
	defer s.wg.Done()
	if rel != nil {
		s.mu.Lock()
		s.found = append(s.found, rel)
		s.mu.Unlock()
	}
	return false
}

// count returns the number of relations found so far.
func (s *sieveDispatch) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.found)
}

// snapshot returns a copy of the relations found so far.
func (s *sieveDispatch) snapshot() []*SmoothRelation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*SmoothRelation(nil), s.found...)
}

// foldResidue computes r = p_k^2 - n*q_k^2 folded into (-n/2, n/2], as
// p_k^2 mod n minus n when that exceeds n/2 (spec step 2 of CFRAC
// sieving): since p_k, q_k are already reduced mod n, p_k^2 mod n
// equals (p_k^2 - n*q_k^2) mod n, so only one modular squaring is
// needed per convergent.
func foldResidue(n *math.Int, c cfiter.Convergent) *math.Int {
	return c.P.Mul(c.P).ModSign(n)
}

// Sieve runs the continued-fraction convergent generator against n and
// collects smooth relations until relations reaches
// len(fb.Primes)+2+margin (the +2 accounts for the sign flag and the
// factor 2 columns), submitting batchSize candidates at a time and
// testing each batch's smoothness in parallel across workers. It
// returns the relations found in discovery order.
func Sieve(ctx context.Context, n *math.Int, fb *FactorBase, batchSize, margin, workers int) []*SmoothRelation {
	if batchSize < 1 {
		batchSize = 2000
	}
	if workers < 1 {
		workers = 1
	}
	target := fb.Cols() + margin

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	disp := &sieveDispatch{fb: fb, wg: new(sync.WaitGroup)}
	d := concurrent.NewDispatcher[sieveCandidate, *SmoothRelation](runCtx, workers, disp)

	it := cfiter.New(n)
	for disp.count() < target {
		select {
		case <-ctx.Done():
			return disp.snapshot()
		default:
		}
		if it.Done() {
			logger.Printf(logger.WARN, "cfrac: sieve exhausted a perfect-square expansion before reaching target")
			break
		}
		for i := 0; i < batchSize && disp.count() < target; i++ {
			c := it.Next()
			r := foldResidue(n, c)
			disp.wg.Add(1)
			if !d.Process(sieveCandidate{x: c.P, r: r}) {
				disp.wg.Done()
				return disp.snapshot()
			}
		}
		disp.wg.Wait()
	}
	return disp.snapshot()
}
