//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2024 Bernd Fix  >Y<
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

package concurrent

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/bfix/intfact/math"
)

// seedDispatchable hands out candidate Pollard rho seeds and keeps the
// smallest nontrivial gcd(x-y, n) found so far, where x, y are two
// Floyd steps of x^2+1 mod n starting from the seed. This mirrors what
// PollardRho's inner retry loop does, spread across a worker pool
// instead of one goroutine trying seeds in sequence.
type seedDispatchable struct {
	n    *math.Int
	busy atomic.Int32
}

func (d *seedDispatchable) trial(seed int64) *math.Int {
	x := math.NewInt(seed)
	f := func(v *math.Int) *math.Int { return v.Mul(v).Add(math.ONE).Mod(d.n) }
	x = f(x)
	y := f(f(math.NewInt(seed)))
	return d.n.GCD(x.Sub(y).Abs())
}

func (d *seedDispatchable) Worker(ctx context.Context, _ int, taskCh chan int64, resCh chan int64) {
	for {
		select {
		case <-ctx.Done():
			return
		case seed := <-taskCh:
			d.busy.Add(1)
			if g := d.trial(seed); g.Cmp(math.ONE) > 0 && g.Cmp(d.n) < 0 {
				resCh <- seed
			}
			d.busy.Add(-1)
		}
	}
}

func (d *seedDispatchable) Eval(seed int64) bool {
	g := d.trial(seed)
	return g.Cmp(math.ONE) > 0 && g.Cmp(d.n) < 0
}

func (d *seedDispatchable) Busy() int {
	return int(d.busy.Load())
}

// TestWorkerFindsFactoringSeed exercises the dispatcher with a
// factorization-shaped workload: feed it a stream of candidate seeds
// and confirm it terminates once a seed yields a nontrivial factor.
func TestWorkerFindsFactoringSeed(t *testing.T) {
	n := math.NewInt(8051) // 83 * 97

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher[int64, int64](ctx, 8, &seedDispatchable{n: n})

	var i int64
	for i = 2; ; i++ {
		if !d.Process(i) {
			break
		}
		if i > 100000 {
			t.Fatal("dispatcher never reported a factoring seed")
		}
	}
}
