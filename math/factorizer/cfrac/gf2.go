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

	"golang.org/x/sync/errgroup"
)

// BitVector is a bit-packed row over GF(2).
type BitVector struct {
	bits []uint64
	n    int
}

// NewBitVector allocates a zeroed vector of n bits.
func NewBitVector(n int) *BitVector {
	return &BitVector{bits: make([]uint64, (n+63)/64), n: n}
}

// Flip toggles bit i.
func (b *BitVector) Flip(i int) {
	b.bits[i/64] ^= 1 << uint(i%64)
}

// Get reports whether bit i is set.
func (b *BitVector) Get(i int) bool {
	return b.bits[i/64]&(1<<uint(i%64)) != 0
}

// Xor destructively XORs other into b.
func (b *BitVector) Xor(other *BitVector) {
	for i := range b.bits {
		b.bits[i] ^= other.bits[i]
	}
}

// IsZero reports whether every bit is clear.
func (b *BitVector) IsZero() bool {
	for _, w := range b.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *BitVector) Clone() *BitVector {
	out := &BitVector{bits: make([]uint64, len(b.bits)), n: b.n}
	copy(out.bits, b.bits)
	return out
}

// GF2Matrix performs Gauss-Jordan elimination over GF(2), tracking for
// every row (via History) which original rows were XORed together to
// reach it. A row whose data bits are all zero after elimination
// identifies a dependency: History tells the caller which relations
// to combine into a congruence of squares.
type GF2Matrix struct {
	rows    []*BitVector
	history []*BitVector
	cols    int
}

// NewGF2Matrix builds a matrix from rows, one per relation, each
// starting with a singleton history (its own index).
func NewGF2Matrix(rows []*BitVector, cols int) *GF2Matrix {
	m := &GF2Matrix{rows: make([]*BitVector, len(rows)), history: make([]*BitVector, len(rows)), cols: cols}
	for i, r := range rows {
		m.rows[i] = r.Clone()
		h := NewBitVector(len(rows))
		h.Flip(i)
		m.history[i] = h
	}
	return m
}

// Eliminate runs the column sweep: for each column, a pivot row is
// chosen among the rows at or below the current pivot index that still
// have a 1 in that column; every other row with a 1 in that column is
// XOR-eliminated (data and history together). These eliminations, in
// rows above and below the pivot alike, are independent writes
// (row-disjoint), so that part of the sweep runs across workers via
// errgroup; the pivot search and swap remain sequential.
func (m *GF2Matrix) Eliminate(ctx context.Context, workers int) error {
	if workers < 1 {
		workers = 1
	}
	pivotRow := 0
	for col := 0; col < m.cols && pivotRow < len(m.rows); col++ {
		pivot := -1
		for r := pivotRow; r < len(m.rows); r++ {
			if m.rows[r].Get(col) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.rows[pivotRow], m.rows[pivot] = m.rows[pivot], m.rows[pivotRow]
		m.history[pivotRow], m.history[pivot] = m.history[pivot], m.history[pivotRow]

		pivotData := m.rows[pivotRow]
		pivotHist := m.history[pivotRow]
		fixed := pivotRow

		g, gctx := errgroup.WithContext(ctx)
		total := len(m.rows)
		chunk := (total + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > total {
				hi = total
			}
			if lo >= hi {
				continue
			}
			g.Go(func() error {
				for r := lo; r < hi; r++ {
					if r == fixed {
						continue
					}
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					if m.rows[r].Get(col) {
						m.rows[r].Xor(pivotData)
						m.history[r].Xor(pivotHist)
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		pivotRow++
	}
	return nil
}

// Dependencies returns the history vectors of every row whose data bits
// are all zero: each one names a subset of the original relations whose
// exponent-parity vectors XOR to zero, a candidate congruence of
// squares.
func (m *GF2Matrix) Dependencies() []*BitVector {
	var out []*BitVector
	for i, row := range m.rows {
		if row.IsZero() {
			out = append(out, m.history[i])
		}
	}
	return out
}
