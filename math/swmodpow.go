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

// SlidingWindowModPow computes a^e mod m using a sliding window of width
// w in [3,8]: precompute a^1 .. a^(2^w-1) mod m, scan e from its most
// significant bit, aggregate windows that begin with a 1 bit, span at
// most w bits and end on a 1 bit (zeros inside a window are kept), and
// square through zero runs between windows.
// Intended for exponents of bit length >= 256 (spec.md §4.8); for smaller
// exponents plain ModPow is no slower and simpler.
func (i *Int) SlidingWindowModPow(e, m *Int, w int) *Int {
	if w < 3 {
		w = 3
	}
	if w > 8 {
		w = 8
	}
	base := i.Mod(m)

	// odd powers a^1, a^3, ..., a^(2^w-1)
	numOdd := 1 << (w - 1)
	odd := make([]*Int, numOdd)
	odd[0] = base
	sq := base.Mul(base).Mod(m)
	for j := 1; j < numOdd; j++ {
		odd[j] = odd[j-1].Mul(sq).Mod(m)
	}

	bits := e.BitLen()
	if bits == 0 {
		return ONE.Mod(m)
	}
	result := ONE.Mod(m)
	pos := bits - 1
	for pos >= 0 {
		if e.Bit(pos) == 0 {
			result = result.Mul(result).Mod(m)
			pos--
			continue
		}
		// extend the window right to width w or the next 0 bit
		l := pos - w + 1
		if l < 0 {
			l = 0
		}
		for e.Bit(l) == 0 {
			l++
		}
		winLen := pos - l + 1
		for k := 0; k < winLen; k++ {
			result = result.Mul(result).Mod(m)
		}
		val := 0
		for b := pos; b >= l; b-- {
			val = val<<1 | int(e.Bit(b))
		}
		result = result.Mul(odd[val/2]).Mod(m)
		pos = l - 1
	}
	return result
}
