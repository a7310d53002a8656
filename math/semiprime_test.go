package math

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

import "testing"

// TestGenerateSemiprimeSeededReproducible reproduces the end-to-end
// scenario: generate_semiprime(20, seed=4711) splits into two 10-digit
// primes whose product round-trips to n, and the same seed reproduces
// the same pair.
func TestGenerateSemiprimeSeededReproducible(t *testing.T) {
	n, p, q := GenerateSemiprime(20, 4711)

	if !p.ProbablyPrime(40) || !q.ProbablyPrime(40) {
		t.Fatalf("factors %v, %v are not both prime", p, q)
	}
	if p.Equals(q) {
		t.Fatalf("factors must be distinct, got %v twice", p)
	}
	if !p.Mul(q).Equals(n) {
		t.Fatalf("p*q = %v, want %v", p.Mul(q), n)
	}
	if len(p.String()) != 10 {
		t.Fatalf("p=%v has %d digits, want 10", p, len(p.String()))
	}
	if len(q.String()) != 10 {
		t.Fatalf("q=%v has %d digits, want 10", q, len(q.String()))
	}

	n2, p2, q2 := GenerateSemiprime(20, 4711)
	if !n.Equals(n2) || !p.Equals(p2) || !q.Equals(q2) {
		t.Fatalf("seed 4711 not reproducible: got (%v,%v,%v) then (%v,%v,%v)", n, p, q, n2, p2, q2)
	}
}

// TestGenerateSemiprimeUnseeded is a basic smoke test for the
// crypto/rand-backed path: the product factors cleanly and the digit
// split is within one of even.
func TestGenerateSemiprimeUnseeded(t *testing.T) {
	n, p, q := GenerateSemiprime(16)

	if !p.ProbablyPrime(40) || !q.ProbablyPrime(40) {
		t.Fatalf("factors %v, %v are not both prime", p, q)
	}
	if p.Equals(q) {
		t.Fatalf("factors must be distinct, got %v twice", p)
	}
	if !p.Mul(q).Equals(n) {
		t.Fatalf("p*q = %v, want %v", p.Mul(q), n)
	}
	dp, dq := len(p.String()), len(q.String())
	if dp+dq != 16 {
		t.Fatalf("digit split %d+%d != 16", dp, dq)
	}
}
