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

import "errors"

// Sentinel errors for the taxonomy of this package. FactorizationExhausted
// is deliberately absent: the engines represent "no factor found" with a
// nil/zero return, never with an error (see factorizer package).
var (
	// ErrInvalidInput flags n < 2, an even modulus where an odd one is
	// required (Montgomery), a composite modulus where a prime one is
	// required (Tonelli-Shanks, Legendre), a non-positive root degree, or
	// a negative radicand with an even root degree.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoInverse flags a modular inverse request where gcd(a,m) != 1.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrNoSquareRoot flags a Tonelli-Shanks call on a quadratic
	// non-residue.
	ErrNoSquareRoot = errors.New("no square root mod p")

	// ErrCapacityExceeded flags a sieve bound exceeding a platform-
	// limited array length.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
