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

// Package math is the arbitrary-precision façade used by the factorization
// engine: a signed Int wrapping math/big, with the modular
// arithmetic, root-extraction and primality primitives the engines share.
package math

import (
	"crypto/rand"
	"math/big"

	gerr "github.com/bfix/intfact/errors"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
	// THREE as number "3"
	THREE = NewInt(3)
	// FOUR as number "4"
	FOUR = NewInt(4)
	// FIVE as number "5"
	FIVE = NewInt(5)
)

// Int is an integer of arbitrary size (the BigNat façade). Modular results
// of methods below always lie in [0, m) for the given modulus m.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a string representation of an integer
func NewIntFromString(s string) *Int {
	v := new(big.Int)
	if err := v.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return &Int{v}
}

// NewIntFromBytes converts a binary array into an unsigned integer.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// NewIntRnd creates a new random value between [0,j[
func NewIntRnd(j *Int) *Int {
	r, err := rand.Int(rand.Reader, j.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// NewIntRndRange returns a random integer value within given range
// (both bounds inclusive).
func NewIntRndRange(lower, upper *Int) *Int {
	return lower.Add(NewIntRnd(upper.Sub(lower).Add(ONE)))
}

// NewIntRndPrime draws a random start value in [0,j[ and returns the
// first probable prime found by stepping up from it by 2; the result
// can exceed j.
func NewIntRndPrime(j *Int) *Int {
	r := NewIntRnd(j)
	if r.Bit(0) == 0 {
		r = r.Add(ONE)
	}
	for {
		if r.ProbablyPrime(128) {
			return r
		}
		r = r.Add(TWO)
	}
}

// Bytes returns a byte array representation of the integer.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String converts an Int to a string representation.
func (i *Int) String() string {
	return i.v.String()
}

// ProbablyPrime checks if an Int is prime. The chances this is wrong
// are less than 2^(-n). Used internally for generation; the engine's
// own Miller-Rabin (numtheory.go) is used for the documented
// fixed-witness / random-round primality test.
func (i *Int) ProbablyPrime(n int) bool {
	return i.v.ProbablyPrime(n)
}

// Add two Ints
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub subtracts two Ints
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul multiplies two Ints
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div divides two Ints (Euclidean division, which equals truncating
// division for the nonnegative operands callers pass).
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// DivMod returns the quotient and modulus of two Ints.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	return &Int{v: new(big.Int).Div(i.v, j.v)}, &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// Mod returns the modulus of two Ints, always in [0, j).
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// ModSign returns the modulus of two Ints folded into the minimum absolute
// residue (-j/2, j/2].
func (i *Int) ModSign(j *Int) *Int {
	k := i.Mod(j)
	if k.Mul(TWO).Cmp(j) > 0 {
		k = k.Sub(j)
	}
	return k
}

// BitLen returns the number of bits in an Int.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns the sign of an Int.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// ModInverse returns the multiplicative inverse of i in the ring Z/jZ.
// Returns ErrNoInverse if gcd(i,j) != 1.
func (i *Int) ModInverse(j *Int) (*Int, error) {
	r := new(big.Int).ModInverse(i.v, j.v)
	if r == nil {
		return nil, gerr.New(ErrNoInverse, "ModInverse(%s,%s)", i, j)
	}
	return &Int{v: r}, nil
}

// Cmp returns the comparison between two Ints.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals checks if two Ints are equal.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD returns the greatest common divisor of two Ints.
func (i *Int) GCD(j *Int) *Int {
	a, b := new(big.Int).Abs(i.v), new(big.Int).Abs(j.v)
	return &Int{v: new(big.Int).GCD(nil, nil, a, b)}
}

// LCM returns the least common multiple of two Ints.
func (i *Int) LCM(j *Int) *Int {
	g := i.GCD(j)
	if g.Equals(ZERO) {
		return ZERO
	}
	return i.Mul(j).Div(g).Abs()
}

// Pow raises an Int to power n.
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// ModPow returns the modular exponentiation of an Int as (i^n mod m). The
// default implementation defers to math/big's Exp; SlidingWindowModPow
// (swmodpow.go) is the explicit, tunable-width variant spec'd for exponents of
// bit length >= 256.
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// Bit returns the bit value of an Int at a given position.
func (i *Int) Bit(n int) uint {
	return i.v.Bit(n)
}

// Rsh returns the right shifted value of an Int.
func (i *Int) Rsh(n uint) *Int {
	return &Int{v: new(big.Int).Rsh(i.v, n)}
}

// Lsh returns the left shifted value of an Int.
func (i *Int) Lsh(n uint) *Int {
	return &Int{v: new(big.Int).Lsh(i.v, n)}
}

// Abs returns the unsigned value of an Int.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Neg flips the sign of an Int.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// Int64 returns the int64 value of an Int.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// IsEven reports whether the Int is divisible by two.
func (i *Int) IsEven() bool {
	return i.v.Bit(0) == 0
}
