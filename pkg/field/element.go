// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// Element is an arbitrary-precision non-negative integer used for keys and
// bounds throughout this library.  Valid elements are strictly less than the
// BN254 base-field modulus; however, an Element can hold any non-negative
// value so that construction-time bound checks are able to observe (and
// reject) out-of-bounds inputs.  Arithmetic on elements is classical
// big-integer arithmetic and is never reduced modulo the field.
type Element struct {
	val big.Int
}

// Modulus returns the BN254 base-field modulus bounding all valid elements.
func Modulus() *big.Int {
	return fp.Modulus()
}

// Zero constructs an element representing 0.
func Zero() Element {
	return Element{}
}

// One constructs an element representing 1.
func One() Element {
	return Uint64(1)
}

// Uint64 constructs an element from a given uint64.
func Uint64(val uint64) Element {
	var element Element
	//
	element.val.SetUint64(val)
	//
	return element
}

// FromBigInt constructs an element from a given big.Int.  The value is copied,
// hence subsequent mutation of val does not affect the returned element.
func FromBigInt(val *big.Int) Element {
	var element Element
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	element.val.Set(val)
	//
	return element
}

// FromString parses an element from a decimal string, or from a hexadecimal
// string when prefixed with "0x".
func FromString(str string) (Element, error) {
	var (
		element Element
		base    = 10
		digits  = str
	)
	//
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		base = 16
		digits = str[2:]
	}
	//
	if _, ok := element.val.SetString(digits, base); !ok {
		return Zero(), fmt.Errorf("malformed field element %q", str)
	} else if element.val.Sign() < 0 {
		return Zero(), fmt.Errorf("negative field element %q", str)
	}
	//
	return element, nil
}

// Add computes x + y.
func (e Element) Add(other Element) Element {
	var result Element
	//
	result.val.Add(&e.val, &other.val)
	//
	return result
}

// Sub computes x - y, panicking if the result would be negative (elements are
// unsigned).
func (e Element) Sub(other Element) Element {
	var result Element
	//
	result.val.Sub(&e.val, &other.val)
	//
	if result.val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return result
}

// Mul computes x * y.
func (e Element) Mul(other Element) Element {
	var result Element
	//
	result.val.Mul(&e.val, &other.val)
	//
	return result
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (e Element) Cmp(other Element) int {
	return e.val.Cmp(&other.val)
}

// Equal checks whether this element represents the same value as another.
func (e Element) Equal(other Element) bool {
	return e.val.Cmp(&other.val) == 0
}

// IsZero checks whether this element is zero (or not).
func (e Element) IsZero() bool {
	return e.val.Sign() == 0
}

// InField checks whether this element is strictly below the field modulus.
func (e Element) InField() bool {
	return e.val.Cmp(Modulus()) < 0
}

// IsUint64 checks whether this element fits within a uint64.
func (e Element) IsUint64() bool {
	return e.val.IsUint64()
}

// Uint64 returns the value of this element as a uint64, assuming it fits.
func (e Element) Uint64() uint64 {
	return e.val.Uint64()
}

// BigInt returns the value of this element as a (fresh) big.Int.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(&e.val)
}

// Hex returns this element as a lowercase, 0x-prefixed hexadecimal literal
// zero-padded to (at least) eight digits.
func (e Element) Hex() string {
	return fmt.Sprintf("0x%08x", &e.val)
}

func (e Element) String() string {
	return e.val.String()
}
