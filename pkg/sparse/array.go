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

// Package sparse constructs immutable, binary-searchable lookup tables over a
// sparse key space drawn from the BN254 base field, for embedding as constant
// data in Noir circuits.  A table is built once from (keys, values, size),
// answers point queries in O(log n) with a shared default value covering all
// unlisted indices, and can render itself as a Noir source literal.
package sparse

import (
	"github.com/consensys/sparse-array/pkg/field"
)

// SparseArray is an immutable mapping from field-element keys onto values of
// type T.  Internally, it stores the distinct keys in ascending order bounded
// by two sentinels (a zero floor and a maximum ceiling), so that a binary
// search resolves any index in the domain [0, maximum]; indices with no
// explicit entry (holes) and indices above the maximum resolve to the zero
// value of T.  Once constructed, a SparseArray is never mutated and is safe
// for concurrent readers.
type SparseArray[T any] struct {
	// Sorted keys, bounded below by 0 and above by maximum.  Length is the
	// number of supplied keys plus two.
	keys []field.Element
	// Values aligned such that values[i+1] corresponds to keys[i], with
	// values[0] holding the default returned for holes and out-of-range
	// indices, and a trailing slot mirroring the maximum sentinel.  Length
	// is the number of supplied keys plus three.
	values []T
	// Upper bound (inclusive) of the valid index domain.
	maximum field.Element
}

// Create constructs a SparseArray from raw keys, positionally aligned values
// and the (exclusive) size of the index domain.  The inputs are presumed
// valid: construction panics if keys and values differ in length, if any key
// or the implied maximum (size - 1) reaches the field modulus, or if some key
// exceeds the maximum.  The input slices are not retained.
func Create[T any](keys []field.Element, values []T, size field.Element) *SparseArray[T] {
	if len(keys) != len(values) {
		panic("Key count does not match value count")
	}
	//
	var (
		n       = len(keys)
		maximum = size.Sub(field.One())
		result  = &SparseArray[T]{
			keys:    make([]field.Element, n+2),
			values:  make([]T, n+3),
			maximum: maximum,
		}
	)
	// Sort the keys
	sorted := Sort(keys)
	// Insert start and end sentinels
	result.keys[0] = field.Zero()
	copy(result.keys[1:], sorted.Sorted)
	result.keys[n+1] = maximum
	// Re-associate each value with its (now sorted) key
	for i := 0; i < n; i++ {
		result.values[sorted.Indices[i]+2] = values[i]
	}
	// The zero sentinel acts as a real data point whenever the smallest
	// key already touches the domain floor; likewise the maximum sentinel
	// at the ceiling.  Otherwise both sentinel slots keep the default.
	if n > 0 && sorted.Sorted[0].IsZero() {
		result.values[1] = result.values[2]
	}
	//
	if n > 0 && sorted.Sorted[n-1].Equal(maximum) {
		result.values[n+2] = result.values[n+1]
	}
	// Boundary checks
	if n > 0 && !sorted.Sorted[0].InField() {
		panic("Key exceeds field modulus")
	}
	//
	if !maximum.InField() {
		panic("Maximum exceeds field modulus")
	}
	//
	if n > 0 && maximum.Cmp(sorted.Sorted[n-1]) < 0 {
		panic("Key exceeds maximum")
	}
	//
	for i := 1; i < n; i++ {
		if !sorted.Sorted[i].InField() {
			panic("Key exceeds field modulus")
		}
	}
	//
	return result
}

// Get returns the value associated with a given index, or the default (zero)
// value of T when the index has no explicit entry or lies above the maximum.
// Get is total over the full index domain, never mutates the array, and runs
// in O(log n).
func (p *SparseArray[T]) Get(index field.Element) T {
	// Indices beyond the maximum resolve to the default value
	if index.Cmp(p.maximum) > 0 {
		return p.values[0]
	}
	//
	var (
		left  = 0
		right = len(p.keys) - 1
	)
	// Narrow [left, right) whilst preserving keys[left] <= index
	for left+1 < right {
		mid := (left + right) / 2
		//
		if p.keys[mid].Cmp(index) <= 0 {
			left = mid
		} else {
			right = mid
		}
	}
	// Exact match against the left boundary, otherwise a hole
	if p.keys[left].Equal(index) {
		return p.values[left+1]
	}
	//
	return p.values[0]
}

// GetMaximum returns the upper bound (inclusive) of this array's index domain.
func (p *SparseArray[T]) GetMaximum() field.Element {
	return p.maximum
}

// Len returns the number of original (pre-sentinel) keys in this array.
func (p *SparseArray[T]) Len() int {
	return len(p.keys) - 2
}
