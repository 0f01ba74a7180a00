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
package sparse

import (
	"github.com/consensys/sparse-array/pkg/field"
)

// Unsigned captures the value types accepted by CreatePacked, which treats
// values numerically during the dense-to-sparse reduction.  Only widths able
// to hold the scaled value*256 synthesized by the dual encoding are admitted;
// byte-width values would silently wrap to zero under the scaling.
type Unsigned interface {
	~uint | ~uint32 | ~uint64
}

// CreatePacked constructs a SparseArray from a fully dense, index-addressed
// table in which a zero entry means "absent".  Every non-zero (index, value)
// pair becomes a direct sparse entry.  In addition, for byte-range indices
// (index < 256) the value doubles as a repeat multiplier: for every j below
// the largest value present in the table, a widened key j*256 + index is
// synthesized carrying value*256.  Synthesized entries accumulate additively
// into whatever entry already exists at their key, including the direct entry
// they collide with at j = 0.  The reduced key set is then handed to Create
// with the given domain size.
//
// This reduction serves one specific upstream encoding of byte-indexed opcode
// tables; its accumulation semantics are fixed by that consumer's contract.
func CreatePacked[T Unsigned](table []T, maxSize uint32) *SparseArray[T] {
	var (
		keys   []field.Element
		values []T
		// Position of each widened key within keys/values
		positions = make(map[uint64]int)
		// Largest value present anywhere in the dense table
		maxValue T
	)
	// Accumulate a value into the entry for a given key, inserting a fresh
	// entry (in first-seen order) when none exists yet.
	accumulate := func(key uint64, value T) {
		if at, ok := positions[key]; ok {
			values[at] += value
		} else {
			positions[key] = len(keys)
			keys = append(keys, field.Uint64(key))
			values = append(values, value)
		}
	}
	// Direct entries for every non-zero slot
	for i, v := range table {
		if v != 0 {
			accumulate(uint64(i), v)
		}
		//
		if v > maxValue {
			maxValue = v
		}
	}
	// Dual encoding for byte-range indices
	for i, v := range table {
		if i >= 256 {
			break
		} else if v == 0 {
			continue
		}
		//
		for j := uint64(0); j < uint64(maxValue); j++ {
			accumulate(j*256+uint64(i), v*256)
		}
	}
	//
	return Create(keys, values, field.Uint64(uint64(maxSize)))
}
