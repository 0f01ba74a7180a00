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
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/sparse-array/pkg/field"
)

// SortResult pairs the ascending-sorted copy of an input sequence with the
// shuffle indices mapping every original position to the sorted position now
// holding its value.
type SortResult struct {
	// Sorted holds the input elements in ascending order.
	Sorted []field.Element
	// Indices maps each original position i to the sorted position
	// Indices[i] holding the same value.  Under duplicate inputs, each
	// sorted position is claimed exactly once.
	Indices []uint
}

// Sort sorts a sequence of field elements into ascending order and recovers
// the shuffle indices relating original and sorted positions.  The input is
// not modified.  Duplicates are permitted; each original occurrence claims the
// first sorted position holding an equal value which has not already been
// claimed.  Hence, the tie-break among duplicates is determined by the sorted
// layout and, whilst implementation-defined, is deterministic for any given
// input.
//
// An internal defect in either the sort or the reconciliation (unsorted
// output, unclaimable position) is a bug in this package and results in a
// panic, never a silently incorrect result.
func Sort(input []field.Element) SortResult {
	sorted := make([]field.Element, len(input))
	copy(sorted, input)
	//
	quicksort(sorted)
	// Reconcile original positions against the sorted layout
	indices := shuffleIndices(input, sorted)
	// Sanity check ascending order actually holds
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1].Cmp(sorted[i]) < 0 {
			panic("Array not properly sorted")
		}
	}
	//
	return SortResult{Sorted: sorted, Indices: indices}
}

// Determine, for each position in lhs, the first unclaimed position in rhs
// holding an equal value.  This yields a one-to-one correspondence whenever
// rhs is a permutation of lhs, duplicates included.
func shuffleIndices(lhs []field.Element, rhs []field.Element) []uint {
	var (
		indices = make([]uint, len(lhs))
		claimed = bitset.New(uint(len(rhs)))
	)
	//
	for i := range lhs {
		found := false
		//
		for j := range rhs {
			if !claimed.Test(uint(j)) && lhs[i].Equal(rhs[j]) {
				indices[i] = uint(j)
				claimed.Set(uint(j))
				found = true
				//
				break
			}
		}
		//
		if !found {
			panic("Arrays do not contain equivalent values")
		}
	}
	//
	return indices
}

// In-place partition-exchange sort.  Deliberately not slices.SortFunc: the
// duplicate-key tie-break observable through the shuffle indices depends on
// the exact (unstable) layout this sort produces, which is kept fixed.
func quicksort(arr []field.Element) {
	if len(arr) > 1 {
		quicksortRange(arr, 0, len(arr)-1)
	}
}

func quicksortRange(arr []field.Element, low int, high int) {
	if low < high {
		pivot := partition(arr, low, high)
		quicksortRange(arr, low, pivot-1)
		quicksortRange(arr, pivot+1, high)
	}
}

// Lomuto partition using the last element as pivot.
func partition(arr []field.Element, low int, high int) int {
	var (
		pivot = high
		i     = low
	)
	//
	for j := low; j < high; j++ {
		if arr[j].Cmp(arr[pivot]) < 0 {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	//
	arr[i], arr[pivot] = arr[pivot], arr[i]
	//
	return i
}
