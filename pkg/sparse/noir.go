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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/consensys/sparse-array/pkg/field"
)

// Default identifiers used by ToNoirString when none are supplied.
const (
	defaultTableName   = "table"
	defaultGenericName = "Field"
)

// ToNoirString renders this array as a Noir let-binding declaring an
// equivalent SparseArray constant.  The table name defaults to "table" and the
// generic (value type) name to "Field" when left empty.  Every key and value
// is rendered as a lowercase, 0x-prefixed hexadecimal literal zero-padded to
// eight digits; values must be representable as unsigned 32-bit integers and
// rendering panics otherwise.  The layout below is parsed byte-for-byte by
// downstream tooling and must not be altered:
//
//	let table: SparseArray<4, Field> = SparseArray {
//	    keys: [0x00000000, ...],
//	    values: [0x00000000, ...],
//	    maximum: 0xffffffff
//	};
func (p *SparseArray[T]) ToNoirString(tableName string, genericName string) string {
	if tableName == "" {
		tableName = defaultTableName
	}
	//
	if genericName == "" {
		genericName = defaultGenericName
	}
	//
	keys := make([]string, len(p.keys))
	for i, k := range p.keys {
		keys[i] = k.Hex()
	}
	//
	values := make([]string, len(p.values))
	for i, v := range p.values {
		values[i] = fmt.Sprintf("0x%08x", asUint32(v))
	}
	//
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "let %s: SparseArray<%d, %s> = SparseArray {\n", tableName, p.Len(), genericName)
	fmt.Fprintf(&builder, "    keys: [%s],\n", strings.Join(keys, ", "))
	fmt.Fprintf(&builder, "    values: [%s],\n", strings.Join(values, ", "))
	fmt.Fprintf(&builder, "    maximum: %s\n};", p.maximum.Hex())
	//
	return builder.String()
}

// Convert an arbitrary table value into a uint32, panicking if it cannot be
// represented in 32 bits.  Signed and unsigned integer kinds are accepted
// directly; field elements and anything printable as a decimal integer are
// parsed through their string form, mirroring how values reach the emitted
// literal.
func asUint32(value any) uint32 {
	switch v := value.(type) {
	case uint8:
		return uint32(v)
	case uint16:
		return uint32(v)
	case uint32:
		return v
	case uint64:
		return rangedUint32(v)
	case uint:
		return rangedUint32(uint64(v))
	case int8:
		return signedUint32(int64(v))
	case int16:
		return signedUint32(int64(v))
	case int32:
		return signedUint32(int64(v))
	case int64:
		return signedUint32(v)
	case int:
		return signedUint32(int64(v))
	case field.Element:
		if !v.IsUint64() {
			panic(conversionFailure(value))
		}
		//
		return rangedUint32(v.Uint64())
	case fmt.Stringer:
		parsed, err := strconv.ParseUint(v.String(), 10, 32)
		if err != nil {
			panic(conversionFailure(value))
		}
		//
		return uint32(parsed)
	default:
		panic(conversionFailure(value))
	}
}

func rangedUint32(value uint64) uint32 {
	if value > math.MaxUint32 {
		panic(conversionFailure(value))
	}
	//
	return uint32(value)
}

func signedUint32(value int64) uint32 {
	if value < 0 || value > math.MaxUint32 {
		panic(conversionFailure(value))
	}
	//
	return uint32(value)
}

func conversionFailure(value any) string {
	return fmt.Sprintf("value %v is not representable as a u32", value)
}
