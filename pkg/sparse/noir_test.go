package sparse

import (
	"testing"

	"github.com/consensys/sparse-array/pkg/field"
	"github.com/stretchr/testify/assert"
)

func TestNoirRepresentation(t *testing.T) {
	keys := []field.Element{
		fe("0"),
		fe("99999"),
		fe("7"),
		fe("4294967295"), // 0xffffffff
	}
	example := Create(keys, []uint32{123, 101112, 789, 456},
		fe("4294967296")) // 0x100000000
	//
	expected := "let table: SparseArray<4, Field> = SparseArray {\n" +
		"    keys: [0x00000000, 0x00000000, 0x00000007, 0x0001869f, 0xffffffff, 0xffffffff],\n" +
		"    values: [0x00000000, 0x0000007b, 0x0000007b, 0x00000315, 0x00018af8, 0x000001c8, 0x000001c8],\n" +
		"    maximum: 0xffffffff\n" +
		"};"
	//
	assert.Equal(t, expected, example.ToNoirString("", ""))
}

func TestNoirRepresentationNamed(t *testing.T) {
	keys := []field.Element{fe("1"), fe("5")}
	example := Create(keys, []uint32{10, 20}, fe("256"))
	//
	expected := "let OPCODES: SparseArray<2, u32> = SparseArray {\n" +
		"    keys: [0x00000000, 0x00000001, 0x00000005, 0x000000ff],\n" +
		"    values: [0x00000000, 0x00000000, 0x0000000a, 0x00000014, 0x00000000],\n" +
		"    maximum: 0x000000ff\n" +
		"};"
	//
	assert.Equal(t, expected, example.ToNoirString("OPCODES", "u32"))
}

func TestNoirFieldElementValues(t *testing.T) {
	keys := []field.Element{fe("3")}
	values := []field.Element{fe("9")}
	example := Create(keys, values, fe("16"))
	//
	expected := "let table: SparseArray<1, Field> = SparseArray {\n" +
		"    keys: [0x00000000, 0x00000003, 0x0000000f],\n" +
		"    values: [0x00000000, 0x00000000, 0x00000009, 0x00000000],\n" +
		"    maximum: 0x0000000f\n" +
		"};"
	//
	assert.Equal(t, expected, example.ToNoirString("", ""))
}

func TestNoirConversionFailure(t *testing.T) {
	keys := []field.Element{fe("1")}
	example := Create(keys, []uint64{4294967296}, fe("16"))
	//
	assert.PanicsWithValue(t, "value 4294967296 is not representable as a u32", func() {
		example.ToNoirString("", "")
	})
}

func TestNoirConversionFailureNegative(t *testing.T) {
	keys := []field.Element{fe("1")}
	example := Create(keys, []int{-1}, fe("16"))
	//
	assert.PanicsWithValue(t, "value -1 is not representable as a u32", func() {
		example.ToNoirString("", "")
	})
}

func TestAsUint32(t *testing.T) {
	assert.Equal(t, uint32(7), asUint32(uint8(7)))
	assert.Equal(t, uint32(7), asUint32(int64(7)))
	assert.Equal(t, uint32(4294967295), asUint32(uint64(4294967295)))
	assert.Equal(t, uint32(99999), asUint32(field.Uint64(99999)))
	//
	assert.Panics(t, func() { asUint32("not a number") })
	assert.Panics(t, func() { asUint32(field.FromBigInt(field.Modulus())) })
}
