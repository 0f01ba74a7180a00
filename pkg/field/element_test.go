package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulus(t *testing.T) {
	expected, ok := new(big.Int).SetString(
		"21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	require.True(t, ok)
	//
	assert.Equal(t, 0, Modulus().Cmp(expected))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"0", 0},
		{"99999", 99999},
		{"0x1869f", 99999},
		{"0xFFFFFFFF", 4294967295},
		{"4294967295", 4294967295},
	}
	//
	for _, tt := range tests {
		element, err := FromString(tt.input)
		require.NoError(t, err, "parsing %q", tt.input)
		assert.True(t, element.Equal(Uint64(tt.expected)), "parsing %q", tt.input)
	}
}

func TestFromStringMalformed(t *testing.T) {
	for _, input := range []string{"", "0x", "abc", "-1", "12q3"} {
		_, err := FromString(input)
		assert.Error(t, err, "parsing %q", input)
	}
}

func TestFromBigIntNegative(t *testing.T) {
	assert.PanicsWithValue(t, "negative value encountered", func() {
		FromBigInt(big.NewInt(-1))
	})
}

func TestArithmetic(t *testing.T) {
	a := Uint64(100)
	b := Uint64(7)
	//
	assert.True(t, a.Add(b).Equal(Uint64(107)))
	assert.True(t, a.Sub(b).Equal(Uint64(93)))
	assert.True(t, a.Mul(b).Equal(Uint64(700)))
	// Arithmetic is classical, not modular
	sum := FromBigInt(Modulus()).Add(One())
	assert.Equal(t, 0, sum.BigInt().Cmp(new(big.Int).Add(Modulus(), big.NewInt(1))))
}

func TestSubUnderflow(t *testing.T) {
	assert.PanicsWithValue(t, "negative value encountered", func() {
		Uint64(3).Sub(Uint64(5))
	})
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, Uint64(1).Cmp(Uint64(2)))
	assert.Equal(t, 0, Uint64(2).Cmp(Uint64(2)))
	assert.Equal(t, 1, Uint64(3).Cmp(Uint64(2)))
	assert.True(t, Zero().IsZero())
	assert.False(t, One().IsZero())
}

func TestInField(t *testing.T) {
	modulus := Modulus()
	//
	assert.True(t, Zero().InField())
	assert.True(t, FromBigInt(new(big.Int).Sub(modulus, big.NewInt(1))).InField())
	assert.False(t, FromBigInt(modulus).InField())
	assert.False(t, FromBigInt(new(big.Int).Add(modulus, big.NewInt(1))).InField())
}

func TestHex(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0x00000000"},
		{7, "0x00000007"},
		{99999, "0x0001869f"},
		{4294967295, "0xffffffff"},
		// Values above 32 bits simply widen beyond eight digits
		{4294967296, "0x100000000"},
	}
	//
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Uint64(tt.input).Hex())
	}
}

func TestUint64Accessors(t *testing.T) {
	assert.True(t, Uint64(42).IsUint64())
	assert.Equal(t, uint64(42), Uint64(42).Uint64())
	assert.False(t, FromBigInt(Modulus()).IsUint64())
}
