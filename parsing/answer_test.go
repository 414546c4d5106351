package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// PUBLIC METHODS TESTS
func TestParseSign(t *testing.T) {
	for in, want := range map[string]int{"1": 1, "+1": 1, " -1 ": -1} {
		got, err := ParseSign(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseSignBit(t *testing.T) {
	got, err := ParseSignBit(" 1")
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), got)
}

func TestParseDigits(t *testing.T) {
	d, err := ParseDigit("7")
	assert.NoError(t, err)
	assert.Equal(t, 7, d)

	m, err := ParseDigits(" 500000 ", 6)
	assert.NoError(t, err)
	assert.Equal(t, "500000", m)
}

func TestParseDecimalExponent(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "+3": 3, "-45": -45} {
		got, err := ParseDecimalExponent(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseBiasedExponent(t *testing.T) {
	for in, want := range map[string]uint8{"127": 127, "10000000": 128, "00000010": 2, "0": 0, "255": 255} {
		got, err := ParseBiasedExponent(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBits(t *testing.T) {
	v, err := ParseBits("101000", 6)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0b101000), v)

	v, err = ParseBits("11111111111111111111111", 23)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x7FFFFF), v)
}

// NEGATIVE TESTS
func TestNegativeMalformed(t *testing.T) {
	_, err := ParseSign("0")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseSignBit("-1")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseDigit("10")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseDigits("5000", 6)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseDigits("50a000", 6)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseDecimalExponent("e3")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseBiasedExponent("256")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseBiasedExponent("")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseBits("10201", 5)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseBits("1", 6)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNegativeBitWidth(t *testing.T) {
	_, err := ParseBits("", 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
}
