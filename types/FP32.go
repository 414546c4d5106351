package types

import (
	"fmt"

	"github.com/archquiz/go-fp32/util"
)

// Layout of an IEEE-754 single-precision word
const (
	SignBits     = 1
	ExponentBits = 8
	FractionBits = 23

	SignShift     = ExponentBits + FractionBits
	ExponentShift = FractionBits

	SignMask     = 1<<SignBits - 1
	ExponentMask = 1<<ExponentBits - 1
	FractionMask = 1<<FractionBits - 1

	ExponentBias = 127
	// MaxExponent is the biased exponent reserved for infinities and NaN
	MaxExponent = ExponentMask
)

// BitTriple holds the three fields of a single-precision word
type BitTriple struct {
	// Sign is 0 for positive and 1 for negative values
	Sign uint8
	// Exponent is the biased exponent, true exponent = Exponent - 127 for normal values
	Exponent uint8
	// Fraction holds the 23 bits following the implicit leading 1
	Fraction uint32
}

// Masked returns a copy of t where every field is truncated to its bit width
func (t BitTriple) Masked() BitTriple {
	return BitTriple{
		Sign:     util.Mask(t.Sign, SignBits),
		Exponent: t.Exponent,
		Fraction: util.Mask(t.Fraction, FractionBits),
	}
}

// Valid reports whether every field already fits its bit width
func (t BitTriple) Valid() bool {
	return t == t.Masked()
}

// IsNormal reports whether the exponent encodes a normalized value
func (t BitTriple) IsNormal() bool {
	return t.Exponent != 0 && t.Exponent != MaxExponent
}

// UnbiasedExponent returns the power of two applied to the significand.
// Subnormals use the minimum normal exponent.
func (t BitTriple) UnbiasedExponent() int {
	if t.Exponent == 0 {
		return 1 - ExponentBias
	}
	return int(t.Exponent) - ExponentBias
}

func (t BitTriple) String() string {
	m := t.Masked()
	return fmt.Sprintf("S=%d E=%08b F=%023b", m.Sign, m.Exponent, m.Fraction)
}
