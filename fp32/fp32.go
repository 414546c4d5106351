package fp32

import (
	"fmt"
	"math"

	"github.com/archquiz/go-fp32/types"
	"github.com/archquiz/go-fp32/util"
)

// NewBitTriple builds a triple from wider integers, masking every field to its width
func NewBitTriple(sign, exponent, fraction uint64) types.BitTriple {
	return types.BitTriple{
		Sign:     uint8(util.Mask(sign, types.SignBits)),
		Exponent: uint8(util.Mask(exponent, types.ExponentBits)),
		Fraction: uint32(util.Mask(fraction, types.FractionBits)),
	}
}

// Word packs t into the 32-bit single-precision layout: sign in bit 31,
// exponent in bits 30-23, fraction in bits 22-0
func Word(t types.BitTriple) uint32 {
	m := t.Masked()
	return uint32(m.Sign)<<types.SignShift | uint32(m.Exponent)<<types.ExponentShift | m.Fraction
}

// FromWord splits a 32-bit word into its sign, exponent and fraction fields
func FromWord(w uint32) types.BitTriple {
	return types.BitTriple{
		Sign:     uint8(w >> types.SignShift & types.SignMask),
		Exponent: uint8(w >> types.ExponentShift & types.ExponentMask),
		Fraction: w & types.FractionMask,
	}
}

// Encode returns the float32 whose bits are given by t
func Encode(t types.BitTriple) float32 {
	return math.Float32frombits(Word(t))
}

// Decode extracts the bit fields of v. Decode(Encode(t)) == t for every valid t.
func Decode(v float32) types.BitTriple {
	return FromWord(math.Float32bits(v))
}

// DecodeFloat64 rounds x to single precision (nearest, ties to even) before decoding it
func DecodeFloat64(x float64) types.BitTriple {
	return Decode(Narrow(x))
}

// Narrow rounds a working-precision result to single precision
func Narrow(x float64) float32 {
	return float32(x)
}

// Mul returns the single-precision product of a and b, rounded once.
// The binary64 product of two binary32 values is exact.
func Mul(a, b float32) float32 {
	return Narrow(float64(a) * float64(b))
}

// Add returns the single-precision sum of a and b, rounded once.
// Rounding through binary64 first cannot change the binary32 result for addition.
func Add(a, b float32) float32 {
	return Narrow(float64(a) + float64(b))
}

// LeadingBits returns the top n bits of a 23-bit fraction as a zero-padded
// binary string. n is clamped to [1, 23].
func LeadingBits(fraction uint32, n int) string {
	n = util.Clamp(n, 1, types.FractionBits)
	top := util.Mask(fraction, types.FractionBits) >> (types.FractionBits - n)
	return fmt.Sprintf("%0*b", n, top)
}

// FormatExponent renders a biased exponent as 8 binary digits
func FormatExponent(e uint8) string {
	return fmt.Sprintf("%08b", e)
}

// FormatFraction renders a fraction field as 23 binary digits
func FormatFraction(f uint32) string {
	return fmt.Sprintf("%023b", util.Mask(f, types.FractionBits))
}

// Hint shows the leading n fraction bits followed by an ellipsis for the rest
func Hint(fraction uint32, n int) string {
	return LeadingBits(fraction, n) + "...0"
}
