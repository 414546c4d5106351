package scientific

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/archquiz/go-fp32/types"
	"golang.org/x/xerrors"
)

// DefaultFractionalDigits is the number of digits shown after the decimal point
const DefaultFractionalDigits = 6

// exactDigits covers the exact decimal expansion of any float32, the longest being a subnormal
const exactDigits = 120

type unsupportedValueError string

// ErrUnsupportedValue is matched by errors.Is for non-finite inputs
var ErrUnsupportedValue = unsupportedValueError("unsupported value")

func (e unsupportedValueError) Error() string {
	return string(e)
}

func (e unsupportedValueError) Is(err error) bool {
	_, ok := err.(unsupportedValueError)
	return ok
}

// Default renders v with DefaultFractionalDigits fractional digits
func Default(v float32) (types.ScientificForm, error) {
	return ToScientific(v, DefaultFractionalDigits)
}

// ToScientific renders v as ±d.f1f2...×10^e with exactly fractionalDigits digits after the point.
// The exact decimal value of v is rounded half away from zero on its digit string.
// A carry out of the leading digit renormalizes to 1.000...×10^(e+1).
// Both zeros render as +0.000...×10^0.
func ToScientific(v float32, fractionalDigits int) (types.ScientificForm, error) {
	if fractionalDigits < 0 {
		return types.ScientificForm{}, xerrors.Errorf("fractional digits must not be negative: %d", fractionalDigits)
	}
	x := float64(v)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return types.ScientificForm{}, unsupportedValueError(fmt.Sprintf("cannot render %v in scientific form", v))
	}
	if x == 0 {
		return types.ScientificForm{
			Sign:             1,
			LeadingDigit:     0,
			FractionalDigits: strings.Repeat("0", fractionalDigits),
			DecimalExponent:  0,
		}, nil
	}

	sign := 1
	if math.Signbit(x) {
		sign = -1
	}
	digits, exp, err := exactDecimal(math.Abs(x))
	if err != nil {
		return types.ScientificForm{}, xerrors.Errorf("expanding %v: %w", v, err)
	}
	digits, exp = roundHalfAway(digits, fractionalDigits+1, exp)

	return types.ScientificForm{
		Sign:             sign,
		LeadingDigit:     int(digits[0] - '0'),
		FractionalDigits: digits[1:],
		DecimalExponent:  exp,
	}, nil
}

// exactDecimal returns the significant digits and decimal exponent of a positive finite x,
// such that x = d1.d2d3... × 10^exp with d1 != 0
func exactDecimal(x float64) (string, int, error) {
	s := new(big.Float).SetFloat64(x).Text('e', exactDigits)
	mant, expStr, ok := strings.Cut(s, "e")
	if !ok || len(mant) < 3 || mant[1] != '.' {
		return "", 0, xerrors.Errorf("unexpected decimal expansion %q", s)
	}
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return "", 0, xerrors.Errorf("parsing exponent of %q: %w", s, err)
	}
	return mant[:1] + mant[2:], exp, nil
}

// roundHalfAway keeps the first keep digits, rounding up when the first dropped digit is 5 or more
func roundHalfAway(digits string, keep int, exp int) (string, int) {
	if len(digits) <= keep {
		return digits + strings.Repeat("0", keep-len(digits)), exp
	}
	out := []byte(digits[:keep])
	if digits[keep] < '5' {
		return string(out), exp
	}
	i := keep - 1
	for ; i >= 0; i-- {
		if out[i] != '9' {
			out[i]++
			break
		}
		out[i] = '0'
	}
	if i < 0 {
		// 9.99...9 carried into 10.00...0
		out = append([]byte{'1'}, out[:keep-1]...)
		exp++
	}
	return string(out), exp
}
