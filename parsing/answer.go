package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/archquiz/go-fp32/types"
	"golang.org/x/xerrors"
)

type malformedError string

// ErrMalformed is matched by errors.Is for every answer that cannot be parsed
var ErrMalformed = malformedError("malformed answer")

func (me malformedError) Error() string {
	return string(me)
}

func (me malformedError) Is(err error) bool {
	_, ok := err.(malformedError)
	return ok
}

func malformed(format string, args ...interface{}) error {
	return malformedError(fmt.Sprintf(format, args...))
}

// ParseSign parses a unit sign written as 1, +1 or -1
func ParseSign(s string) (int, error) {
	switch strings.TrimSpace(s) {
	case "1", "+1":
		return 1, nil
	case "-1":
		return -1, nil
	}
	return 0, malformed("sign must be 1 or -1, got %q", s)
}

// ParseSignBit parses a sign bit written as 0 or 1
func ParseSignBit(s string) (uint8, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, malformed("sign bit must be 0 or 1, got %q", s)
}

// ParseDigit parses a single decimal digit
func ParseDigit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, malformed("expected a single decimal digit, got %q", s)
	}
	return int(s[0] - '0'), nil
}

// ParseDigits checks that s consists of exactly n decimal digits and returns it trimmed
func ParseDigits(s string, n int) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != n {
		return "", malformed("expected %d digits, got %d in %q", n, len(s), s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", malformed("non-digit %q at position %d", s[i], i)
		}
	}
	return s, nil
}

// ParseDecimalExponent parses a signed power of ten
func ParseDecimalExponent(s string) (int, error) {
	e, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, malformed("decimal exponent %q: %v", s, err)
	}
	return e, nil
}

// ParseBiasedExponent accepts either 8 binary digits or a decimal number in [0, 255]
func ParseBiasedExponent(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if len(s) == types.ExponentBits {
		v, err := ParseBits(s, types.ExponentBits)
		if err == nil {
			return uint8(v), nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, malformed("biased exponent %q: %v", s, err)
	}
	return uint8(v), nil
}

// ParseBits parses exactly n binary digits, most significant first
func ParseBits(s string, n int) (uint32, error) {
	s = strings.TrimSpace(s)
	if n < 1 || n > 32 {
		return 0, xerrors.Errorf("bit width must be in [1, 32], got %d", n)
	}
	if len(s) != n {
		return 0, malformed("expected %d bits, got %d in %q", n, len(s), s)
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, malformed("non-binary digit %q at position %d", s[i], i)
		}
	}
	return v, nil
}
