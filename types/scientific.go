package types

import (
	"fmt"
	"strings"
)

// ScientificForm is a normalized decimal rendering ±d.mmmm×10^e
type ScientificForm struct {
	// Sign is +1 or -1
	Sign int
	// LeadingDigit is in [1,9], or 0 only for the value zero
	LeadingDigit int
	// FractionalDigits holds exactly the requested number of decimal digits
	FractionalDigits string
	DecimalExponent  int
}

// String renders the form as +d.mmmmmme+E
func (sf ScientificForm) String() string {
	var b strings.Builder
	if sf.Sign < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	fmt.Fprintf(&b, "%d", sf.LeadingDigit)
	if sf.FractionalDigits != "" {
		b.WriteByte('.')
		b.WriteString(sf.FractionalDigits)
	}
	fmt.Fprintf(&b, "e%+d", sf.DecimalExponent)
	return b.String()
}
