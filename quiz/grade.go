package quiz

import (
	"fmt"
	"strings"

	"github.com/archquiz/go-fp32/parsing"
	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

// Answer fields, named as in N = s * d.m * 10^e and R = (S, E, F)
const (
	FieldUnitSign         = "s"
	FieldLeadingDigit     = "d"
	FieldFractionalDigits = "m"
	FieldDecimalExponent  = "e"
	FieldSignBit          = "S"
	FieldBiasedExponent   = "E"
	FieldLeadingBits      = "F"
)

// FieldName qualifies a field with its section, e.g. "addition.E"
func FieldName(s Section, field string) string {
	return s.String() + "." + field
}

// Answer is the expected text of one field
type Answer struct {
	Field string
	Want  string
}

// AnswerKey holds the expected answers of a round in presentation order
type AnswerKey struct {
	Answers []Answer
}

// Sheet maps qualified field names to what the learner typed
type Sheet map[string]string

// Verdict is the grading outcome of one field
type Verdict struct {
	Field   string
	Want    string
	Got     string
	Correct bool
}

// Score counts correct fields
type Score struct {
	Correct int
	Total   int
}

// Percent returns the share of correct fields, 0 for an empty score
func (s Score) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

func (s Score) String() string {
	return fmt.Sprintf("Score: %d/%d (%.1f%%)", s.Correct, s.Total, s.Percent())
}

// Result is the graded sheet
type Result struct {
	Verdicts []Verdict
	Score    Score
}

// Grade compares every field of the sheet with the key.
// Numeric fields compare by value, so "+1" matches "1" and an exponent may be given
// in decimal or as 8 bits. Missing or malformed answers count as wrong.
func Grade(key *AnswerKey, sheet Sheet) Result {
	res := Result{Verdicts: make([]Verdict, 0, len(key.Answers))}
	for _, a := range key.Answers {
		got := sheet[a.Field]
		v := Verdict{Field: a.Field, Want: a.Want, Got: got}
		if ok, err := matches(a, got); err == nil {
			v.Correct = ok
		}
		if v.Correct {
			res.Score.Correct++
		}
		res.Score.Total++
		res.Verdicts = append(res.Verdicts, v)
	}
	return res
}

// Validate reports every malformed answer and every field the key does not know about.
// Empty answers are not malformed, they are only wrong.
func (k *AnswerKey) Validate(sheet Sheet) error {
	known := make(map[string]Answer, len(k.Answers))
	for _, a := range k.Answers {
		known[a.Field] = a
	}

	fields := maps.Keys(sheet)
	slices.Sort(fields)

	var merr *multierror.Error
	for _, f := range fields {
		a, ok := known[f]
		if !ok {
			merr = multierror.Append(merr, xerrors.Errorf("unknown field %q", f))
			continue
		}
		if strings.TrimSpace(sheet[f]) == "" {
			continue
		}
		if _, err := matches(a, sheet[f]); err != nil {
			merr = multierror.Append(merr, xerrors.Errorf("field %s: %w", f, err))
		}
	}
	return merr.ErrorOrNil()
}

// matches parses got according to the kind of field a and compares it with the expected value
func matches(a Answer, got string) (bool, error) {
	_, field, ok := strings.Cut(a.Field, ".")
	if !ok {
		return false, xerrors.Errorf("unqualified field %q", a.Field)
	}

	switch field {
	case FieldUnitSign:
		return compare(parsing.ParseSign, a.Want, got)
	case FieldLeadingDigit:
		return compare(parsing.ParseDigit, a.Want, got)
	case FieldFractionalDigits:
		n := len(a.Want)
		return compare(func(s string) (string, error) { return parsing.ParseDigits(s, n) }, a.Want, got)
	case FieldDecimalExponent:
		return compare(parsing.ParseDecimalExponent, a.Want, got)
	case FieldSignBit:
		return compare(parsing.ParseSignBit, a.Want, got)
	case FieldBiasedExponent:
		return compare(parsing.ParseBiasedExponent, a.Want, got)
	case FieldLeadingBits:
		n := len(a.Want)
		return compare(func(s string) (uint32, error) { return parsing.ParseBits(s, n) }, a.Want, got)
	default:
		return false, xerrors.Errorf("unknown field kind %q", field)
	}
}

func compare[T comparable](parse func(string) (T, error), want, got string) (bool, error) {
	w, err := parse(want)
	if err != nil {
		return false, xerrors.Errorf("answer key entry %q: %w", want, err)
	}
	g, err := parse(got)
	if err != nil {
		return false, err
	}
	return w == g, nil
}
