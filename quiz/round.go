package quiz

import (
	"bytes"
	"fmt"
	"log"
	"strconv"

	"github.com/archquiz/go-fp32/fp32"
	"github.com/archquiz/go-fp32/scientific"
	"github.com/archquiz/go-fp32/types"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"
)

// Section is one part of a round
type Section uint64

const (
	// Representation asks for the decimal scientific form of a bit pattern
	Representation Section = iota
	// Multiplication asks for the fields of R = A * B
	Multiplication
	// Addition asks for the fields of R = A + B
	Addition
)

// Sections lists the sections of a round in presentation order
func Sections() []Section {
	return []Section{Representation, Multiplication, Addition}
}

func (s Section) String() string {
	switch s {
	case Representation:
		return "representation"
	case Multiplication:
		return "multiplication"
	case Addition:
		return "addition"
	default:
		return fmt.Sprintf("section(%d)", uint64(s))
	}
}

// Operands is the pair a section combines
type Operands struct {
	A types.BitTriple
	B types.BitTriple
}

// Product returns the fields of the single-precision product A * B
func (o Operands) Product() types.BitTriple {
	return fp32.Decode(fp32.Mul(fp32.Encode(o.A), fp32.Encode(o.B)))
}

// Sum returns the fields of the single-precision sum A + B
func (o Operands) Sum() types.BitTriple {
	return fp32.Decode(fp32.Add(fp32.Encode(o.A), fp32.Encode(o.B)))
}

// Round is one set of questions. It carries the display settings it was generated with,
// so its answer key can be rebuilt after decoding.
type Round struct {
	Representation   types.BitTriple
	Multiplication   Operands
	Addition         Operands
	FractionalDigits uint64
	HintBits         uint64
}

var roundCidBuilder = cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.SHA2_256}

// ID returns the content identifier of the round's CBOR encoding
func (r *Round) ID() (cid.Cid, error) {
	var buf bytes.Buffer
	if err := r.MarshalCBOR(&buf); err != nil {
		return cid.Undef, xerrors.Errorf("encoding round: %w", err)
	}
	return roundCidBuilder.Sum(buf.Bytes())
}

// Prompt describes the operands of a section the way the quiz shows them
func (r *Round) Prompt(s Section) string {
	hint := int(r.HintBits)
	operand := func(t types.BitTriple) string {
		return fmt.Sprintf("S=%d E=%d F=%s", t.Sign, t.Exponent, fp32.Hint(t.Fraction, hint))
	}
	switch s {
	case Representation:
		return "Given bits: " + operand(r.Representation)
	case Multiplication:
		return fmt.Sprintf("R = A * B\nA: %s\nB: %s", operand(r.Multiplication.A), operand(r.Multiplication.B))
	case Addition:
		return fmt.Sprintf("R = A + B\nA: %s\nB: %s", operand(r.Addition.A), operand(r.Addition.B))
	default:
		return ""
	}
}

// Key computes the expected answer of every field of the round
func (r *Round) Key() (*AnswerKey, error) {
	sf, err := scientific.ToScientific(fp32.Encode(r.Representation), int(r.FractionalDigits))
	if err != nil {
		log.Println("could not render representation operand")
		return nil, xerrors.Errorf("rendering representation operand %s: %w", r.Representation, err)
	}

	key := &AnswerKey{Answers: []Answer{
		{Field: FieldName(Representation, FieldUnitSign), Want: strconv.Itoa(sf.Sign)},
		{Field: FieldName(Representation, FieldLeadingDigit), Want: strconv.Itoa(sf.LeadingDigit)},
		{Field: FieldName(Representation, FieldFractionalDigits), Want: sf.FractionalDigits},
		{Field: FieldName(Representation, FieldDecimalExponent), Want: strconv.Itoa(sf.DecimalExponent)},
	}}

	results := []struct {
		section Section
		r       types.BitTriple
	}{
		{Multiplication, r.Multiplication.Product()},
		{Addition, r.Addition.Sum()},
	}
	for _, res := range results {
		key.Answers = append(key.Answers,
			Answer{Field: FieldName(res.section, FieldSignBit), Want: strconv.Itoa(int(res.r.Sign))},
			Answer{Field: FieldName(res.section, FieldBiasedExponent), Want: strconv.Itoa(int(res.r.Exponent))},
			Answer{Field: FieldName(res.section, FieldLeadingBits), Want: fp32.LeadingBits(res.r.Fraction, int(r.HintBits))},
		)
	}
	return key, nil
}
