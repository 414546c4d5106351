package quiz

import (
	"math/rand"

	"github.com/archquiz/go-fp32/fp32"
	"github.com/archquiz/go-fp32/scientific"
	"github.com/archquiz/go-fp32/types"
	"github.com/archquiz/go-fp32/util"
)

// Policy selects how operands are drawn
type Policy uint64

const (
	// Controlled keeps operands small enough to work out by hand
	Controlled Policy = iota
	// Uniform draws every field uniformly, restricted to normal exponents in [2, 253]
	Uniform
)

// Exponent range used by the generators, away from subnormals and infinities
const (
	MinGeneratedExponent = 2
	MaxGeneratedExponent = 253
)

// Options configures round generation
type Options struct {
	Policy Policy
	// FractionalDigits is the number of digits asked for in the representation section
	FractionalDigits int
	// HintBits is the number of leading fraction bits shown and asked for
	HintBits int
}

// DefaultOptions returns the settings used by the classroom quiz
func DefaultOptions() Options {
	return Options{
		Policy:           Controlled,
		FractionalDigits: scientific.DefaultFractionalDigits,
		HintBits:         6,
	}
}

// two and three bit fraction patterns, the rest zero
var simpleFractions = []uint32{
	0b10000000000000000000000,
	0b01000000000000000000000,
	0b00100000000000000000000,
	0b11000000000000000000000,
	0b10100000000000000000000,
	0b01100000000000000000000,
}

var representationFractions = []uint32{
	0b11000000000000000000000,
	0b10000000000000000000000,
	0b01000000000000000000000,
	0b10100000000000000000000,
	0b01100000000000000000000,
	0b11100000000000000000000,
}

// significands 1.0, 1.25, 1.5 and 1.75
var easySignificands = []uint32{
	0b00000000000000000000000,
	0b01000000000000000000000,
	0b10000000000000000000000,
	0b11000000000000000000000,
}

// Generator draws quiz rounds from a caller supplied source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

func NewGenerator(rng *rand.Rand, opts Options) *Generator {
	opts.FractionalDigits = util.Max(0, opts.FractionalDigits)
	opts.HintBits = util.Clamp(opts.HintBits, 1, types.FractionBits)
	return &Generator{rng: rng, opts: opts}
}

// NewRound draws operands for every section
func (g *Generator) NewRound() *Round {
	return &Round{
		Representation:   g.representation(),
		Multiplication:   g.multiplication(),
		Addition:         g.addition(),
		FractionalDigits: uint64(g.opts.FractionalDigits),
		HintBits:         uint64(g.opts.HintBits),
	}
}

func (g *Generator) representation() types.BitTriple {
	if g.opts.Policy == Uniform {
		return g.uniform(g.uniformExponent())
	}
	return fp32.NewBitTriple(
		uint64(g.rng.Intn(2)),
		uint64(125+g.rng.Intn(4)),
		uint64(g.pick(representationFractions)),
	)
}

func (g *Generator) multiplication() Operands {
	if g.opts.Policy == Uniform {
		return Operands{A: g.uniform(g.uniformExponent()), B: g.uniform(g.uniformExponent())}
	}
	easy := func() types.BitTriple {
		return fp32.NewBitTriple(
			uint64(g.rng.Intn(2)),
			uint64(126+g.rng.Intn(3)),
			uint64(g.pick(easySignificands)),
		)
	}
	return Operands{A: easy(), B: easy()}
}

// addition keeps the operand exponents within one of each other
func (g *Generator) addition() Operands {
	var a types.BitTriple
	if g.opts.Policy == Uniform {
		a = g.uniform(g.uniformExponent())
	} else {
		a = fp32.NewBitTriple(uint64(g.rng.Intn(2)), uint64(127+g.rng.Intn(3)), uint64(g.pick(simpleFractions)))
	}
	eb := util.Clamp(int(a.Exponent)+g.rng.Intn(3)-1, MinGeneratedExponent, MaxGeneratedExponent)

	var b types.BitTriple
	if g.opts.Policy == Uniform {
		b = g.uniform(eb)
	} else {
		b = fp32.NewBitTriple(uint64(g.rng.Intn(2)), uint64(eb), uint64(g.pick(simpleFractions)))
	}
	return Operands{A: a, B: b}
}

func (g *Generator) uniformExponent() int {
	return MinGeneratedExponent + g.rng.Intn(MaxGeneratedExponent-MinGeneratedExponent+1)
}

func (g *Generator) uniform(exponent int) types.BitTriple {
	return fp32.NewBitTriple(uint64(g.rng.Intn(2)), uint64(exponent), uint64(g.rng.Uint32()))
}

func (g *Generator) pick(from []uint32) uint32 {
	return from[g.rng.Intn(len(from))]
}
