package quiz

import (
	"math/rand"
	"testing"

	"github.com/archquiz/go-fp32/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlledRanges(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), DefaultOptions())
	for i := 0; i < 500; i++ {
		r := g.NewRound()
		assert.True(t, r.Representation.Valid())
		assert.GreaterOrEqual(t, r.Representation.Exponent, uint8(125))
		assert.LessOrEqual(t, r.Representation.Exponent, uint8(128))
		assert.Contains(t, representationFractions, r.Representation.Fraction)

		for _, op := range []types.BitTriple{r.Multiplication.A, r.Multiplication.B} {
			assert.GreaterOrEqual(t, op.Exponent, uint8(126))
			assert.LessOrEqual(t, op.Exponent, uint8(128))
			assert.Contains(t, easySignificands, op.Fraction)
		}

		a, b := r.Addition.A, r.Addition.B
		assert.GreaterOrEqual(t, a.Exponent, uint8(127))
		assert.LessOrEqual(t, a.Exponent, uint8(129))
		assert.LessOrEqual(t, absDiff(a.Exponent, b.Exponent), 1)
		assert.Contains(t, simpleFractions, a.Fraction)
		assert.Contains(t, simpleFractions, b.Fraction)

		assert.Equal(t, uint64(6), r.FractionalDigits)
		assert.Equal(t, uint64(6), r.HintBits)
	}
}

func TestUniformRanges(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = Uniform
	g := NewGenerator(rand.New(rand.NewSource(7)), opts)
	for i := 0; i < 500; i++ {
		r := g.NewRound()
		for _, op := range []types.BitTriple{r.Representation, r.Multiplication.A, r.Multiplication.B, r.Addition.A, r.Addition.B} {
			assert.True(t, op.Valid())
			assert.GreaterOrEqual(t, int(op.Exponent), MinGeneratedExponent)
			assert.LessOrEqual(t, int(op.Exponent), MaxGeneratedExponent)
		}
		assert.LessOrEqual(t, absDiff(r.Addition.A.Exponent, r.Addition.B.Exponent), 1)

		// every generated round has a renderable key
		_, err := r.Key()
		require.NoError(t, err)
	}
}

func TestGeneratorIsReproducible(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42)), DefaultOptions()).NewRound()
	b := NewGenerator(rand.New(rand.NewSource(42)), DefaultOptions()).NewRound()
	assert.Equal(t, a, b)
}

func TestGeneratorClampsOptions(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)), Options{FractionalDigits: -2, HintBits: 99})
	r := g.NewRound()
	assert.Equal(t, uint64(0), r.FractionalDigits)
	assert.Equal(t, uint64(types.FractionBits), r.HintBits)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
