package fp32

import (
	"math"
	"testing"
)

// FuzzRoundTrip checks that packing and unpacking are inverse for arbitrary words and that
// oversized inputs never leak into neighbouring fields
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint32(0x3F800000), uint64(1), uint64(127), uint64(0))
	f.Add(uint32(0x80000000), uint64(3), uint64(300), uint64(1<<23))
	f.Add(uint32(0x007FFFFF), uint64(0), uint64(0), uint64(0x7FFFFF))
	f.Add(uint32(0x7F7FFFFF), uint64(math.MaxUint64), uint64(math.MaxUint64), uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, word uint32, sign, exponent, fraction uint64) {
		tr := FromWord(word)
		if Word(tr) != word {
			t.Fatalf("word %08x came back as %08x", word, Word(tr))
		}
		if got := Decode(Encode(tr)); got != tr {
			t.Fatalf("triple %s came back as %s", tr, got)
		}

		masked := NewBitTriple(sign, exponent, fraction)
		if !masked.Valid() {
			t.Fatalf("masked triple %v is not valid", masked)
		}
		w := Word(masked)
		if uint64(w>>31) != sign&1 || (w>>23)&0xFF != uint32(exponent&0xFF) || w&0x7FFFFF != uint32(fraction&0x7FFFFF) {
			t.Fatalf("fields %d/%d/%d packed into %08x", sign, exponent, fraction, w)
		}
	})
}
