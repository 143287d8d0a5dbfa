package puzzle

import "unicode/utf16"

// Seed folds date+locale into the 32-bit seed of the daily generator.
//
// Every UTF-16 code unit c updates hash = hash*31 + c with signed 32-bit
// wraparound; the seed is the absolute value. Changing this changes every
// daily word, so the arithmetic must stay exactly as it is.
func Seed(date, locale string) uint32 {
	var hash int32
	for _, c := range utf16.Encode([]rune(date + locale)) {
		hash = hash*31 + int32(c)
	}
	if hash < 0 {
		return uint32(-int64(hash))
	}
	return uint32(hash)
}

// Generator is a mulberry32 stream
type Generator struct {
	state uint32
}

// NewGenerator returns a generator starting at seed
func NewGenerator(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Next returns the next value in [0,1)
func (g *Generator) Next() float64 {
	g.state += 0x6D2B79F5
	t := g.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Index maps a generator value onto a list of n entries
func Index(v float64, n int) int {
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
