package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
	}{
		{"", 0},
		{"2024-01-15en", 1010751924},
		{"2024-01-15es", 1010751919},
		{"2024-01-16en", 1010750963},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Seed(tt.input, ""), tt.input)
	}
	assert.Equal(t, Seed("2024-01-15en", ""), Seed("2024-01-15", "en"))
}

func TestGeneratorSequence(t *testing.T) {
	g := NewGenerator(0)
	assert.InDelta(t, 0.26642920868471265, g.Next(), 1e-15)
	assert.InDelta(t, 0.0003297457005828619, g.Next(), 1e-15)
	assert.InDelta(t, 0.2232720274478197, g.Next(), 1e-15)

	assert.InDelta(t, 0.971935260342434, NewGenerator(Seed("2024-01-15", "en")).Next(), 1e-15)
}

func TestGeneratorStaysInRange(t *testing.T) {
	g := NewGenerator(Seed("2025-12-31", "es"))
	for i := 0; i < 10000; i++ {
		v := g.Next()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(0, 10))
	assert.Equal(t, 9, Index(0.999999, 10))
	assert.Equal(t, 3, Index(0.35, 10))
}
