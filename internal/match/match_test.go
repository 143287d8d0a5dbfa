package match

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = models.MatchStatusCorrect
	P = models.MatchStatusPresent
	A = models.MatchStatusAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
		expected [models.WordLength]models.MatchStatus
	}{
		{
			name:     "exact match",
			guess:    "crane",
			solution: "crane",
			expected: [5]models.MatchStatus{C, C, C, C, C},
		},
		{
			name:     "nothing in common",
			guess:    "moist",
			solution: "crane",
			expected: [5]models.MatchStatus{A, A, A, A, A},
		},
		{
			name:     "duplicate letters in both words",
			guess:    "speed",
			solution: "sheep",
			expected: [5]models.MatchStatus{C, P, C, C, A},
		},
		{
			name:     "triple letter guess against double letter solution",
			guess:    "eerie",
			solution: "elder",
			expected: [5]models.MatchStatus{C, P, P, A, A},
		},
		{
			name:     "exact position consumes the only copy",
			guess:    "llama",
			solution: "plant",
			expected: [5]models.MatchStatus{A, C, C, A, A},
		},
		{
			name:     "extra copies are absent once exact positions use them up",
			guess:    "geese",
			solution: "these",
			expected: [5]models.MatchStatus{A, A, C, C, C},
		},
		{
			name:     "case is ignored",
			guess:    "CRANE",
			solution: "react",
			expected: [5]models.MatchStatus{P, P, C, A, P},
		},
		{
			name:     "non ascii letters",
			guess:    "niñas",
			solution: "señal",
			expected: [5]models.MatchStatus{A, A, C, C, P},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.guess, tt.solution)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
	}{
		{name: "short guess", guess: "cran", solution: "crane"},
		{name: "long guess", guess: "cranes", solution: "crane"},
		{name: "digit in guess", guess: "cr4ne", solution: "crane"},
		{name: "space in guess", guess: "cra e", solution: "crane"},
		{name: "empty guess", guess: "", solution: "crane"},
		{name: "malformed solution", guess: "crane", solution: "cr-ne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.guess, tt.solution)
			assert.ErrorIs(t, err, ErrInvalidGuessShape)
		})
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	// A small alphabet forces plenty of repeated letters
	alphabet := []rune("abcde")
	rng := rand.New(rand.NewSource(42))
	word := func() string {
		var b strings.Builder
		for i := 0; i < models.WordLength; i++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 2000; i++ {
		guess, solution := word(), word()
		statuses, err := Evaluate(guess, solution)
		require.NoError(t, err)

		marked := make(map[rune]int)
		for pos, r := range guess {
			require.Contains(t, []models.MatchStatus{C, P, A}, statuses[pos])
			if statuses[pos] != A {
				marked[r]++
			}
			if statuses[pos] == C {
				assert.Equal(t, rune(solution[pos]), r)
			}
		}
		for r, n := range marked {
			assert.LessOrEqual(t, n, strings.Count(solution, string(r)), "%s vs %s", guess, solution)
		}
	}
}

func TestEvaluateSolutionAgainstItself(t *testing.T) {
	for _, word := range []string{"crane", "sheep", "eerie", "llama", "mamma"} {
		got, err := Evaluate(word, word)
		require.NoError(t, err)
		assert.Equal(t, [5]models.MatchStatus{C, C, C, C, C}, got, word)
	}
}

func TestIsWinningGuess(t *testing.T) {
	assert.True(t, IsWinningGuess("crane", "crane"))
	assert.True(t, IsWinningGuess("Crane", "crane"))
	assert.False(t, IsWinningGuess("crate", "crane"))
}

func TestUpdateKeyStatuses(t *testing.T) {
	keys := models.NewKeyStatusMap()

	first, err := models.GuessFromWord("speed")
	require.NoError(t, err)
	statuses, err := Evaluate(first.Word(), "sheep")
	require.NoError(t, err)
	require.NoError(t, first.Finalize(statuses))
	UpdateKeyStatuses(keys, first)

	assert.Equal(t, C, keys.Status("s"))
	assert.Equal(t, P, keys.Status("p"))
	assert.Equal(t, C, keys.Status("e"))
	assert.Equal(t, A, keys.Status("d"))

	second, err := models.GuessFromWord("sheep")
	require.NoError(t, err)
	statuses, err = Evaluate(second.Word(), "sheep")
	require.NoError(t, err)
	require.NoError(t, second.Finalize(statuses))
	UpdateKeyStatuses(keys, second)

	assert.Equal(t, C, keys.Status("p"), "present upgrades to correct")
	assert.Equal(t, A, keys.Status("d"), "letters not in the new guess keep their status")
}
