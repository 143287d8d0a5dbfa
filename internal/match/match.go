// Package match scores a guess against the solution, one status per letter.
package match

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Evaluate compares guess to solution and returns the status of each position.
//
// Exact positions are resolved first and consume the solution's letter
// counts; the remaining positions are marked present only while unconsumed
// copies of the letter are left. This keeps correct+present for any letter
// at or below its frequency in the solution.
func Evaluate(guess, solution string) ([models.WordLength]models.MatchStatus, error) {
	var result [models.WordLength]models.MatchStatus

	g, err := normalize(guess)
	if err != nil {
		return result, err
	}
	s, err := normalize(solution)
	if err != nil {
		return result, err
	}

	remaining := make(map[rune]int, models.WordLength)
	for _, r := range s {
		remaining[r]++
	}

	for i := range g {
		if g[i] == s[i] {
			result[i] = models.MatchStatusCorrect
			remaining[g[i]]--
		}
	}

	for i := range g {
		if result[i] == models.MatchStatusCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			result[i] = models.MatchStatusPresent
			remaining[g[i]]--
		} else {
			result[i] = models.MatchStatusAbsent
		}
	}

	return result, nil
}

// IsWinningGuess reports whether guess is the solution, ignoring case
func IsWinningGuess(guess, solution string) bool {
	return strings.EqualFold(guess, solution)
}

// ValidateShape returns ErrInvalidGuessShape unless word is exactly 5 letters
func ValidateShape(word string) error {
	_, err := normalize(word)
	return err
}

// UpdateKeyStatuses upgrades keys with every letter of a finalized guess
func UpdateKeyStatuses(keys models.KeyStatusMap, guess models.Guess) {
	keys.Apply(guess)
}

func normalize(word string) ([]rune, error) {
	runes := []rune(strings.ToLower(word))
	if len(runes) != models.WordLength {
		return nil, ErrInvalidGuessShape
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return nil, ErrInvalidGuessShape
		}
	}
	return runes, nil
}
