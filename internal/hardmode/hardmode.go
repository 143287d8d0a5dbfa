// Package hardmode validates a guess against the constraints revealed by
// earlier guesses in the same round.
package hardmode

import (
	"strings"

	"github.com/KirkDiggler/wordvibe/internal/match"
	"github.com/KirkDiggler/wordvibe/internal/models"
)

// ViolationKind says which revealed constraint a guess broke
type ViolationKind string

const (
	// ViolationMisplacedCorrect means a letter revealed as correct was not kept in place
	ViolationMisplacedCorrect ViolationKind = "misplaced_correct"

	// ViolationMissingPresent means a letter revealed as present was not used
	ViolationMissingPresent ViolationKind = "missing_present"
)

// Violation describes the first broken constraint. It carries no display text.
type Violation struct {
	// Kind is the constraint that was broken
	Kind ViolationKind

	// Position is the 0-based position for ViolationMisplacedCorrect, -1 otherwise
	Position int

	// Letter is the lowercase letter the guess had to use
	Letter string
}

// Check returns the first constraint from prior that current breaks, or nil.
//
// Only complete guesses before currentIndex are constraints. Each prior guess
// is checked in order, positions first and then present letters.
func Check(current string, prior []models.Guess, currentIndex int) (*Violation, error) {
	if err := match.ValidateShape(current); err != nil {
		return nil, err
	}
	if currentIndex <= 0 {
		return nil, nil
	}

	letters := []rune(strings.ToLower(current))
	word := string(letters)

	for idx, g := range prior {
		if idx >= currentIndex {
			break
		}
		if !g.IsComplete {
			continue
		}

		for pos, status := range g.Matches {
			if status != models.MatchStatusCorrect {
				continue
			}
			if string(letters[pos]) != g.Letters[pos] {
				return &Violation{
					Kind:     ViolationMisplacedCorrect,
					Position: pos,
					Letter:   g.Letters[pos],
				}, nil
			}
		}

		for pos, status := range g.Matches {
			if status != models.MatchStatusPresent {
				continue
			}
			if !strings.Contains(word, g.Letters[pos]) {
				return &Violation{
					Kind:     ViolationMissingPresent,
					Position: -1,
					Letter:   g.Letters[pos],
				}, nil
			}
		}
	}

	return nil, nil
}
