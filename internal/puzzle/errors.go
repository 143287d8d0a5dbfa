package puzzle

import "github.com/KirkDiggler/wordvibe/internal/common/calendar"

// PuzzleError represents puzzle selection errors
type PuzzleError string

// Error implements the error interface
func (e PuzzleError) Error() string {
	return string(e)
}

const (
	// ErrWordNotFound is returned when a locale has no answers to pick from
	ErrWordNotFound PuzzleError = "no answer words available"

	// ErrNilWordList is returned when the selector is built without a word list
	ErrNilWordList PuzzleError = "word list cannot be nil"

	// ErrInvalidDate is returned for dates that are not YYYY-MM-DD
	ErrInvalidDate = calendar.ErrInvalidDate
)
