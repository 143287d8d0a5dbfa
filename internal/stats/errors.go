package stats

import "github.com/KirkDiggler/wordvibe/internal/common/calendar"

// StatsError represents statistics transition errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

const (
	// ErrInvalidGuessCount is returned when a win is recorded outside 1..6 guesses
	ErrInvalidGuessCount StatsError = "guess count must be between 1 and 6"

	// ErrUnknownEvent is returned by Reduce for events it does not handle
	ErrUnknownEvent StatsError = "unknown statistics event"

	// ErrInvalidDate is returned for dates that are not YYYY-MM-DD
	ErrInvalidDate = calendar.ErrInvalidDate
)
