package stats

import (
	"fmt"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Event is something that happened to a player's statistics
type Event interface {
	isEvent()
}

// Win is a round solved in GuessCount guesses
type Win struct {
	GuessCount int
	Date       string
	IsDaily    bool
}

// Loss is a round that ran out of guesses or was abandoned
type Loss struct {
	Date    string
	IsDaily bool
}

// ResetEvent clears everything
type ResetEvent struct{}

func (Win) isEvent()        {}
func (Loss) isEvent()       {}
func (ResetEvent) isEvent() {}

// Reduce applies event to s
func Reduce(s models.GameStatistics, event Event) (models.GameStatistics, error) {
	switch e := event.(type) {
	case Win:
		return ApplyWin(s, e.GuessCount, e.Date, e.IsDaily)
	case Loss:
		return ApplyLoss(s, e.Date, e.IsDaily)
	case ResetEvent:
		return Reset(), nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownEvent, event)
	}
}
