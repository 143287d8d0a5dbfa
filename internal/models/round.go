package models

import (
	"time"
)

// RoundStatus represents the current state of a round
type RoundStatus string

const (
	// RoundStatusInProgress indicates the player can still guess
	RoundStatusInProgress RoundStatus = "in_progress"

	// RoundStatusWon indicates the solution was guessed
	RoundStatusWon RoundStatus = "won"

	// RoundStatusLost indicates every row was used, or the round was abandoned
	RoundStatusLost RoundStatus = "lost"
)

// IsInProgress reports whether guesses are still accepted
func (s RoundStatus) IsInProgress() bool {
	return s == RoundStatusInProgress
}

// IsOver reports whether the round has finished
func (s RoundStatus) IsOver() bool {
	return s == RoundStatusWon || s == RoundStatusLost
}

// Round is one play-through of a solution by a player
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// PlayerID identifies who is playing, e.g. a Discord user ID
	PlayerID string

	// PlayerName is the display name shown on leaderboards, optional
	PlayerName string

	// ChannelID is where the round is being played, empty outside Discord
	ChannelID string

	// Solution is the secret word; hosts must not reveal it before the round is over
	Solution Solution

	// HardMode requires every guess to honor revealed constraints
	HardMode bool

	// Guesses holds one row per allowed guess
	Guesses [MaxGuesses]Guess

	// CurrentRow is the index of the next row to fill
	CurrentRow int

	// KeyStatuses is the best status seen per letter
	KeyStatuses KeyStatusMap

	// Status is the current state of the round
	Status RoundStatus

	// CreatedAt is when the round was started
	CreatedAt time.Time

	// UpdatedAt is when the round was last changed
	UpdatedAt time.Time
}

// CompletedGuesses returns the finalized rows in order
func (r *Round) CompletedGuesses() []Guess {
	out := make([]Guess, 0, r.CurrentRow)
	for _, g := range r.Guesses {
		if g.IsComplete {
			out = append(out, g)
		}
	}
	return out
}
