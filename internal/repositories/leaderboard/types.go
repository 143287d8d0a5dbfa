package leaderboard

import "time"

// RecordResultInput contains a finished daily round
type RecordResultInput struct {
	// Date and Locale identify the puzzle
	Date   string
	Locale string

	PlayerID   string
	PlayerName string
	GuessCount int
	IsWin      bool
	FinishedAt time.Time
}

// RecordResultOutput reports whether the result was stored
type RecordResultOutput struct {
	// Recorded is false when the player already had a result for the puzzle
	Recorded bool
}

// GetLeaderboardInput contains parameters for reading a leaderboard
type GetLeaderboardInput struct {
	Date   string
	Locale string

	// Limit caps the number of entries, all of them when zero
	Limit int
}
