package models

import "time"

// LeaderboardEntry is one player's result on a daily puzzle
type LeaderboardEntry struct {
	// Rank is 1-based; players with the same result share a rank
	Rank int

	PlayerID   string
	PlayerName string

	// GuessCount is the number of guesses used, win or lose
	GuessCount int
	IsWin      bool

	FinishedAt time.Time
}
