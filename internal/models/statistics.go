package models

// GameStatistics holds the cumulative results for one player
type GameStatistics struct {
	// GamesPlayed counts every finished round
	GamesPlayed int

	// GamesWon counts rounds that ended with a correct guess
	GamesWon int

	// CurrentStreak counts consecutive days with a won daily round
	CurrentStreak int

	// MaxStreak is the highest CurrentStreak ever reached
	MaxStreak int

	// GuessDistribution bucket i counts wins that took i+1 guesses
	GuessDistribution [MaxGuesses]int

	// LastPlayedDate is the YYYY-MM-DD of the last finished round, any mode
	LastPlayedDate string

	// LastCompletedDate is the YYYY-MM-DD of the last daily result that touched the streak
	LastCompletedDate string
}

// WinPercentage returns the rounded share of games won, 0 when nothing was played
func (s GameStatistics) WinPercentage() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return (s.GamesWon*100 + s.GamesPlayed/2) / s.GamesPlayed
}
