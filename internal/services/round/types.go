package round

import (
	"github.com/KirkDiggler/wordvibe/internal/common/clock"
	"github.com/KirkDiggler/wordvibe/internal/common/uuid"
	"github.com/KirkDiggler/wordvibe/internal/hardmode"
	"github.com/KirkDiggler/wordvibe/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordvibe/internal/repositories/leaderboard"
	roundRepo "github.com/KirkDiggler/wordvibe/internal/repositories/round"
	statsService "github.com/KirkDiggler/wordvibe/internal/services/statistics"
)

// Config holds configuration for the round service
type Config struct {
	// DefaultLocale is used when a round is started without a locale
	DefaultLocale string

	// Repository dependencies
	RoundRepo roundRepo.Repository

	// Optional leaderboard for finished daily rounds
	Leaderboard leaderboardRepo.Repository

	// Service dependencies
	StatsService  statsService.Service
	Dictionary    Dictionary
	Selector      Selector
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct {
	// PlayerID identifies the player, e.g. a Discord user ID
	PlayerID string

	// PlayerName is shown on the daily leaderboard, optional
	PlayerName string

	// ChannelID is where the round is played, optional
	ChannelID string

	// Locale selects the word list, the service default when empty
	Locale string

	// Daily plays the day's puzzle instead of a random word
	Daily bool

	// HardMode requires guesses to honor revealed letters
	HardMode bool

	// Replace abandons a round already in progress instead of failing
	Replace bool
}

// StartRoundOutput contains the result of starting a round
type StartRoundOutput struct {
	// Round is the new round
	Round *models.Round

	// Abandoned is the in-progress round that was replaced, if any
	Abandoned *models.Round
}

// SubmitGuessInput contains parameters for submitting a guess
type SubmitGuessInput struct {
	// RoundID is the round being played
	RoundID string

	// PlayerID is required and must own the round
	PlayerID string

	// Word is the 5-letter guess, any case
	Word string
}

// SubmitGuessOutput contains the result of a guess
type SubmitGuessOutput struct {
	// Round is the round after the guess; unchanged when Violation is set
	Round *models.Round

	// Violation is set when hard mode rejected the guess
	Violation *hardmode.Violation

	// Row is the index the guess was written to
	Row int

	// Guess is the evaluated guess
	Guess models.Guess

	// Vibe is the round score after the guess
	Vibe models.VibeScore

	// Reveal holds the score after each revealed tile of the row, for animation
	Reveal []models.VibeScore

	// IsWin indicates the guess solved the round
	IsWin bool

	// IsOver indicates the round ended with this guess
	IsOver bool

	// Statistics is the player's statistics after a finished round
	Statistics *models.GameStatistics
}

// GetRoundInput contains parameters for reading a round
type GetRoundInput struct {
	RoundID string
}

// GetRoundOutput contains a round and its current score
type GetRoundOutput struct {
	Round *models.Round
	Vibe  models.VibeScore
}

// GetActiveRoundInput contains parameters for finding a player's round
type GetActiveRoundInput struct {
	PlayerID string
}

// GetActiveRoundOutput contains the player's in-progress round
type GetActiveRoundOutput struct {
	Round *models.Round
	Vibe  models.VibeScore
}

// AbandonRoundInput contains parameters for abandoning a round
type AbandonRoundInput struct {
	RoundID string

	// PlayerID is required and must own the round
	PlayerID string
}

// AbandonRoundOutput contains the abandoned round
type AbandonRoundOutput struct {
	Round *models.Round

	// Statistics is set when the abandon counted as a loss
	Statistics *models.GameStatistics
}

// GetLeaderboardInput contains parameters for reading a daily leaderboard
type GetLeaderboardInput struct {
	// Date is the puzzle day as YYYY-MM-DD, today when empty
	Date string

	// Locale is the service default when empty
	Locale string

	// Limit caps the number of entries, all of them when zero
	Limit int
}

// GetLeaderboardOutput contains the ranked results of a daily puzzle
type GetLeaderboardOutput struct {
	Date    string
	Locale  string
	Entries []*models.LeaderboardEntry
}
