package round

//go:generate mockgen -package=servicemocks -destination=servicemocks/mock_service.go github.com/KirkDiggler/wordvibe/internal/services/round Service
//go:generate mockgen -package=mocks -destination=mocks/mock_dictionary.go github.com/KirkDiggler/wordvibe/internal/services/round Dictionary
//go:generate mockgen -package=mocks -destination=mocks/mock_selector.go github.com/KirkDiggler/wordvibe/internal/services/round Selector

import (
	"context"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Service defines the interface for round operations
type Service interface {
	// StartRound creates a new round for a player
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitGuess plays one guess in a round
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// GetRound returns a round by ID
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// GetActiveRound returns the in-progress round of a player
	GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*GetActiveRoundOutput, error)

	// AbandonRound gives up on a round
	AbandonRound(ctx context.Context, input *AbandonRoundInput) (*AbandonRoundOutput, error)

	// GetLeaderboard returns the ranked results of a daily puzzle
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}

// Dictionary checks guesses against a locale's word list
type Dictionary interface {
	IsValidWord(locale, word string) (bool, error)
}

// Selector picks the secret word of a new round
type Selector interface {
	DailyWord(date, locale string) (models.Solution, error)
	RandomWord(locale string) (models.Solution, error)
}
