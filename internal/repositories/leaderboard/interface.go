package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordvibe/internal/repositories/leaderboard Repository

import (
	"context"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Repository defines the interface for daily puzzle leaderboards
type Repository interface {
	// RecordResult stores a player's finished daily round. Only the first
	// result of a player per puzzle counts; later ones are ignored.
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)

	// GetLeaderboard returns the ranked results of a puzzle, best first
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) ([]*models.LeaderboardEntry, error)
}
