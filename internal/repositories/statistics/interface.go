package statistics

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordvibe/internal/repositories/statistics Repository

import (
	"context"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Repository defines the interface for player statistics persistence
type Repository interface {
	// GetStatistics retrieves a player's statistics, zero-valued for a new player
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*models.GameStatistics, error)

	// UpdateStatistics applies a transition to a player's statistics with compare-and-swap
	UpdateStatistics(ctx context.Context, input *UpdateStatisticsInput) (*models.GameStatistics, error)
}
