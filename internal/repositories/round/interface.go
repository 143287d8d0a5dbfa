package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordvibe/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Repository defines the interface for round persistence
type Repository interface {
	// SaveRound persists a round and indexes it as its player's active round while in progress
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRound retrieves a round by ID
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// GetActiveRound retrieves the in-progress round of a player
	GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*models.Round, error)

	// UpdateRound applies a mutation to a stored round, retrying on concurrent writes
	UpdateRound(ctx context.Context, input *UpdateRoundInput) (*models.Round, error)

	// DeleteRound removes a round
	DeleteRound(ctx context.Context, input *DeleteRoundInput) error
}
