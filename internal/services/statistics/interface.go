package statistics

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordvibe/internal/services/statistics Service

import "context"

// Service defines the interface for player statistics operations
type Service interface {
	// GetStatistics returns a player's statistics
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// RecordWin applies a won round to a player's statistics
	RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error)

	// RecordLoss applies a lost round to a player's statistics
	RecordLoss(ctx context.Context, input *RecordLossInput) (*RecordLossOutput, error)

	// ResetStatistics clears a player's statistics
	ResetStatistics(ctx context.Context, input *ResetStatisticsInput) (*ResetStatisticsOutput, error)
}
