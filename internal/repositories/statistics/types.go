package statistics

import "github.com/KirkDiggler/wordvibe/internal/models"

// GetStatisticsInput contains parameters for retrieving statistics
type GetStatisticsInput struct {
	PlayerID string
}

// UpdateStatisticsInput contains parameters for updating statistics
type UpdateStatisticsInput struct {
	PlayerID string

	// Transition computes the new value from the stored one; it may run more
	// than once and must not have side effects
	Transition func(current models.GameStatistics) (models.GameStatistics, error)
}
