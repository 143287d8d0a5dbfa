package round

import "github.com/KirkDiggler/wordvibe/internal/models"

type SaveRoundInput struct {
	Round *models.Round
}

type GetRoundInput struct {
	RoundID string
}

type GetActiveRoundInput struct {
	PlayerID string
}

type UpdateRoundInput struct {
	RoundID string

	// Update mutates the current round in place; returning an error aborts the write
	Update func(round *models.Round) error
}

type DeleteRoundInput struct {
	RoundID string
}
