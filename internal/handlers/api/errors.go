package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/wordvibe/internal/common/calendar"
	"github.com/KirkDiggler/wordvibe/internal/dictionary"
	"github.com/KirkDiggler/wordvibe/internal/match"
	roundRepo "github.com/KirkDiggler/wordvibe/internal/repositories/round"
	statsRepo "github.com/KirkDiggler/wordvibe/internal/repositories/statistics"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
)

// HandlerError is returned when the handler is misconfigured
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           HandlerError = "config cannot be nil"
	ErrNilRoundService     HandlerError = "round service cannot be nil"
	ErrNilStatsService     HandlerError = "statistics service cannot be nil"
	ErrNilMessagingService HandlerError = "messaging service cannot be nil"
)

// errHardModeViolation is reported for guesses rejected by hard mode
const errHardModeViolation HandlerError = "hard mode violation"

const errMissingPlayerID HandlerError = "playerId query parameter is required"

// statusFor maps a service error to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, round.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, round.ErrRoundOver),
		errors.Is(err, round.ErrRoundInProgress),
		errors.Is(err, roundRepo.ErrConcurrentUpdate),
		errors.Is(err, statsRepo.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, round.ErrNotRoundOwner):
		return http.StatusForbidden
	case errors.Is(err, round.ErrNotInWordList),
		errors.Is(err, round.ErrInvalidInput),
		errors.Is(err, match.ErrInvalidGuessShape),
		errors.Is(err, dictionary.ErrUnknownLocale),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, errHardModeViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, messaging.ErrSlowDown):
		return http.StatusTooManyRequests
	case errors.Is(err, round.ErrNoLeaderboard):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
