package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundNotFound    RoundError = "round not found"
	ErrRoundOver        RoundError = "round is already over"
	ErrRoundInProgress  RoundError = "player already has a round in progress"
	ErrNotRoundOwner    RoundError = "round belongs to another player"
	ErrNotInWordList    RoundError = "not in word list"
	ErrInvalidInput     RoundError = "invalid input"
	ErrNoLeaderboard    RoundError = "leaderboard is not available"
	ErrNilConfig        RoundError = "config cannot be nil"
	ErrNilRoundRepo     RoundError = "round repository cannot be nil"
	ErrNilStatsService  RoundError = "statistics service cannot be nil"
	ErrNilDictionary    RoundError = "dictionary cannot be nil"
	ErrNilSelector      RoundError = "selector cannot be nil"
	ErrNilClock         RoundError = "clock cannot be nil"
	ErrNilUUIDGenerator RoundError = "UUID generator cannot be nil"
)

// errHardModeViolation aborts a round update without consuming the guess
const errHardModeViolation RoundError = "hard mode violation"
