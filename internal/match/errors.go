package match

// MatchError is returned for inputs the evaluator refuses to score
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

const (
	ErrInvalidGuessShape MatchError = "guess must be exactly 5 letters"
)
