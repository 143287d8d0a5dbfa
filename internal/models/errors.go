package models

// ModelError is returned when a model lifecycle rule is broken
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

const (
	ErrGuessFinalized  ModelError = "guess is already finalized"
	ErrGuessFull       ModelError = "guess already has all letters"
	ErrGuessIncomplete ModelError = "guess does not have all letters"
	ErrInvalidLetter   ModelError = "letter must be a single letter"
	ErrInvalidStatus   ModelError = "finalized statuses must be correct, present or absent"
)
