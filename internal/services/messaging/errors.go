package messaging

// MessagingError is a custom error type for errors raised by the hosts
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	// ErrSlowDown is returned by hosts that rate limit guesses
	ErrSlowDown MessagingError = "too many guesses, slow down"

	// ErrNilInput is returned when a request is missing its input
	ErrNilInput MessagingError = "input cannot be nil"
)
