package messaging

import "github.com/KirkDiggler/wordvibe/internal/hardmode"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for message selection, for testing
	Seed int64

	// DefaultTone is used when a request does not ask for one
	DefaultTone MessageTone
}

// DescribeViolationInput contains the violation to phrase
type DescribeViolationInput struct {
	Violation *hardmode.Violation
}

// DescribeViolationOutput contains the phrased violation
type DescribeViolationOutput struct {
	// Message is e.g. "2nd letter must be R"
	Message string
}

// DescribeErrorInput contains parameters for describing an error
type DescribeErrorInput struct {
	// Err is the error returned by a service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// DescribeErrorOutput contains the result of describing an error
type DescribeErrorOutput struct {
	Title   string
	Message string
	Tone    MessageTone

	// IsUserError indicates the player can fix the problem themselves
	IsUserError bool
}

// GetRoundStartedMessageInput contains parameters for a round start message
type GetRoundStartedMessageInput struct {
	PlayerName string
	IsDaily    bool
	Date       string
	HardMode   bool
}

// GetRoundStartedMessageOutput contains a round start message
type GetRoundStartedMessageOutput struct {
	Title   string
	Message string
}

// GetRoundResultMessageInput contains parameters for a round result message
type GetRoundResultMessageInput struct {
	// PlayerName is the name of the player
	PlayerName string

	// IsWin indicates the solution was found
	IsWin bool

	// GuessCount is how many guesses were used
	GuessCount int

	// Solution is the revealed word
	Solution string

	// IsPersonalMessage indicates an ephemeral message to the player
	IsPersonalMessage bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRoundResultMessageOutput contains a round result message
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
