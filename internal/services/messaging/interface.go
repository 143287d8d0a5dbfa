package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordvibe/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// DescribeViolation phrases a hard mode violation for the player
	DescribeViolation(ctx context.Context, input *DescribeViolationInput) (*DescribeViolationOutput, error)

	// DescribeError returns a user-friendly message for an error
	DescribeError(ctx context.Context, input *DescribeErrorInput) (*DescribeErrorOutput, error)

	// GetRoundStartedMessage returns a message for a new round
	GetRoundStartedMessage(ctx context.Context, input *GetRoundStartedMessageInput) (*GetRoundStartedMessageOutput, error)

	// GetRoundResultMessage returns a message for a finished round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)
}
