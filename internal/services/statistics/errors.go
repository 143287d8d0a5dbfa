package statistics

// StatisticsError is a custom error type for statistics-related errors
type StatisticsError string

// Error implements the error interface
func (e StatisticsError) Error() string {
	return string(e)
}

const (
	ErrInvalidInput StatisticsError = "player ID is required"
	ErrNilConfig    StatisticsError = "config cannot be nil"
	ErrNilStatsRepo  StatisticsError = "statistics repository cannot be nil"
)
