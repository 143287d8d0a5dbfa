package models

// Solution is the secret word for a single round
type Solution struct {
	// Word is the lowercase 5-letter answer
	Word string

	// Locale is the word list the answer was drawn from
	Locale string

	// Index is the position of Word in the locale's answer list
	Index int

	// IsDaily indicates the word was selected from the calendar date
	IsDaily bool

	// Date is the YYYY-MM-DD the daily word belongs to, empty for casual rounds
	Date string
}
