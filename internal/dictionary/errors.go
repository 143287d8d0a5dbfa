package dictionary

// DictionaryError represents word list errors
type DictionaryError string

// Error implements the error interface
func (e DictionaryError) Error() string {
	return string(e)
}

const (
	// ErrUnknownLocale is returned when no word list exists for a locale
	ErrUnknownLocale DictionaryError = "unknown locale"

	// ErrEmptyAnswers is returned when a word list has no usable answers
	ErrEmptyAnswers DictionaryError = "word list has no answers"
)
