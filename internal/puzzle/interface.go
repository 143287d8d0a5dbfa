package puzzle

//go:generate mockgen -destination=mocks/mock_word_list.go -package=mocks github.com/KirkDiggler/wordvibe/internal/puzzle WordList

// WordList supplies the answer words for a locale, in a stable order
type WordList interface {
	Answers(locale string) ([]string, error)
}
