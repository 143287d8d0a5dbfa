// Package puzzle picks secret words: one fixed word per day and locale, or a
// random one for casual rounds.
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/common/calendar"
	"github.com/KirkDiggler/wordvibe/internal/models"
)

// Config for the puzzle selector
type Config struct {
	// Words supplies the answer list per locale
	Words WordList

	// Optional seed for the casual-round source, for testing
	Seed int64
}

// Selector picks secret words
type Selector struct {
	words WordList

	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new selector
func New(cfg *Config) (*Selector, error) {
	if cfg == nil || cfg.Words == nil {
		return nil, ErrNilWordList
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Selector{
		words:  cfg.Words,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// DailyWord returns the word for a UTC calendar day. The same date and
// locale always give the same word; the clock is never consulted.
func (s *Selector) DailyWord(date, locale string) (models.Solution, error) {
	if _, err := calendar.Parse(date); err != nil {
		return models.Solution{}, err
	}

	answers, err := s.answers(locale)
	if err != nil {
		return models.Solution{}, err
	}

	idx := Index(NewGenerator(Seed(date, locale)).Next(), len(answers))
	return models.Solution{
		Word:    strings.ToLower(answers[idx]),
		Locale:  locale,
		Index:   idx,
		IsDaily: true,
		Date:    date,
	}, nil
}

// RandomWord returns a uniformly chosen word for a casual round
func (s *Selector) RandomWord(locale string) (models.Solution, error) {
	answers, err := s.answers(locale)
	if err != nil {
		return models.Solution{}, err
	}

	s.mu.Lock()
	idx := s.random.Intn(len(answers))
	s.mu.Unlock()

	return models.Solution{
		Word:   strings.ToLower(answers[idx]),
		Locale: locale,
		Index:  idx,
	}, nil
}

func (s *Selector) answers(locale string) ([]string, error) {
	answers, err := s.words.Answers(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for %q: %w", locale, err)
	}
	if len(answers) == 0 {
		return nil, ErrWordNotFound
	}
	return answers, nil
}
