package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// WordLength is the number of letters in every guess and solution
	WordLength = 5

	// MaxGuesses is the number of rows in a round
	MaxGuesses = 6
)

// Guess is one row of a round: the letters typed so far and, once
// finalized, the status of each position
type Guess struct {
	// Letters holds one lowercase letter per position, empty while pending input
	Letters [WordLength]string

	// Matches holds the evaluated status per position, all unset until finalized
	Matches [WordLength]MatchStatus

	// IsComplete is set exactly once, when the guess is finalized
	IsComplete bool

	// IsCorrect indicates every position was evaluated as correct
	IsCorrect bool
}

// NewGuess returns an empty guess ready for input
func NewGuess() Guess {
	return Guess{}
}

// GuessFromWord builds an unfinalized guess holding every letter of word
func GuessFromWord(word string) (Guess, error) {
	g := NewGuess()
	for _, r := range word {
		if err := g.AddLetter(string(r)); err != nil {
			return Guess{}, err
		}
	}
	if !g.IsFilled() {
		return Guess{}, ErrGuessIncomplete
	}
	return g, nil
}

// AddLetter places letter in the first empty position
func (g *Guess) AddLetter(letter string) error {
	if g.IsComplete {
		return ErrGuessFinalized
	}
	if utf8.RuneCountInString(letter) != 1 {
		return ErrInvalidLetter
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if !unicode.IsLetter(r) {
		return ErrInvalidLetter
	}

	for i := range g.Letters {
		if g.Letters[i] == "" {
			g.Letters[i] = strings.ToLower(letter)
			return nil
		}
	}
	return ErrGuessFull
}

// RemoveLetter clears the last filled position; it is a no-op on an empty guess
func (g *Guess) RemoveLetter() error {
	if g.IsComplete {
		return ErrGuessFinalized
	}
	for i := WordLength - 1; i >= 0; i-- {
		if g.Letters[i] != "" {
			g.Letters[i] = ""
			return nil
		}
	}
	return nil
}

// IsFilled reports whether every position holds a letter
func (g Guess) IsFilled() bool {
	for _, l := range g.Letters {
		if l == "" {
			return false
		}
	}
	return true
}

// Word returns the letters joined together
func (g Guess) Word() string {
	return strings.Join(g.Letters[:], "")
}

// Finalize records the evaluated statuses; a guess can only be finalized once
func (g *Guess) Finalize(statuses [WordLength]MatchStatus) error {
	if g.IsComplete {
		return ErrGuessFinalized
	}
	if !g.IsFilled() {
		return ErrGuessIncomplete
	}

	allCorrect := true
	for _, s := range statuses {
		if s == MatchStatusUnset || !s.IsValid() {
			return ErrInvalidStatus
		}
		if s != MatchStatusCorrect {
			allCorrect = false
		}
	}

	g.Matches = statuses
	g.IsComplete = true
	g.IsCorrect = allCorrect
	return nil
}
