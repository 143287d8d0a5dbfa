package models

import "strings"

// KeyStatusMap tracks the best status seen for each letter during a round
type KeyStatusMap map[string]MatchStatus

// NewKeyStatusMap returns an empty map for a fresh round
func NewKeyStatusMap() KeyStatusMap {
	return make(KeyStatusMap)
}

// Upgrade records status for letter unless a higher-precedence status is already recorded
func (k KeyStatusMap) Upgrade(letter string, status MatchStatus) {
	letter = strings.ToLower(letter)
	if letter == "" {
		return
	}
	if current, ok := k[letter]; ok && !status.Outranks(current) {
		return
	}
	k[letter] = status
}

// Apply upgrades every letter of a finalized guess; incomplete guesses are ignored
func (k KeyStatusMap) Apply(g Guess) {
	if !g.IsComplete {
		return
	}
	for i, letter := range g.Letters {
		k.Upgrade(letter, g.Matches[i])
	}
}

// Status returns the recorded status for letter, unset when never seen
func (k KeyStatusMap) Status(letter string) MatchStatus {
	return k[strings.ToLower(letter)]
}
