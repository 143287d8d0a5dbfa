// Package stats holds the win and streak transitions of a player's statistics.
//
// Every transition takes a GameStatistics value and returns a new one; the
// input is never modified. Only daily rounds touch the streak.
package stats

import (
	"github.com/KirkDiggler/wordvibe/internal/common/calendar"
	"github.com/KirkDiggler/wordvibe/internal/models"
)

// ApplyWin records a win that took guessCount guesses
func ApplyWin(s models.GameStatistics, guessCount int, date string, isDaily bool) (models.GameStatistics, error) {
	if guessCount < 1 || guessCount > models.MaxGuesses {
		return s, ErrInvalidGuessCount
	}
	if _, err := calendar.Parse(date); err != nil {
		return s, err
	}

	next := s
	next.GamesPlayed++
	next.GamesWon++
	next.GuessDistribution[guessCount-1]++
	next.LastPlayedDate = date

	if !isDaily || date == s.LastCompletedDate {
		return next, nil
	}

	days := 1
	if s.LastCompletedDate != "" {
		var err error
		days, err = calendar.DaysBetween(s.LastCompletedDate, date)
		if err != nil {
			return s, err
		}
	}

	switch {
	case days < 0:
		// A puzzle older than the last completed one cannot rewind the streak
		return next, nil
	case days == 1:
		next.CurrentStreak++
	default:
		next.CurrentStreak = 1
	}
	next.MaxStreak = max(next.MaxStreak, next.CurrentStreak)
	next.LastCompletedDate = date

	return next, nil
}

// ApplyLoss records a loss; a daily loss breaks the streak
func ApplyLoss(s models.GameStatistics, date string, isDaily bool) (models.GameStatistics, error) {
	if _, err := calendar.Parse(date); err != nil {
		return s, err
	}

	next := s
	next.GamesPlayed++
	next.LastPlayedDate = date

	if !isDaily {
		return next, nil
	}
	if s.LastCompletedDate != "" {
		days, err := calendar.DaysBetween(s.LastCompletedDate, date)
		if err != nil {
			return s, err
		}
		if days < 0 {
			return next, nil
		}
	}
	next.CurrentStreak = 0
	next.LastCompletedDate = date

	return next, nil
}

// Reset returns empty statistics
func Reset() models.GameStatistics {
	return models.GameStatistics{}
}
