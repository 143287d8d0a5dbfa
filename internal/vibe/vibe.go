// Package vibe turns the guesses of a round into a 0-100 closeness score.
//
// The round's score is the best single guess so far, not an average.
package vibe

import (
	"github.com/samber/lo"

	"github.com/KirkDiggler/wordvibe/internal/match"
	"github.com/KirkDiggler/wordvibe/internal/models"
)

const (
	// CorrectPoints is awarded per letter in the right position
	CorrectPoints = 20

	// PresentPoints is awarded per letter in the wrong position
	PresentPoints = 8

	// MaxScore is the score of a solved row
	MaxScore = CorrectPoints * models.WordLength
)

var labels = [...]string{
	models.VibeBandCold:    "Cold Vibes",
	models.VibeBandWarm:    "Warming Up",
	models.VibeBandGood:    "Good Vibes",
	models.VibeBandGreat:   "Great Vibes",
	models.VibeBandClose:   "Almost There!",
	models.VibeBandPerfect: "Perfect Vibe!",
}

// Points returns the contribution of a single status
func Points(s models.MatchStatus) int {
	switch s {
	case models.MatchStatusCorrect:
		return CorrectPoints
	case models.MatchStatusPresent:
		return PresentPoints
	case models.MatchStatusAbsent, models.MatchStatusUnset:
		return 0
	default:
		return 0
	}
}

// Raw sums the points of a row
func Raw(statuses [models.WordLength]models.MatchStatus) int {
	return lo.SumBy(statuses[:], Points)
}

// BandFor returns the band a score falls in
func BandFor(score int) models.VibeBand {
	switch {
	case score >= MaxScore:
		return models.VibeBandPerfect
	case score >= 80:
		return models.VibeBandClose
	case score >= 60:
		return models.VibeBandGreat
	case score >= 40:
		return models.VibeBandGood
	case score >= 20:
		return models.VibeBandWarm
	default:
		return models.VibeBandCold
	}
}

// Label returns the default label for a score
func Label(score int) string {
	return labels[BandFor(score)]
}

// Empty is the score of a round with no guesses
func Empty() models.VibeScore {
	return build(0, models.VibeTrendSame)
}

// Score rates every complete guess against solution
func Score(guesses []models.Guess, solution string) (models.VibeScore, error) {
	raws := make([]int, 0, len(guesses))
	for _, g := range guesses {
		if !g.IsComplete {
			continue
		}
		raw, err := rowRaw(g, solution, models.WordLength)
		if err != nil {
			return models.VibeScore{}, err
		}
		raws = append(raws, raw)
	}
	return build(lo.Max(raws), trend(raws)), nil
}

// ScorePartial rates the round while activeRow is being revealed: only its
// first revealed positions count and later rows are ignored. The result never
// decreases as revealed grows, and matches Score over rows up to activeRow
// once revealed reaches 5.
func ScorePartial(guesses []models.Guess, solution string, activeRow, revealed int) (models.VibeScore, error) {
	revealed = min(max(revealed, 0), models.WordLength)

	raws := make([]int, 0, len(guesses))
	for i, g := range guesses {
		if i >= activeRow {
			break
		}
		if !g.IsComplete {
			continue
		}
		raw, err := rowRaw(g, solution, models.WordLength)
		if err != nil {
			return models.VibeScore{}, err
		}
		raws = append(raws, raw)
	}

	if activeRow < 0 || activeRow >= len(guesses) || !guesses[activeRow].IsFilled() {
		return build(lo.Max(raws), trend(raws)), nil
	}

	active, err := rowRaw(guesses[activeRow], solution, revealed)
	if err != nil {
		return models.VibeScore{}, err
	}
	best := max(lo.Max(raws), active)

	if revealed == models.WordLength {
		return build(best, trend(append(raws, active))), nil
	}

	// Mid-reveal the row can still climb, so only an improvement is reported
	t := models.VibeTrendSame
	if len(raws) > 0 && active > raws[len(raws)-1] {
		t = models.VibeTrendUp
	}
	return build(best, t), nil
}

// RevealSequence returns the partial scores of activeRow for 0 through 5 revealed tiles
func RevealSequence(guesses []models.Guess, solution string, activeRow int) ([]models.VibeScore, error) {
	out := make([]models.VibeScore, 0, models.WordLength+1)
	for n := 0; n <= models.WordLength; n++ {
		s, err := ScorePartial(guesses, solution, activeRow, n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func rowRaw(g models.Guess, solution string, revealed int) (int, error) {
	statuses, err := match.Evaluate(g.Word(), solution)
	if err != nil {
		return 0, err
	}
	for i := revealed; i < models.WordLength; i++ {
		statuses[i] = models.MatchStatusUnset
	}
	return Raw(statuses), nil
}

func trend(raws []int) models.VibeTrend {
	if len(raws) < 2 {
		return models.VibeTrendSame
	}
	last, prev := raws[len(raws)-1], raws[len(raws)-2]
	switch {
	case last > prev:
		return models.VibeTrendUp
	case last < prev:
		return models.VibeTrendDown
	default:
		return models.VibeTrendSame
	}
}

func build(score int, t models.VibeTrend) models.VibeScore {
	score = min(max(score, 0), MaxScore)
	return models.VibeScore{
		Score: score,
		Trend: t,
		Band:  BandFor(score),
		Label: Label(score),
	}
}
