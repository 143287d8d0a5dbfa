package models

// VibeTrend describes how the latest guess compares to the one before it
type VibeTrend string

const (
	// VibeTrendUp indicates the latest guess scored higher than the previous one
	VibeTrendUp VibeTrend = "up"

	// VibeTrendDown indicates the latest guess scored lower than the previous one
	VibeTrendDown VibeTrend = "down"

	// VibeTrendSame indicates no change, or fewer than two guesses
	VibeTrendSame VibeTrend = "same"
)

// VibeBand identifies the score band a label was picked from
type VibeBand int

const (
	VibeBandCold VibeBand = iota
	VibeBandWarm
	VibeBandGood
	VibeBandGreat
	VibeBandClose
	VibeBandPerfect
)

// VibeScore is the closeness feedback for a round
type VibeScore struct {
	// Score is in [0,100]
	Score int

	// Trend compares the two most recent guesses
	Trend VibeTrend

	// Band is the score band, for presentation layers that localize labels
	Band VibeBand

	// Label is the default label for Band
	Label string
}
