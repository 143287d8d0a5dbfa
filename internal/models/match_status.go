package models

import "fmt"

// MatchStatus is the outcome of a single letter position in a guess
type MatchStatus int

// The numeric order doubles as key-status precedence: a higher value always wins.
const (
	// MatchStatusUnset indicates the letter has not been evaluated yet
	MatchStatusUnset MatchStatus = iota

	// MatchStatusAbsent indicates the letter is not in the solution at the available count
	MatchStatusAbsent

	// MatchStatusPresent indicates the letter is in the solution at a different position
	MatchStatusPresent

	// MatchStatusCorrect indicates the letter is in the solution at this position
	MatchStatusCorrect
)

// String returns the lowercase name of the status
func (s MatchStatus) String() string {
	switch s {
	case MatchStatusUnset:
		return "unset"
	case MatchStatusAbsent:
		return "absent"
	case MatchStatusPresent:
		return "present"
	case MatchStatusCorrect:
		return "correct"
	default:
		return fmt.Sprintf("MatchStatus(%d)", int(s))
	}
}

// IsValid reports whether s is one of the four declared statuses
func (s MatchStatus) IsValid() bool {
	return s >= MatchStatusUnset && s <= MatchStatusCorrect
}

// Outranks reports whether s takes precedence over other for key statuses
func (s MatchStatus) Outranks(other MatchStatus) bool {
	return s > other
}

// MarshalText implements encoding.TextMarshaler
func (s MatchStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid match status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *MatchStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unset", "":
		*s = MatchStatusUnset
	case "absent":
		*s = MatchStatusAbsent
	case "present":
		*s = MatchStatusPresent
	case "correct":
		*s = MatchStatusCorrect
	default:
		return fmt.Errorf("unknown match status %q", string(text))
	}
	return nil
}
