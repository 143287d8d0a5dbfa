// Package calendar does day arithmetic on UTC YYYY-MM-DD strings.
//
// Streaks and the daily puzzle are keyed by calendar day, so nothing here
// subtracts timestamps: dates are converted to a day number and compared.
package calendar

import (
	"time"

	"github.com/KirkDiggler/wordvibe/internal/common/clock"
)

// Layout is the only accepted date format
const Layout = "2006-01-02"

// CalendarError is returned for malformed dates
type CalendarError string

// Error implements the error interface
func (e CalendarError) Error() string {
	return string(e)
}

const ErrInvalidDate CalendarError = "date must be a valid YYYY-MM-DD calendar day"

// Day is a calendar day without a time of day
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse reads a strict YYYY-MM-DD string
func Parse(date string) (Day, error) {
	if len(date) != len(Layout) {
		return Day{}, ErrInvalidDate
	}
	t, err := time.ParseInLocation(Layout, date, time.UTC)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return FromTime(t), nil
}

// FromTime returns the UTC calendar day of t
func FromTime(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the current UTC day according to c
func Today(c clock.Clock) string {
	return FromTime(c.Now()).String()
}

// String formats the day as YYYY-MM-DD
func (d Day) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(Layout)
}

// Number returns the count of days since 1970-01-01 (proleptic Gregorian)
func (d Day) Number() int {
	y := d.Year
	m := int(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Next returns the following calendar day
func (d Day) Next() Day {
	return FromTime(time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC))
}

// DaysBetween returns to minus from in calendar days
func DaysBetween(from, to string) (int, error) {
	f, err := Parse(from)
	if err != nil {
		return 0, err
	}
	t, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return t.Number() - f.Number(), nil
}

// IsNextDay reports whether next is exactly the day after prev
func IsNextDay(prev, next string) (bool, error) {
	n, err := DaysBetween(prev, next)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
