package models

import "time"

// DateOnly truncates t to midnight UTC of its calendar date, the form every
// date column is stored in.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// YearBounds returns Jan 1 and Dec 31 of year as stored dates.
func YearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the ISO form dates are shown and typed in.
const DateLayout = "2006-01-02"
