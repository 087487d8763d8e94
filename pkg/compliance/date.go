// Package compliance computes the home-working compliance summary of a
// cross-border worker for one calendar year.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// never reads the process clock. Callers supply "today" explicitly.
package compliance

import (
	"fmt"
	"sort"
	"time"
)

const isoLayout = "2006-01-02"

// Date is a civil calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes the given components, so NewDate(2024, 2, 30) is 2024-03-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, &ParseError{Value: s, Reason: "not an ISO-8601 date", Err: err}
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of week with Monday as 0.
func (d Date) Weekday() Weekday {
	return Weekday((int(d.Time().Weekday()) + 6) % 7)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateRange calls fn for every date from start to end inclusive.
func DateRange(start, end Date, fn func(Date)) {
	for d := start; !d.After(end); d = d.AddDays(1) {
		fn(d)
	}
}

// DateSet is an unordered set of dates.
type DateSet map[Date]struct{}

func NewDateSet(dates ...Date) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Len() int {
	return len(s)
}

// Intersect returns the dates present in both s and o.
func (s DateSet) Intersect(o DateSet) DateSet {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(DateSet)
	for d := range small {
		if large.Has(d) {
			out.Add(d)
		}
	}
	return out
}

// Difference returns the dates of s that are not in o.
func (s DateSet) Difference(o DateSet) DateSet {
	out := make(DateSet)
	for d := range s {
		if !o.Has(d) {
			out.Add(d)
		}
	}
	return out
}

// Filter returns the dates of s for which keep returns true.
func (s DateSet) Filter(keep func(Date) bool) DateSet {
	out := make(DateSet)
	for d := range s {
		if keep(d) {
			out.Add(d)
		}
	}
	return out
}

// Sorted returns the dates in ascending order.
func (s DateSet) Sorted() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
