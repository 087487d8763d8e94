package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02-01-2006",
	"02.01",
	"02-01",
}

var errDateFormat = errors.New("invalid date, use YYYY-MM-DD, DD.MM.YYYY or DD.MM")

// parseDate reads a calendar date. Day and month alone mean the year of today.
func parseDate(s string, today time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return t, nil
	}

	return time.Time{}, errDateFormat
}

// parseYear returns fallback for empty input.
func parseYear(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 2100 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

var weekdayNames = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

// parseWeekdayList reads "0,1,2" or "mon,tue". "-" and "none" are an empty list.
// Range checks are left to the services.
func parseWeekdayList(s string) ([]int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "-" || s == "none" {
		return []int{}, nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) == 0 {
		return nil, errors.New("no weekdays given")
	}

	days := make([]int, 0, len(parts))
	for _, p := range parts {
		if d, ok := weekdayNames[p]; ok {
			days = append(days, d)
			continue
		}
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		days = append(days, d)
	}
	return days, nil
}

// splitArgs splits the first n whitespace-separated arguments off args and
// returns them with the untouched remainder.
func splitArgs(args string, n int) ([]string, string) {
	rest := strings.TrimSpace(args)
	fields := make([]string, 0, n)
	for len(fields) < n && rest != "" {
		i := strings.IndexAny(rest, " \t\n")
		if i < 0 {
			fields = append(fields, rest)
			rest = ""
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimSpace(rest[i:])
	}
	return fields, rest
}
