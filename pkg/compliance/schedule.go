package compliance

import "sort"

// SchedulePeriod is a time-bounded override of the weekly working regime.
type SchedulePeriod struct {
	Start Date
	// End is inclusive. Nil means the period is open-ended.
	End *Date
	// WorkingDays empty means full leave for the whole span.
	WorkingDays WeekdaySet
	Description string
}

// Covers reports whether d falls inside the period.
func (p SchedulePeriod) Covers(d Date) bool {
	if d.Before(p.Start) {
		return false
	}
	return p.End == nil || !d.After(*p.End)
}

// ParseSchedulePeriod builds a period from raw storage values. An empty end
// means open-ended.
func ParseSchedulePeriod(start, end string, days []int, description string) (SchedulePeriod, error) {
	s, err := ParseDate(start)
	if err != nil {
		return SchedulePeriod{}, err
	}

	var e *Date
	if end != "" {
		parsed, err := ParseDate(end)
		if err != nil {
			return SchedulePeriod{}, err
		}
		e = &parsed
	}

	wd, err := ParseWeekdays(days)
	if err != nil {
		return SchedulePeriod{}, err
	}

	return SchedulePeriod{Start: s, End: e, WorkingDays: wd, Description: description}, nil
}

// Resolver answers which weekly regime applies on a given date.
//
// Periods are kept ordered by start date, latest first. For a date matched by
// several overlapping periods the one that started most recently wins,
// regardless of how long each period is. Periods sharing a start date keep
// their input order.
type Resolver struct {
	periods  []SchedulePeriod
	fallback WeekdaySet
}

// NewResolver copies and orders periods. fallback applies to dates no period covers.
func NewResolver(periods []SchedulePeriod, fallback WeekdaySet) *Resolver {
	sorted := make([]SchedulePeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.After(sorted[j].Start)
	})

	return &Resolver{periods: sorted, fallback: fallback}
}

// RegimeFor returns the working weekdays in force on d.
func (r *Resolver) RegimeFor(d Date) WeekdaySet {
	for _, p := range r.periods {
		if p.Covers(d) {
			return p.WorkingDays
		}
	}
	return r.fallback
}

// Periods returns the periods in precedence order.
func (r *Resolver) Periods() []SchedulePeriod {
	out := make([]SchedulePeriod, len(r.periods))
	copy(out, r.periods)
	return out
}
