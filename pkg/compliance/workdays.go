package compliance

// HolidayPeriod is a closed range of personal days off.
type HolidayPeriod struct {
	Start       Date
	End         Date
	Description string
}

// Dates expands the range into individual dates. An inverted range is empty.
func (h HolidayPeriod) Dates() DateSet {
	out := make(DateSet)
	DateRange(h.Start, h.End, out.Add)
	return out
}

// ExpandHolidayPeriods flattens periods into one set.
func ExpandHolidayPeriods(periods []HolidayPeriod) DateSet {
	out := make(DateSet)
	for _, p := range periods {
		DateRange(p.Start, p.End, out.Add)
	}
	return out
}

// WorkingDays returns every date of year whose weekday belongs to the regime
// in force that day and which is neither a public nor a personal holiday.
func WorkingDays(year int, resolver *Resolver, publicHolidays, userHolidays DateSet) DateSet {
	out := make(DateSet, 262)
	DateRange(NewDate(year, 1, 1), NewDate(year, 12, 31), func(d Date) {
		if !resolver.RegimeFor(d).Has(d.Weekday()) {
			return
		}
		if publicHolidays.Has(d) || userHolidays.Has(d) {
			return
		}
		out.Add(d)
	})
	return out
}
