package compliance

// Request carries the raw inputs of a full summary computation.
type Request struct {
	Year               int
	WorkingCountryCode string
	Threshold          int
	// DefaultWeekdays applies on dates no schedule period covers. Nil means
	// Monday to Friday; an empty non-nil slice also falls back to Monday to Friday.
	DefaultWeekdays []int
	Periods         []SchedulePeriod
	PublicHolidays  DateSet
	UserHolidays    DateSet
	ReceiptDates    DateSet
	Today           Date
}

// Compute runs resolver, working-day builder and forecaster in sequence.
func Compute(req Request) (Summary, error) {
	fallback := DefaultWeekdays
	if len(req.DefaultWeekdays) > 0 {
		parsed, err := ParseWeekdays(req.DefaultWeekdays)
		if err != nil {
			return Summary{}, err
		}
		fallback = parsed
	}

	resolver := NewResolver(req.Periods, fallback)
	days := WorkingDays(req.Year, resolver, req.PublicHolidays, req.UserHolidays)

	return Forecast(Input{
		Year:               req.Year,
		WorkingCountryCode: req.WorkingCountryCode,
		Threshold:          req.Threshold,
		WorkingDays:        days,
		ReceiptDates:       req.ReceiptDates,
		Today:              req.Today,
	}), nil
}
