package compliance

import "math"

const (
	StatusCompliant = "compliant"
	StatusAtRisk    = "at_risk"
)

// Input is everything the forecaster needs for one (user, year) pair.
type Input struct {
	Year               int
	WorkingCountryCode string
	Threshold          int
	WorkingDays        DateSet
	ReceiptDates       DateSet
	// Today splits the year into observed and projected working days.
	Today Date
}

// Summary is the compliance verdict for one year. It is derived fresh for
// every request and never stored.
type Summary struct {
	Year                            int    `json:"year"`
	WorkingCountryCode              string `json:"working_country_code"`
	HomeworkingThreshold            int    `json:"homeworking_threshold"`
	TotalWorkingDays                int    `json:"total_working_days"`
	PastWorkingDays                 int    `json:"past_working_days"`
	DaysWithProof                   int    `json:"days_with_proof"`
	DaysWithoutProof                int    `json:"days_without_proof"`
	ForecastHomeworkingDays         int    `json:"forecast_homeworking_days"`
	ForecastedDaysWithoutProof      int    `json:"forecasted_days_without_proof"`
	RemainingAllowedHomeworkingDays int    `json:"remaining_allowed_homeworking_days"`
	IsAtRisk                        bool   `json:"is_at_risk"`
	ComplianceStatus                string `json:"compliance_status"`
}

// Forecast projects the home-working rate observed up to and including
// Today over the remaining working days of the year.
//
// Every past working day without a receipt counts as home-working. Receipts
// that fall outside the working-day set are ignored. The projection rounds
// half to even.
func Forecast(in Input) Summary {
	past := in.WorkingDays.Filter(func(d Date) bool { return !d.After(in.Today) })
	future := in.WorkingDays.Difference(past)

	proved := in.ReceiptDates.Intersect(past)
	homeworking := past.Len() - proved.Len()

	rate := 0.0
	if past.Len() > 0 {
		rate = float64(homeworking) / float64(past.Len())
	}
	projected := int(math.RoundToEven(rate * float64(future.Len())))
	forecast := homeworking + projected

	atRisk := forecast > in.Threshold
	status := StatusCompliant
	if atRisk {
		status = StatusAtRisk
	}

	return Summary{
		Year:                            in.Year,
		WorkingCountryCode:              in.WorkingCountryCode,
		HomeworkingThreshold:            in.Threshold,
		TotalWorkingDays:                in.WorkingDays.Len(),
		PastWorkingDays:                 past.Len(),
		DaysWithProof:                   proved.Len(),
		DaysWithoutProof:                homeworking,
		ForecastHomeworkingDays:         forecast,
		ForecastedDaysWithoutProof:      forecast,
		RemainingAllowedHomeworkingDays: max(0, in.Threshold-homeworking),
		IsAtRisk:                        atRisk,
		ComplianceStatus:                status,
	}
}
