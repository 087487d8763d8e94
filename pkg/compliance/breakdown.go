package compliance

import "time"

// MonthStat is the per-month split used by the yearly report.
type MonthStat struct {
	Month            time.Month
	WorkingDays      int
	PastWorkingDays  int
	DaysWithProof    int
	DaysWithoutProof int
}

// MonthlyBreakdown groups the working days of one year by month. Months
// without working days are still listed.
func MonthlyBreakdown(workingDays, receipts DateSet, today Date) []MonthStat {
	stats := make([]MonthStat, 12)
	for i := range stats {
		stats[i].Month = time.Month(i + 1)
	}

	for d := range workingDays {
		s := &stats[d.Month-1]
		s.WorkingDays++
		if d.After(today) {
			continue
		}
		s.PastWorkingDays++
		if receipts.Has(d) {
			s.DaysWithProof++
		} else {
			s.DaysWithoutProof++
		}
	}

	return stats
}
