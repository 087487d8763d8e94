package service

import (
	"context"
	"fmt"
	"strings"

	"receiptor-bot/internal/models"
	"receiptor-bot/pkg/compliance"
)

// ReportService renders the yearly compliance report as plain text.
type ReportService struct {
	dashboard *DashboardService
	users     *UserService
	receipts  *ReceiptService
	holidays  *HolidayService
	schedules *ScheduleService
}

func NewReportService(
	dashboard *DashboardService,
	users *UserService,
	receipts *ReceiptService,
	holidays *HolidayService,
	schedules *ScheduleService,
) *ReportService {
	return &ReportService{
		dashboard: dashboard,
		users:     users,
		receipts:  receipts,
		holidays:  holidays,
		schedules: schedules,
	}
}

func (s *ReportService) Render(ctx context.Context, chatID int64, year int) (string, error) {
	user, err := s.users.GetUser(chatID)
	if err != nil {
		return "", err
	}

	details, err := s.dashboard.Details(ctx, chatID, year)
	if err != nil {
		return "", err
	}

	receipts, err := s.receipts.ListReceipts(user.ID, year)
	if err != nil {
		return "", fmt.Errorf("failed to load receipts: %w", err)
	}

	holidays, err := s.holidays.ListHolidays(user.ID, year)
	if err != nil {
		return "", fmt.Errorf("failed to load holidays: %w", err)
	}

	periods, err := s.schedules.ListPeriods(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to load schedule: %w", err)
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)

	var b strings.Builder
	fmt.Fprintf(&b, "FISCAL COMPLIANCE REPORT %d\n", year)
	fmt.Fprintf(&b, "Account: %s\n", name)
	fmt.Fprintf(&b, "Generated: %s\n\n", details.Today)

	summary := details.Summary
	status := "COMPLIANT"
	if summary.IsAtRisk {
		status = "AT RISK"
	}
	fmt.Fprintf(&b, "Status: %s\n\n", status)

	b.WriteString("Compliance summary\n")
	writeRow(&b, "Working country", summary.WorkingCountryCode)
	writeRow(&b, "Residence country", details.Settings.ResidenceCountryCode)
	writeRow(&b, "Home-working threshold", fmt.Sprint(summary.HomeworkingThreshold))
	writeRow(&b, "Total working days", fmt.Sprint(summary.TotalWorkingDays))
	writeRow(&b, "Past working days", fmt.Sprint(summary.PastWorkingDays))
	writeRow(&b, "Days with proof", fmt.Sprint(summary.DaysWithProof))
	writeRow(&b, "Days without proof", fmt.Sprint(summary.DaysWithoutProof))
	writeRow(&b, "Forecast home-working days", fmt.Sprint(summary.ForecastHomeworkingDays))
	writeRow(&b, "Forecast days without proof", fmt.Sprint(summary.ForecastedDaysWithoutProof))
	writeRow(&b, "Remaining allowed days", fmt.Sprint(summary.RemainingAllowedHomeworkingDays))

	b.WriteString("\nMonthly breakdown\n")
	fmt.Fprintf(&b, "%-4s %7s %6s %6s %8s\n", "", "working", "past", "proof", "no proof")
	for _, m := range details.Months {
		fmt.Fprintf(&b, "%-4s %7d %6d %6d %8d\n", m.Month.String()[:3], m.WorkingDays, m.PastWorkingDays, m.DaysWithProof, m.DaysWithoutProof)
	}

	fmt.Fprintf(&b, "\nReceipts (%d)\n", len(receipts))
	if len(receipts) == 0 {
		b.WriteString("No receipts recorded for this year.\n")
	}
	// oldest first reads better in a document
	for i := len(receipts) - 1; i >= 0; i-- {
		r := receipts[i]
		fmt.Fprintf(&b, "%s %s %s\n", r.FormatDate(), compliance.DateOf(*r.ReceiptDate).Weekday(), r.OCRStatus)
	}

	if len(details.PublicHolidays) > 0 {
		fmt.Fprintf(&b, "\nPublic holidays excluded (%d)\n", len(details.PublicHolidays))
		for _, h := range details.PublicHolidays {
			fmt.Fprintf(&b, "%s %s\n", h.Date.Format(models.DateLayout), h.Name)
		}
	}

	if len(holidays) > 0 {
		fmt.Fprintf(&b, "\nPersonal holiday periods (%d)\n", len(holidays))
		for _, h := range holidays {
			fmt.Fprintf(&b, "%s → %s %s\n", h.StartDate.Format(models.DateLayout), h.EndDate.Format(models.DateLayout), orDash(h.Description))
		}
	}

	if len(periods) > 0 {
		fmt.Fprintf(&b, "\nWork schedule periods (%d)\n", len(periods))
		for _, p := range periods {
			end := "ongoing"
			if p.EndDate != nil {
				end = p.EndDate.Format(models.DateLayout)
			}
			days, _ := compliance.ParseWeekdays(p.WorkingDays)
			fmt.Fprintf(&b, "%s → %s %s %s\n", p.StartDate.Format(models.DateLayout), end, days, orDash(p.Description))
		}
	}

	return b.String(), nil
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-30s %s\n", label+":", value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
