package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"receiptor-bot/internal/clock"
	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/pkg/compliance"

	"github.com/sirupsen/logrus"
)

// Dashboard is the summary of a year plus the data it was computed from.
type Dashboard struct {
	Summary        compliance.Summary
	Settings       models.Settings
	Months         []compliance.MonthStat
	PublicHolidays []models.PublicHoliday
	Today          compliance.Date
}

// DayCheck explains how a single date is classified.
type DayCheck struct {
	Date          compliance.Date
	Regime        compliance.WeekdaySet
	PublicHoliday *models.PublicHoliday
	UserHoliday   bool
	WorkingDay    bool
	HasReceipt    bool
}

// DashboardService gathers a user's inputs from the stores and runs the
// compliance computation on them. Nothing it computes is stored.
type DashboardService struct {
	users     repository.UserRepository
	schedules *ScheduleService
	holidays  *HolidayService
	public    *PublicHolidayService
	receipts  *ReceiptService
	clock     clock.Clock
	location  *time.Location
	logger    *logrus.Logger
}

func NewDashboardService(
	users repository.UserRepository,
	schedules *ScheduleService,
	holidays *HolidayService,
	public *PublicHolidayService,
	receipts *ReceiptService,
	clk clock.Clock,
	location *time.Location,
) *DashboardService {
	if location == nil {
		location = time.UTC
	}

	return &DashboardService{
		users:     users,
		schedules: schedules,
		holidays:  holidays,
		public:    public,
		receipts:  receipts,
		clock:     clk,
		location:  location,
		logger:    newLogger(),
	}
}

// Today is the current calendar date in the configured time zone.
func (s *DashboardService) Today() compliance.Date {
	return compliance.DateOf(s.clock.Now().In(s.location))
}

func (s *DashboardService) Summary(ctx context.Context, chatID int64, year int) (compliance.Summary, error) {
	_, req, _, err := s.gather(ctx, chatID, year)
	if err != nil {
		return compliance.Summary{}, err
	}

	summary, err := compliance.Compute(req)
	if err != nil {
		return compliance.Summary{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":  chatID,
		"year":     year,
		"forecast": summary.ForecastHomeworkingDays,
		"status":   summary.ComplianceStatus,
	}).Debug("Summary computed")

	return summary, nil
}

// Details computes the summary together with a monthly breakdown.
func (s *DashboardService) Details(ctx context.Context, chatID int64, year int) (*Dashboard, error) {
	user, req, public, err := s.gather(ctx, chatID, year)
	if err != nil {
		return nil, err
	}

	summary, err := compliance.Compute(req)
	if err != nil {
		return nil, err
	}

	fallback, err := compliance.ParseWeekdays(req.DefaultWeekdays)
	if err != nil {
		return nil, err
	}
	if fallback.Len() == 0 {
		fallback = compliance.DefaultWeekdays
	}
	resolver := compliance.NewResolver(req.Periods, fallback)
	workingDays := compliance.WorkingDays(year, resolver, req.PublicHolidays, req.UserHolidays)

	return &Dashboard{
		Summary:        summary,
		Settings:       user.Settings(),
		Months:         compliance.MonthlyBreakdown(workingDays, req.ReceiptDates, req.Today),
		PublicHolidays: public,
		Today:          req.Today,
	}, nil
}

// CheckDay classifies one date for the user.
func (s *DashboardService) CheckDay(ctx context.Context, chatID int64, date compliance.Date) (*DayCheck, error) {
	user, err := s.user(chatID)
	if err != nil {
		return nil, err
	}
	settings := user.Settings()

	periods, err := s.schedules.CompliancePeriods(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	fallback, err := compliance.ParseWeekdays(settings.WorkingDays)
	if err != nil {
		return nil, err
	}

	holiday, err := s.public.HolidayOn(ctx, date.Time(), settings.WorkingCountryCode)
	if err != nil {
		return nil, err
	}

	userHolidays, err := s.holidays.HolidayDates(user.ID, date.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	receipts, err := s.receipts.ReceiptDates(user.ID, date.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load receipts: %w", err)
	}

	check := &DayCheck{
		Date:          date,
		Regime:        compliance.NewResolver(periods, fallback).RegimeFor(date),
		PublicHoliday: holiday,
		UserHoliday:   userHolidays.Has(date),
		HasReceipt:    receipts.Has(date),
	}
	check.WorkingDay = check.Regime.Has(date.Weekday()) && holiday == nil && !check.UserHoliday

	return check, nil
}

// gather loads every input of the computation. It fails before the
// computation runs when any store or the holiday source fails.
func (s *DashboardService) gather(ctx context.Context, chatID int64, year int) (*models.User, compliance.Request, []models.PublicHoliday, error) {
	user, err := s.user(chatID)
	if err != nil {
		return nil, compliance.Request{}, nil, err
	}
	settings := user.Settings()

	periods, err := s.schedules.CompliancePeriods(user.ID)
	if err != nil {
		return nil, compliance.Request{}, nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	public, err := s.public.Holidays(ctx, year, settings.WorkingCountryCode)
	if err != nil {
		return nil, compliance.Request{}, nil, err
	}
	publicDates := compliance.NewDateSet()
	for _, h := range public {
		publicDates.Add(compliance.DateOf(h.Date))
	}

	userHolidays, err := s.holidays.HolidayDates(user.ID, year)
	if err != nil {
		return nil, compliance.Request{}, nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	receipts, err := s.receipts.ReceiptDates(user.ID, year)
	if err != nil {
		return nil, compliance.Request{}, nil, fmt.Errorf("failed to load receipts: %w", err)
	}

	req := compliance.Request{
		Year:               year,
		WorkingCountryCode: settings.WorkingCountryCode,
		Threshold:          settings.HomeworkingThreshold,
		DefaultWeekdays:    settings.WorkingDays,
		Periods:            periods,
		PublicHolidays:     publicDates,
		UserHolidays:       userHolidays,
		ReceiptDates:       receipts,
		Today:              s.Today(),
	}
	return user, req, public, nil
}

func (s *DashboardService) user(chatID int64) (*models.User, error) {
	user, err := s.users.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func FormatSummary(summary compliance.Summary) string {
	status := "✅ Compliant"
	if summary.IsAtRisk {
		status = "⚠️ At risk"
	}

	lines := []string{
		fmt.Sprintf("📊 %d summary (%s)", summary.Year, summary.WorkingCountryCode),
		"",
		status,
		"",
		fmt.Sprintf("📅 Working days in the year: %d", summary.TotalWorkingDays),
		fmt.Sprintf("⏮ Working days so far: %d", summary.PastWorkingDays),
		fmt.Sprintf("🧾 Days with proof: %d", summary.DaysWithProof),
		fmt.Sprintf("🏠 Days without proof: %d", summary.DaysWithoutProof),
		fmt.Sprintf("🔮 Forecast home-working days: %d / %d", summary.ForecastHomeworkingDays, summary.HomeworkingThreshold),
		fmt.Sprintf("📈 Forecast days without proof: %d", summary.ForecastedDaysWithoutProof),
		fmt.Sprintf("🎯 Home-working days left: %d", summary.RemainingAllowedHomeworkingDays),
	}
	return strings.Join(lines, "\n")
}

func FormatDayCheck(check *DayCheck) string {
	lines := []string{
		fmt.Sprintf("📅 %s (%s)", check.Date, check.Date.Weekday()),
		fmt.Sprintf("🗓 Regime: %s", check.Regime),
	}

	if check.PublicHoliday != nil {
		lines = append(lines, "🎌 Public holiday: "+check.PublicHoliday.Name)
	}
	if check.UserHoliday {
		lines = append(lines, "🏖️ Personal holiday")
	}

	if check.WorkingDay {
		lines = append(lines, "✅ Working day")
		if check.HasReceipt {
			lines = append(lines, "🧾 Proved by a receipt")
		} else {
			lines = append(lines, "🏠 No receipt, counts as home-working once past")
		}
	} else {
		lines = append(lines, "❌ Not a working day")
	}

	return strings.Join(lines, "\n")
}

// FormatMonths renders the monthly breakdown for the chat
func FormatMonths(d *Dashboard) string {
	lines := []string{
		fmt.Sprintf("🗓 %d by month (%s)", d.Summary.Year, d.Summary.WorkingCountryCode),
		"",
		"Month  Work  Past  Proof  Home",
	}
	for _, m := range d.Months {
		lines = append(lines, fmt.Sprintf("%-5s  %4d  %4d  %5d  %4d",
			m.Month.String()[:3], m.WorkingDays, m.PastWorkingDays, m.DaysWithProof, m.DaysWithoutProof))
	}
	lines = append(lines, "",
		fmt.Sprintf("Total  %4d  %4d  %5d  %4d",
			d.Summary.TotalWorkingDays, d.Summary.PastWorkingDays, d.Summary.DaysWithProof, d.Summary.DaysWithoutProof))
	return strings.Join(lines, "\n")
}
