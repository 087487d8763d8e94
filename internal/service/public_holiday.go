package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/pkg/compliance"
	"receiptor-bot/pkg/nager"

	"github.com/sirupsen/logrus"
)

// HolidaySource is the external public-holiday calendar.
type HolidaySource interface {
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]nager.Holiday, error)
	AvailableCountries(ctx context.Context) ([]nager.Country, error)
}

// PublicHolidayService reads public holidays through a local cache. A
// country and year missing from the cache are fetched from the source and
// stored before being returned.
type PublicHolidayService struct {
	repo   repository.PublicHolidayRepository
	source HolidaySource
	logger *logrus.Logger

	mu sync.Mutex // serializes cache refreshes
}

func NewPublicHolidayService(repo repository.PublicHolidayRepository, source HolidaySource) *PublicHolidayService {
	return &PublicHolidayService{
		repo:   repo,
		source: source,
		logger: newLogger(),
	}
}

func (s *PublicHolidayService) Holidays(ctx context.Context, year int, countryCode string) ([]models.PublicHoliday, error) {
	countryCode = strings.ToUpper(countryCode)

	cached, err := s.repo.HasCountryYear(countryCode, year)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday cache: %w", err)
	}
	if cached {
		return s.repo.GetByCountryYear(countryCode, year)
	}

	return s.Refresh(ctx, year, countryCode)
}

// Dates returns the public holidays of a country and year as a date set.
func (s *PublicHolidayService) Dates(ctx context.Context, year int, countryCode string) (compliance.DateSet, error) {
	holidays, err := s.Holidays(ctx, year, countryCode)
	if err != nil {
		return nil, err
	}

	set := compliance.NewDateSet()
	for _, h := range holidays {
		set.Add(compliance.DateOf(h.Date))
	}
	return set, nil
}

// HolidayOn returns the public holiday falling on date, or nil.
func (s *PublicHolidayService) HolidayOn(ctx context.Context, date time.Time, countryCode string) (*models.PublicHoliday, error) {
	holidays, err := s.Holidays(ctx, date.Year(), countryCode)
	if err != nil {
		return nil, err
	}

	day := compliance.DateOf(date)
	for i := range holidays {
		if compliance.DateOf(holidays[i].Date) == day {
			return &holidays[i], nil
		}
	}
	return nil, nil
}

// Refresh fetches a country and year from the source and replaces the cache.
func (s *PublicHolidayService) Refresh(ctx context.Context, year int, countryCode string) ([]models.PublicHoliday, error) {
	countryCode = strings.ToUpper(countryCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	fetched, err := s.source.PublicHolidays(ctx, year, countryCode)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"country": countryCode,
			"year":    year,
		}).Warn("Failed to fetch public holidays")
		return nil, fmt.Errorf("failed to fetch public holidays for %s %d: %w", countryCode, year, err)
	}

	holidays := make([]models.PublicHoliday, 0, len(fetched))
	seen := make(map[time.Time]struct{}, len(fetched))
	for _, h := range fetched {
		date, err := h.Time()
		if err != nil {
			return nil, err
		}
		// regional holidays may repeat a date
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}

		holidays = append(holidays, models.PublicHoliday{
			CountryCode: countryCode,
			Year:        year,
			Date:        date,
			Name:        h.Name,
			LocalName:   h.LocalName,
		})
	}

	if err := s.repo.ReplaceCountryYear(countryCode, year, holidays); err != nil {
		return nil, fmt.Errorf("failed to store public holidays: %w", err)
	}

	return holidays, nil
}

func (s *PublicHolidayService) Countries(ctx context.Context) ([]nager.Country, error) {
	return s.source.AvailableCountries(ctx)
}

func FormatPublicHolidays(holidays []models.PublicHoliday, year int, countryCode string) string {
	if len(holidays) == 0 {
		return fmt.Sprintf("📭 No public holidays for %s in %d.", countryCode, year)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🎌 Public holidays %s %d:", countryCode, year))
	lines = append(lines, "")

	for _, h := range holidays {
		line := fmt.Sprintf("%s %s %s", h.Date.Format(models.DateLayout), compliance.DateOf(h.Date).Weekday(), h.Name)
		if h.LocalName != "" && h.LocalName != h.Name {
			line += " (" + h.LocalName + ")"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func FormatCountries(countries []nager.Country) string {
	if len(countries) == 0 {
		return "📭 No countries available."
	}

	var lines []string
	lines = append(lines, "🌍 Supported countries:")
	for _, c := range countries {
		lines = append(lines, fmt.Sprintf("%s %s", c.CountryCode, c.Name))
	}
	return strings.Join(lines, "\n")
}
