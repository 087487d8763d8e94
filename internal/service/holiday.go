package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/pkg/compliance"

	"github.com/sirupsen/logrus"
)

// HolidayService manages the personal day-off ranges of users.
type HolidayService struct {
	repo   repository.UserHolidayRepository
	logger *logrus.Logger
}

func NewHolidayService(repo repository.UserHolidayRepository) *HolidayService {
	return &HolidayService{
		repo:   repo,
		logger: newLogger(),
	}
}

func (s *HolidayService) AddHoliday(userID uint, start, end time.Time, description string) (*models.UserHoliday, error) {
	holiday, err := newHoliday(userID, start, end, description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(holiday); err != nil {
		s.logger.WithError(err).Error("Failed to create holiday")
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"start":   holiday.StartDate.Format(models.DateLayout),
		"end":     holiday.EndDate.Format(models.DateLayout),
	}).Info("Holiday added")

	return holiday, nil
}

func (s *HolidayService) UpdateHoliday(userID, id uint, start, end time.Time, description string) (*models.UserHoliday, error) {
	holiday, err := newHoliday(userID, start, end, description)
	if err != nil {
		return nil, err
	}
	holiday.ID = id

	if err := s.repo.Update(holiday); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}

	return holiday, nil
}

// ListHolidays returns the ranges overlapping year, or all of them when year is 0.
func (s *HolidayService) ListHolidays(userID uint, year int) ([]models.UserHoliday, error) {
	if year == 0 {
		return s.repo.GetByUserID(userID)
	}
	return s.repo.GetByUserIDAndYear(userID, year)
}

func (s *HolidayService) DeleteHoliday(userID, id uint) error {
	err := s.repo.Delete(userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrHolidayNotFound
	}
	return err
}

// HolidayDates expands the user's ranges touching year into single dates.
func (s *HolidayService) HolidayDates(userID uint, year int) (compliance.DateSet, error) {
	holidays, err := s.repo.GetByUserIDAndYear(userID, year)
	if err != nil {
		return nil, err
	}

	periods := make([]compliance.HolidayPeriod, 0, len(holidays))
	for _, h := range holidays {
		periods = append(periods, compliance.HolidayPeriod{
			Start:       compliance.DateOf(h.StartDate),
			End:         compliance.DateOf(h.EndDate),
			Description: h.Description,
		})
	}
	return compliance.ExpandHolidayPeriods(periods), nil
}

func newHoliday(userID uint, start, end time.Time, description string) (*models.UserHoliday, error) {
	start, end = models.DateOnly(start), models.DateOnly(end)
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	return &models.UserHoliday{
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		Description: strings.TrimSpace(description),
	}, nil
}

func FormatHolidays(holidays []models.UserHoliday, year int) string {
	if len(holidays) == 0 {
		if year != 0 {
			return fmt.Sprintf("📭 No holidays in %d.", year)
		}
		return "📭 No holidays."
	}

	var lines []string
	if year != 0 {
		lines = append(lines, fmt.Sprintf("🏖️ Holidays %d:", year))
	} else {
		lines = append(lines, "🏖️ Holidays:")
	}
	lines = append(lines, "")

	total := 0
	for _, h := range holidays {
		line := fmt.Sprintf("#%d %s → %s (%d d)", h.ID, h.StartDate.Format(models.DateLayout), h.EndDate.Format(models.DateLayout), h.Days())
		if h.Description != "" {
			line += " " + h.Description
		}
		lines = append(lines, line)
		total += h.Days()
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📊 Calendar days: %d", total))
	return strings.Join(lines, "\n")
}
