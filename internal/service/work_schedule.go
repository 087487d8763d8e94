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

// PeriodInput describes a schedule period as entered by the user.
type PeriodInput struct {
	Start       time.Time
	End         *time.Time // nil = open-ended
	WorkingDays []int      // empty = full leave
	Description string
}

type ScheduleService struct {
	repo   repository.WorkScheduleRepository
	logger *logrus.Logger
}

func NewScheduleService(repo repository.WorkScheduleRepository) *ScheduleService {
	return &ScheduleService{
		repo:   repo,
		logger: newLogger(),
	}
}

func (s *ScheduleService) AddPeriod(userID uint, in PeriodInput) (*models.WorkSchedulePeriod, error) {
	period, err := s.buildPeriod(userID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(period); err != nil {
		return nil, fmt.Errorf("failed to create schedule period: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"id":      period.ID,
		"days":    period.WorkingDays,
	}).Info("Schedule period added")

	return period, nil
}

func (s *ScheduleService) UpdatePeriod(userID, id uint, in PeriodInput) (*models.WorkSchedulePeriod, error) {
	period, err := s.buildPeriod(userID, in)
	if err != nil {
		return nil, err
	}
	period.ID = id

	if err := s.repo.Update(period); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule period: %w", err)
	}

	return period, nil
}

func (s *ScheduleService) ListPeriods(userID uint) ([]*models.WorkSchedulePeriod, error) {
	return s.repo.GetByUserID(userID)
}

func (s *ScheduleService) DeletePeriod(userID, id uint) error {
	err := s.repo.Delete(userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrScheduleNotFound
	}
	return err
}

// CompliancePeriods loads the user's periods in the form the resolver takes.
func (s *ScheduleService) CompliancePeriods(userID uint) ([]compliance.SchedulePeriod, error) {
	periods, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := make([]compliance.SchedulePeriod, 0, len(periods))
	for _, p := range periods {
		cp, err := toSchedulePeriod(p)
		if err != nil {
			return nil, fmt.Errorf("schedule period %d: %w", p.ID, err)
		}
		result = append(result, cp)
	}
	return result, nil
}

func (s *ScheduleService) buildPeriod(userID uint, in PeriodInput) (*models.WorkSchedulePeriod, error) {
	start := models.DateOnly(in.Start)

	var end *time.Time
	if in.End != nil {
		e := models.DateOnly(*in.End)
		if e.Before(start) {
			return nil, ErrInvalidPeriod
		}
		end = &e
	}

	days, err := compliance.ParseWeekdays(in.WorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeekdays, err)
	}

	return &models.WorkSchedulePeriod{
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		WorkingDays: days.Ints(),
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func toSchedulePeriod(p *models.WorkSchedulePeriod) (compliance.SchedulePeriod, error) {
	days, err := compliance.ParseWeekdays(p.WorkingDays)
	if err != nil {
		return compliance.SchedulePeriod{}, err
	}

	cp := compliance.SchedulePeriod{
		Start:       compliance.DateOf(p.StartDate),
		WorkingDays: days,
		Description: p.Description,
	}
	if p.EndDate != nil {
		end := compliance.DateOf(*p.EndDate)
		cp.End = &end
	}
	return cp, nil
}

// FormatPeriods renders the schedule periods for the chat
func FormatPeriods(periods []*models.WorkSchedulePeriod) string {
	if len(periods) == 0 {
		return "📭 No schedule periods. The default working days apply all year."
	}

	var lines []string
	lines = append(lines, "📅 Schedule periods:")
	lines = append(lines, "")

	for _, p := range periods {
		end := "ongoing"
		if p.EndDate != nil {
			end = p.EndDate.Format(models.DateLayout)
		}

		days, _ := compliance.ParseWeekdays(p.WorkingDays)
		regime := days.String()
		if days.Len() == 0 {
			regime = "full leave"
		}

		line := fmt.Sprintf("#%d %s → %s: %s", p.ID, p.StartDate.Format(models.DateLayout), end, regime)
		if p.Description != "" {
			line += " (" + p.Description + ")"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
