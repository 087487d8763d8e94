package service

import (
	"errors"
	"testing"
	"time"

	"receiptor-bot/internal/testutil"
	"receiptor-bot/pkg/compliance"
)

func TestScheduleServicePeriods(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	user := s.createUser(t, 1)

	fullTime, err := s.schedules.AddPeriod(user.ID, PeriodInput{
		Start:       testutil.Day(t, "2024-01-01"),
		WorkingDays: []int{4, 0, 1, 2, 3},
		Description: " full time ",
	})
	if err != nil {
		t.Fatalf("AddPeriod() error = %v", err)
	}
	if fullTime.Description != "full time" {
		t.Errorf("Description = %q, want trimmed", fullTime.Description)
	}

	leave, err := s.schedules.AddPeriod(user.ID, PeriodInput{
		Start: testutil.Day(t, "2024-06-01"),
		End:   testutil.DayPtr(t, "2024-06-30"),
	})
	if err != nil {
		t.Fatalf("AddPeriod(full leave) error = %v", err)
	}

	periods, err := s.schedules.CompliancePeriods(user.ID)
	if err != nil {
		t.Fatalf("CompliancePeriods() error = %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("CompliancePeriods() returned %d periods, want 2", len(periods))
	}

	resolver := compliance.NewResolver(periods, compliance.DefaultWeekdays)
	if got := resolver.RegimeFor(compliance.NewDate(2024, time.June, 12)); got.Len() != 0 {
		t.Errorf("RegimeFor(June 12) = %v, want full leave", got)
	}
	if got := resolver.RegimeFor(compliance.NewDate(2024, time.July, 1)); got != compliance.DefaultWeekdays {
		t.Errorf("RegimeFor(July 1) = %v, want Mon-Fri", got)
	}

	if _, err := s.schedules.UpdatePeriod(user.ID, leave.ID, PeriodInput{
		Start:       testutil.Day(t, "2024-06-01"),
		End:         testutil.DayPtr(t, "2024-06-30"),
		WorkingDays: []int{0, 1},
	}); err != nil {
		t.Fatalf("UpdatePeriod() error = %v", err)
	}

	listed, err := s.schedules.ListPeriods(user.ID)
	if err != nil {
		t.Fatalf("ListPeriods() error = %v", err)
	}
	if len(listed[1].WorkingDays) != 2 {
		t.Errorf("updated WorkingDays = %v, want [0 1]", listed[1].WorkingDays)
	}

	if err := s.schedules.DeletePeriod(user.ID, leave.ID); err != nil {
		t.Fatalf("DeletePeriod() error = %v", err)
	}
	if err := s.schedules.DeletePeriod(user.ID, leave.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("DeletePeriod(again) error = %v, want %v", err, ErrScheduleNotFound)
	}
	if _, err := s.schedules.UpdatePeriod(user.ID, leave.ID, PeriodInput{Start: testutil.Day(t, "2024-06-01")}); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("UpdatePeriod(deleted) error = %v, want %v", err, ErrScheduleNotFound)
	}
}

func TestScheduleServiceValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      PeriodInput
		wantErr error
	}{
		{
			name:    "end before start",
			in:      PeriodInput{Start: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), End: ptrTime(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC))},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "bad weekday",
			in:      PeriodInput{Start: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), WorkingDays: []int{-1}},
			wantErr: ErrInvalidWeekdays,
		},
	}

	s := setupServices(t, time.Now())
	user := s.createUser(t, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.schedules.AddPeriod(user.ID, tt.in); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddPeriod() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// a single-day period is valid
	day := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	if _, err := s.schedules.AddPeriod(user.ID, PeriodInput{Start: day, End: &day}); err != nil {
		t.Errorf("AddPeriod(single day) error = %v", err)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
