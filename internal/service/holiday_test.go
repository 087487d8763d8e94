package service

import (
	"errors"
	"testing"
	"time"

	"receiptor-bot/internal/testutil"
	"receiptor-bot/pkg/compliance"
)

func TestHolidayServiceDates(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	user := s.createUser(t, 1)

	if _, err := s.holidays.AddHoliday(user.ID, testutil.Day(t, "2023-12-30"), testutil.Day(t, "2024-01-02"), "new year"); err != nil {
		t.Fatalf("AddHoliday() error = %v", err)
	}
	summer, err := s.holidays.AddHoliday(user.ID, testutil.Day(t, "2024-08-05"), testutil.Day(t, "2024-08-09"), "")
	if err != nil {
		t.Fatalf("AddHoliday() error = %v", err)
	}

	dates, err := s.holidays.HolidayDates(user.ID, 2024)
	if err != nil {
		t.Fatalf("HolidayDates() error = %v", err)
	}
	// 4 days around new year plus 5 in August
	if dates.Len() != 9 {
		t.Errorf("HolidayDates() len = %d, want 9", dates.Len())
	}
	if !dates.Has(compliance.NewDate(2024, time.January, 2)) || !dates.Has(compliance.NewDate(2024, time.August, 9)) {
		t.Error("HolidayDates() is missing range ends")
	}

	if _, err := s.holidays.UpdateHoliday(user.ID, summer.ID, testutil.Day(t, "2024-08-05"), testutil.Day(t, "2024-08-16"), "summer"); err != nil {
		t.Fatalf("UpdateHoliday() error = %v", err)
	}

	list, err := s.holidays.ListHolidays(user.ID, 2024)
	if err != nil || len(list) != 2 {
		t.Fatalf("ListHolidays(2024) = %d, %v, want 2", len(list), err)
	}
	if list[1].Days() != 12 {
		t.Errorf("updated holiday Days() = %d, want 12", list[1].Days())
	}

	if err := s.holidays.DeleteHoliday(user.ID, summer.ID); err != nil {
		t.Fatalf("DeleteHoliday() error = %v", err)
	}
	if err := s.holidays.DeleteHoliday(user.ID, summer.ID); !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("DeleteHoliday(again) error = %v, want %v", err, ErrHolidayNotFound)
	}
}

func TestHolidayServiceRejectsReversedRange(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	user := s.createUser(t, 1)

	if _, err := s.holidays.AddHoliday(user.ID, testutil.Day(t, "2024-05-02"), testutil.Day(t, "2024-05-01"), ""); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("AddHoliday() error = %v, want %v", err, ErrInvalidPeriod)
	}
	if _, err := s.holidays.UpdateHoliday(user.ID, 1, testutil.Day(t, "2024-05-02"), testutil.Day(t, "2024-05-01"), ""); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("UpdateHoliday() error = %v, want %v", err, ErrInvalidPeriod)
	}
	if _, err := s.holidays.UpdateHoliday(user.ID, 42, testutil.Day(t, "2024-05-01"), testutil.Day(t, "2024-05-02"), ""); !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("UpdateHoliday(missing) error = %v, want %v", err, ErrHolidayNotFound)
	}
}
