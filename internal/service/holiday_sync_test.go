package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"receiptor-bot/internal/clock"
	"receiptor-bot/pkg/nager"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestHolidaySyncJobRun(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	s := setupServices(t, now)

	s.createUser(t, 1)
	s.createUser(t, 2)
	if _, err := s.users.UpdateSettings(2, SettingsUpdate{WorkingCountryCode: strPtr("FR")}); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	day := []nager.Holiday{{Date: "2024-05-01", Name: "Labour Day"}}
	nextYear := []nager.Holiday{{Date: "2025-05-01", Name: "Labour Day"}}

	s.source.EXPECT().PublicHolidays(gomock.Any(), 2024, "LU").Return(day, nil)
	s.source.EXPECT().PublicHolidays(gomock.Any(), 2025, "LU").Return(nextYear, nil)
	s.source.EXPECT().PublicHolidays(gomock.Any(), 2024, "FR").Return(day, nil)
	s.source.EXPECT().PublicHolidays(gomock.Any(), 2025, "FR").Return(nil, &nager.StatusError{URL: "FR/2025", StatusCode: 500})

	job, err := NewHolidaySyncJob(s.userRepo, s.public, clock.NewFixedClock(now), "0 3 * * *", time.Second)
	if err != nil {
		t.Fatalf("NewHolidaySyncJob() error = %v", err)
	}

	got, err := job.Run(context.Background())

	var statusErr *nager.StatusError
	if !errors.As(err, &statusErr) {
		t.Errorf("Run() error = %v, want the FR failure", err)
	}

	want := SyncResult{Refreshed: 3, Holidays: 3, Failed: []string{"FR 2025"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}

	// synced years are now served from the cache
	dates, err := s.public.Dates(context.Background(), 2025, "LU")
	if err != nil || dates.Len() != 1 {
		t.Errorf("Dates(2025, LU) = %v, %v, want one cached holiday", dates, err)
	}
}

func TestHolidaySyncJobDefaultsToWorkingCountry(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	s.source.EXPECT().PublicHolidays(gomock.Any(), 2030, "LU").Return([]nager.Holiday{}, nil)

	job, err := NewHolidaySyncJob(s.userRepo, s.public, &clock.RealClock{}, "@daily", 0)
	if err != nil {
		t.Fatalf("NewHolidaySyncJob() error = %v", err)
	}

	got, err := job.SyncYears(context.Background(), 2030)
	if err != nil {
		t.Fatalf("SyncYears() error = %v", err)
	}
	if got.Refreshed != 1 || got.Holidays != 0 {
		t.Errorf("SyncYears() = %+v, want one empty refresh", got)
	}
}

func TestHolidaySyncJobSchedule(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())

	if _, err := NewHolidaySyncJob(s.userRepo, s.public, &clock.RealClock{}, "not a spec", 0); err == nil {
		t.Error("NewHolidaySyncJob(bad spec) error = nil, want error")
	}

	job, err := NewHolidaySyncJob(s.userRepo, s.public, &clock.RealClock{}, "0 3 * * *", 0)
	if err != nil {
		t.Fatalf("NewHolidaySyncJob() error = %v", err)
	}

	job.Start()
	select {
	case <-job.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("Stop() did not finish")
	}
}

func TestHolidaySyncJobCancelled(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	job, err := NewHolidaySyncJob(s.userRepo, s.public, &clock.RealClock{}, "@daily", 0)
	if err != nil {
		t.Fatalf("NewHolidaySyncJob() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := job.SyncYears(ctx, 2024); !errors.Is(err, context.Canceled) {
		t.Errorf("SyncYears(cancelled) error = %v, want %v", err, context.Canceled)
	}
}
