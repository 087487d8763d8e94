package repository

import (
	"errors"
	"testing"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/testutil"
)

func newScheduleRepo(t *testing.T) *GormWorkScheduleRepository {
	t.Helper()

	repo, err := NewGormWorkScheduleRepository(testutil.NewDB(t))
	if err != nil {
		t.Fatalf("NewGormWorkScheduleRepository() error = %v", err)
	}
	return repo
}

func TestGormWorkScheduleRepositoryCRUD(t *testing.T) {
	t.Parallel()

	repo := newScheduleRepo(t)

	later := &models.WorkSchedulePeriod{
		UserID:      1,
		StartDate:   testutil.Day(t, "2024-07-01"),
		WorkingDays: []int{0, 1, 2},
		Description: "part time",
	}
	earlier := &models.WorkSchedulePeriod{
		UserID:      1,
		StartDate:   testutil.Day(t, "2024-03-01"),
		EndDate:     testutil.DayPtr(t, "2024-03-31"),
		WorkingDays: []int{},
		Description: "leave",
	}
	other := &models.WorkSchedulePeriod{
		UserID:      2,
		StartDate:   testutil.Day(t, "2024-01-01"),
		WorkingDays: []int{0},
	}

	for _, p := range []*models.WorkSchedulePeriod{later, earlier, other} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	periods, err := repo.GetByUserID(1)
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("GetByUserID() returned %d periods, want 2", len(periods))
	}
	if periods[0].ID != earlier.ID {
		t.Errorf("GetByUserID()[0] = %d, want earliest start %d", periods[0].ID, earlier.ID)
	}
	if !periods[1].IsOpenEnded() {
		t.Error("open-ended period lost its nil end date")
	}
	if len(periods[0].WorkingDays) != 0 {
		t.Errorf("full-leave WorkingDays = %v, want empty", periods[0].WorkingDays)
	}

	// another user's period is invisible
	got, err := repo.GetByID(1, other.ID)
	if err != nil || got != nil {
		t.Errorf("GetByID(foreign) = %v, %v, want nil, nil", got, err)
	}

	earlier.EndDate = nil
	earlier.WorkingDays = []int{0, 1, 2, 3, 4}
	if err := repo.Update(earlier); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err = repo.GetByID(1, earlier.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID() = %v, %v", got, err)
	}
	if got.EndDate != nil {
		t.Errorf("Update() kept end date %v, want nil", got.EndDate)
	}
	if len(got.WorkingDays) != 5 {
		t.Errorf("Update() WorkingDays = %v, want 5 days", got.WorkingDays)
	}

	if err := repo.Delete(2, later.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(foreign) error = %v, want %v", err, ErrNotFound)
	}
	if err := repo.Delete(1, later.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestGormWorkScheduleRepositoryRejectsInvalid(t *testing.T) {
	t.Parallel()

	repo := newScheduleRepo(t)

	tests := []struct {
		name   string
		period *models.WorkSchedulePeriod
	}{
		{
			name: "end before start",
			period: &models.WorkSchedulePeriod{
				UserID:    1,
				StartDate: testutil.Day(t, "2024-05-10"),
				EndDate:   testutil.DayPtr(t, "2024-05-01"),
			},
		},
		{
			name: "weekday out of range",
			period: &models.WorkSchedulePeriod{
				UserID:      1,
				StartDate:   testutil.Day(t, "2024-05-10"),
				WorkingDays: []int{7},
			},
		},
		{
			name:   "missing user",
			period: &models.WorkSchedulePeriod{StartDate: testutil.Day(t, "2024-05-10")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(tt.period); err == nil {
				t.Error("Create() error = nil, want error")
			}
		})
	}
}
