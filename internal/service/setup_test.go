package service

import (
	"testing"
	"time"

	"receiptor-bot/internal/clock"
	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/internal/testutil"

	"go.uber.org/mock/gomock"
)

type testServices struct {
	userRepo  *repository.GormUserRepository
	users     *UserService
	schedules *ScheduleService
	holidays  *HolidayService
	public    *PublicHolidayService
	receipts  *ReceiptService
	dashboard *DashboardService
	report    *ReportService
	source    *MockHolidaySource
}

func setupServices(t *testing.T, now time.Time) *testServices {
	t.Helper()

	db := testutil.NewDB(t)

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		t.Fatalf("user repository: %v", err)
	}
	scheduleRepo, err := repository.NewGormWorkScheduleRepository(db)
	if err != nil {
		t.Fatalf("schedule repository: %v", err)
	}
	holidayRepo, err := repository.NewGormUserHolidayRepository(db)
	if err != nil {
		t.Fatalf("holiday repository: %v", err)
	}
	publicRepo, err := repository.NewGormPublicHolidayRepository(db)
	if err != nil {
		t.Fatalf("public holiday repository: %v", err)
	}
	receiptRepo, err := repository.NewGormReceiptRepository(db)
	if err != nil {
		t.Fatalf("receipt repository: %v", err)
	}

	ctrl := gomock.NewController(t)
	source := NewMockHolidaySource(ctrl)

	s := &testServices{
		userRepo:  userRepo,
		users:     NewUserService(userRepo, scheduleRepo, holidayRepo, receiptRepo),
		schedules: NewScheduleService(scheduleRepo),
		holidays:  NewHolidayService(holidayRepo),
		public:    NewPublicHolidayService(publicRepo, source),
		receipts:  NewReceiptService(receiptRepo),
		source:    source,
	}
	s.dashboard = NewDashboardService(userRepo, s.schedules, s.holidays, s.public, s.receipts, clock.NewFixedClock(now), time.UTC)
	s.report = NewReportService(s.dashboard, s.users, s.receipts, s.holidays, s.schedules)

	return s
}

func (s *testServices) createUser(t *testing.T, chatID int64) *models.User {
	t.Helper()

	user, err := s.users.CreateUser(chatID, "tester", "Test", "User")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}
