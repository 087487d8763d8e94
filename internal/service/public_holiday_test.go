package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"receiptor-bot/internal/testutil"
	"receiptor-bot/pkg/compliance"
	"receiptor-bot/pkg/nager"

	"go.uber.org/mock/gomock"
)

var luHolidays2024 = []nager.Holiday{
	{Date: "2024-01-01", Name: "New Year's Day", LocalName: "Neijoerschdag", CountryCode: "LU"},
	{Date: "2024-06-23", Name: "National Day", LocalName: "Nationalfeierdag", CountryCode: "LU"},
	{Date: "2024-12-25", Name: "Christmas Day", LocalName: "Chrëschtdag", CountryCode: "LU"},
}

func TestPublicHolidayServiceCachesFetchedYear(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	ctx := context.Background()

	s.source.EXPECT().
		PublicHolidays(gomock.Any(), 2024, "LU").
		Return(luHolidays2024, nil).
		Times(1)

	first, err := s.public.Dates(ctx, 2024, "lu")
	if err != nil {
		t.Fatalf("Dates() error = %v", err)
	}
	if first.Len() != 3 {
		t.Errorf("Dates() len = %d, want 3", first.Len())
	}

	// served from the cache, the source is not called again
	second, err := s.public.Dates(ctx, 2024, "LU")
	if err != nil {
		t.Fatalf("Dates() second call error = %v", err)
	}
	if second.Len() != 3 || !second.Has(compliance.NewDate(2024, time.June, 23)) {
		t.Errorf("cached Dates() = %v, want the three LU holidays", second.Sorted())
	}

	holiday, err := s.public.HolidayOn(ctx, testutil.Day(t, "2024-12-25"), "LU")
	if err != nil || holiday == nil || holiday.Name != "Christmas Day" {
		t.Errorf("HolidayOn(Dec 25) = %+v, %v, want Christmas Day", holiday, err)
	}
	holiday, err = s.public.HolidayOn(ctx, testutil.Day(t, "2024-12-24"), "LU")
	if err != nil || holiday != nil {
		t.Errorf("HolidayOn(Dec 24) = %+v, %v, want nil", holiday, err)
	}
}

func TestPublicHolidayServiceRefreshReplaces(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	ctx := context.Background()

	gomock.InOrder(
		s.source.EXPECT().PublicHolidays(gomock.Any(), 2025, "BE").Return([]nager.Holiday{
			{Date: "2025-07-21", Name: "National Day"},
		}, nil),
		s.source.EXPECT().PublicHolidays(gomock.Any(), 2025, "BE").Return([]nager.Holiday{
			{Date: "2025-07-21", Name: "National Day"},
			{Date: "2025-07-21", Name: "National Day (regional)"},
			{Date: "2025-11-11", Name: "Armistice Day"},
		}, nil),
	)

	if _, err := s.public.Refresh(ctx, 2025, "BE"); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	got, err := s.public.Refresh(ctx, 2025, "BE")
	if err != nil {
		t.Fatalf("Refresh() second call error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Refresh() stored %d holidays, want 2 after dropping the duplicate date", len(got))
	}

	cached, err := s.public.Holidays(ctx, 2025, "BE")
	if err != nil || len(cached) != 2 {
		t.Errorf("Holidays() = %d, %v, want 2 cached rows", len(cached), err)
	}
}

func TestPublicHolidayServiceSourceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ret     []nager.Holiday
		err     error
		wantErr error
	}{
		{name: "unknown country", err: nager.ErrNoData, wantErr: nager.ErrNoData},
		{name: "upstream down", err: &nager.StatusError{URL: "x", StatusCode: 502}},
		{name: "malformed date", ret: []nager.Holiday{{Date: "24-01-01"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := setupServices(t, time.Now())
			s.source.EXPECT().PublicHolidays(gomock.Any(), 2024, "XX").Return(tt.ret, tt.err)

			_, err := s.public.Dates(context.Background(), 2024, "XX")
			if err == nil {
				t.Fatal("Dates() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Dates() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublicHolidayServiceCountries(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	s.source.EXPECT().AvailableCountries(gomock.Any()).Return([]nager.Country{{CountryCode: "LU", Name: "Luxembourg"}}, nil)

	countries, err := s.public.Countries(context.Background())
	if err != nil || len(countries) != 1 {
		t.Fatalf("Countries() = %v, %v", countries, err)
	}
	if got := FormatCountries(countries); got != "🌍 Supported countries:\nLU Luxembourg" {
		t.Errorf("FormatCountries() = %q", got)
	}
}
