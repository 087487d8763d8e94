package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReportServiceRender(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC))
	seedYear(t, s)

	report, err := s.report.Render(context.Background(), 1, 2024)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"FISCAL COMPLIANCE REPORT 2024",
		"Account: Test User",
		"Status: AT RISK",
		"Total working days:",
		"Receipts (3)",
		"2024-01-10 Wed manual",
		"Public holidays excluded (2)",
		"2024-12-25 Christmas Day",
		"Personal holiday periods (1)",
		"Work schedule periods (1)",
		"2024-06-01 → 2024-06-30 none parental leave",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Render() output is missing %q\n%s", want, report)
		}
	}

	// receipts are listed oldest first
	if strings.Index(report, "2024-01-10") > strings.Index(report, "2024-01-13") {
		t.Error("Render() lists receipts out of order")
	}
}

func TestReportServiceRenderWithoutProfile(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())

	if _, err := s.report.Render(context.Background(), 9, 2024); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Render() error = %v, want %v", err, ErrUserNotFound)
	}
}
