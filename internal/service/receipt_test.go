package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/testutil"
	"receiptor-bot/pkg/compliance"

	"github.com/google/uuid"
)

func TestReceiptServiceLifecycle(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	user := s.createUser(t, 1)

	typed, err := s.receipts.AddManual(user.ID, time.Date(2024, 3, 4, 18, 45, 0, 0, time.UTC), " lunch ")
	if err != nil {
		t.Fatalf("AddManual() error = %v", err)
	}
	if _, err := uuid.Parse(typed.ID); err != nil {
		t.Errorf("receipt id %q is not a UUID", typed.ID)
	}
	if typed.OCRStatus != models.OCRStatusManual || typed.Notes != "lunch" {
		t.Errorf("AddManual() = %s/%q, want manual/lunch", typed.OCRStatus, typed.Notes)
	}

	photo, err := s.receipts.AddPhoto(user.ID, "file-1", nil, "")
	if err != nil {
		t.Fatalf("AddPhoto() error = %v", err)
	}
	if photo.HasDate() || photo.OCRStatus != models.OCRStatusSkipped {
		t.Errorf("AddPhoto(no date) = %v/%s, want undated/skipped", photo.ReceiptDate, photo.OCRStatus)
	}

	if _, err := s.receipts.AddPhoto(user.ID, "file-2", testutil.DayPtr(t, "2024-03-04"), ""); err != nil {
		t.Fatalf("AddPhoto(with date) error = %v", err)
	}
	if _, err := s.receipts.AddManual(user.ID, testutil.Day(t, "2023-12-29"), ""); err != nil {
		t.Fatalf("AddManual(previous year) error = %v", err)
	}

	dates, err := s.receipts.ReceiptDates(user.ID, 2024)
	if err != nil {
		t.Fatalf("ReceiptDates() error = %v", err)
	}
	// two receipts on the same day prove one date; the undated one proves nothing
	if dates.Len() != 1 || !dates.Has(compliance.NewDate(2024, time.March, 4)) {
		t.Errorf("ReceiptDates() = %v, want {2024-03-04}", dates.Sorted())
	}

	updated, err := s.receipts.SetDate(user.ID, photo.ID, testutil.Day(t, "2024-03-05"))
	if err != nil {
		t.Fatalf("SetDate() error = %v", err)
	}
	if updated.FormatDate() != "2024-03-05" || updated.OCRStatus != models.OCRStatusManual {
		t.Errorf("SetDate() = %s/%s, want 2024-03-05/manual", updated.FormatDate(), updated.OCRStatus)
	}

	undated, err := s.receipts.Undated(user.ID)
	if err != nil || len(undated) != 0 {
		t.Errorf("Undated() = %d, %v, want 0", len(undated), err)
	}

	if err := s.receipts.DeleteReceipt(user.ID, typed.ID); err != nil {
		t.Fatalf("DeleteReceipt() error = %v", err)
	}
	if err := s.receipts.DeleteReceipt(user.ID, typed.ID); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("DeleteReceipt(again) error = %v, want %v", err, ErrReceiptNotFound)
	}
}

func TestReceiptServiceRejectsForeignAndMalformedIDs(t *testing.T) {
	t.Parallel()

	s := setupServices(t, time.Now())
	owner := s.createUser(t, 1)
	other := s.createUser(t, 2)

	receipt, err := s.receipts.AddManual(owner.ID, testutil.Day(t, "2024-02-01"), "")
	if err != nil {
		t.Fatalf("AddManual() error = %v", err)
	}

	tests := []struct {
		name   string
		userID uint
		id     string
	}{
		{name: "other user", userID: other.ID, id: receipt.ID},
		{name: "not a uuid", userID: owner.ID, id: "abc"},
		{name: "unknown uuid", userID: owner.ID, id: uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.receipts.GetReceipt(tt.userID, tt.id); !errors.Is(err, ErrReceiptNotFound) {
				t.Errorf("GetReceipt() error = %v, want %v", err, ErrReceiptNotFound)
			}
			if _, err := s.receipts.SetDate(tt.userID, tt.id, testutil.Day(t, "2024-02-02")); !errors.Is(err, ErrReceiptNotFound) {
				t.Errorf("SetDate() error = %v, want %v", err, ErrReceiptNotFound)
			}
			if err := s.receipts.DeleteReceipt(tt.userID, tt.id); !errors.Is(err, ErrReceiptNotFound) {
				t.Errorf("DeleteReceipt() error = %v, want %v", err, ErrReceiptNotFound)
			}
		})
	}

	got, err := s.receipts.GetReceipt(owner.ID, strings.ToUpper(receipt.ID))
	if err != nil || got.ID != receipt.ID {
		t.Errorf("GetReceipt(upper case) = %v, %v, want %s", got, err, receipt.ID)
	}

	if _, err := s.receipts.AddPhoto(owner.ID, "", nil, ""); err == nil {
		t.Error("AddPhoto() without file id error = nil, want error")
	}
}
