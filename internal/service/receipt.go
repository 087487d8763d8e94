package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/pkg/compliance"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReceiptService stores proofs of presence. A receipt without a date is kept
// but proves nothing until a date is set.
type ReceiptService struct {
	repo   repository.ReceiptRepository
	newID  func() string
	logger *logrus.Logger
}

func NewReceiptService(repo repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{
		repo:   repo,
		newID:  uuid.NewString,
		logger: newLogger(),
	}
}

// AddManual records a receipt whose date the user typed in.
func (s *ReceiptService) AddManual(userID uint, date time.Time, notes string) (*models.Receipt, error) {
	d := models.DateOnly(date)
	return s.create(&models.Receipt{
		UserID:      userID,
		ReceiptDate: &d,
		OCRStatus:   models.OCRStatusManual,
		Notes:       strings.TrimSpace(notes),
	})
}

// AddPhoto records a photographed receipt. The date comes from the caption
// when the user gave one; otherwise the receipt stays undated.
func (s *ReceiptService) AddPhoto(userID uint, fileID string, date *time.Time, notes string) (*models.Receipt, error) {
	if fileID == "" {
		return nil, errors.New("photo file id is required")
	}

	receipt := &models.Receipt{
		UserID:    userID,
		FileID:    fileID,
		OCRStatus: models.OCRStatusSkipped,
		Notes:     strings.TrimSpace(notes),
	}
	if date != nil {
		d := models.DateOnly(*date)
		receipt.ReceiptDate = &d
		receipt.OCRStatus = models.OCRStatusManual
	}

	return s.create(receipt)
}

func (s *ReceiptService) create(receipt *models.Receipt) (*models.Receipt, error) {
	receipt.ID = s.newID()
	if err := s.repo.Create(receipt); err != nil {
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": receipt.UserID,
		"id":      receipt.ID,
		"date":    receipt.FormatDate(),
	}).Info("Receipt recorded")

	return receipt, nil
}

// GetReceipt returns one receipt of the user.
func (s *ReceiptService) GetReceipt(userID uint, id string) (*models.Receipt, error) {
	id, err := normalizeReceiptID(id)
	if err != nil {
		return nil, err
	}

	receipt, err := s.repo.GetByID(userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	if receipt == nil {
		return nil, ErrReceiptNotFound
	}
	return receipt, nil
}

// SetDate corrects or sets the date of a receipt by hand.
func (s *ReceiptService) SetDate(userID uint, id string, date time.Time) (*models.Receipt, error) {
	id, err := normalizeReceiptID(id)
	if err != nil {
		return nil, err
	}

	receipt, err := s.repo.UpdateDate(userID, id, date, models.OCRStatusManual)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}
	return receipt, nil
}

func (s *ReceiptService) DeleteReceipt(userID uint, id string) error {
	id, err := normalizeReceiptID(id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrReceiptNotFound
	}
	return err
}

// ListReceipts returns the dated receipts of a year, newest first.
func (s *ReceiptService) ListReceipts(userID uint, year int) ([]*models.Receipt, error) {
	from, to := models.YearBounds(year)
	return s.repo.GetByUserIDAndRange(userID, &from, &to)
}

func (s *ReceiptService) Undated(userID uint) ([]*models.Receipt, error) {
	return s.repo.GetUndated(userID)
}

// ReceiptDates returns the distinct dates proved by receipts within year.
func (s *ReceiptService) ReceiptDates(userID uint, year int) (compliance.DateSet, error) {
	receipts, err := s.ListReceipts(userID, year)
	if err != nil {
		return nil, err
	}

	dates := compliance.NewDateSet()
	for _, r := range receipts {
		if r.HasDate() {
			dates.Add(compliance.DateOf(*r.ReceiptDate))
		}
	}
	return dates, nil
}

// normalizeReceiptID canonicalizes a receipt id. Anything that is not a UUID
// cannot name a receipt.
func normalizeReceiptID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", ErrReceiptNotFound
	}
	return parsed.String(), nil
}

func FormatReceipts(receipts []*models.Receipt, undated []*models.Receipt, year int) string {
	if len(receipts) == 0 && len(undated) == 0 {
		return fmt.Sprintf("📭 No receipts for %d.", year)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🧾 Receipts %d (%d):", year, len(receipts)))
	lines = append(lines, "")

	for _, r := range receipts {
		lines = append(lines, formatReceiptLine(r))
	}

	if len(undated) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("❓ Without date (%d), set one with /setreceiptdate:", len(undated)))
		for _, r := range undated {
			lines = append(lines, formatReceiptLine(r))
		}
	}

	return strings.Join(lines, "\n")
}

func formatReceiptLine(r *models.Receipt) string {
	line := r.FormatDate()
	if r.HasDate() {
		line += " " + compliance.DateOf(*r.ReceiptDate).Weekday().String()
	}
	if r.FileID != "" {
		line += " 📷"
	}
	line += " " + r.ID
	if r.Notes != "" {
		line += " " + r.Notes
	}
	return line
}
