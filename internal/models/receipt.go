package models

import (
	"time"
)

// Receipt is a proof of physical presence in the working country.
type Receipt struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	ReceiptDate *time.Time `gorm:"type:date;index" json:"receipt_date"`
	OCRStatus   string     `gorm:"type:varchar(20);not null;default:'manual'" json:"ocr_status"`
	FileID      string     `json:"file_id"` // Telegram file_id, empty for typed receipts
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Receipt) TableName() string {
	return "receipts"
}

// Receipt date recognition statuses
const (
	OCRStatusSuccess     = "success"
	OCRStatusNoDateFound = "no_date_found"
	OCRStatusFailed      = "failed"
	OCRStatusSkipped     = "skipped"
	OCRStatusManual      = "manual"
)

// HasDate reports whether the receipt can serve as proof.
func (r *Receipt) HasDate() bool {
	return r.ReceiptDate != nil && !r.ReceiptDate.IsZero()
}

// FormatDate formats the date for display
func (r *Receipt) FormatDate() string {
	if !r.HasDate() {
		return "no date"
	}
	return r.ReceiptDate.Format(DateLayout)
}
