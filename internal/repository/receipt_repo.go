package repository

import (
	"errors"
	"receiptor-bot/internal/models"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	Create(receipt *models.Receipt) error
	GetByID(userID uint, id string) (*models.Receipt, error)
	GetByUserIDAndRange(userID uint, from, to *time.Time) ([]*models.Receipt, error)
	GetUndated(userID uint) ([]*models.Receipt, error)
	UpdateDate(userID uint, id string, date time.Time, status string) (*models.Receipt, error)
	Delete(userID uint, id string) error
	DeleteByUserID(userID uint) error
}

type GormReceiptRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormReceiptRepository(db *gorm.DB) (*GormReceiptRepository, error) {
	logger := newLogger()

	if err := db.AutoMigrate(&models.Receipt{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate receipts table")
		return nil, err
	}

	logger.Debug("Receipt repository initialized")

	return &GormReceiptRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormReceiptRepository) Create(receipt *models.Receipt) error {
	if receipt.ID == "" || receipt.UserID == 0 {
		return errors.New("receipt id and user id are required")
	}

	if err := r.db.Create(receipt).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create receipt")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":      receipt.ID,
		"user_id": receipt.UserID,
		"status":  receipt.OCRStatus,
	}).Info("Receipt created successfully")

	return nil
}

func (r *GormReceiptRepository) GetByID(userID uint, id string) (*models.Receipt, error) {
	var receipt models.Receipt
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&receipt)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Receipt not found")
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get receipt by ID")
		return nil, result.Error
	}

	return &receipt, nil
}

// GetByUserIDAndRange returns dated receipts inside the optional bounds,
// newest first. Receipts without a date are never returned.
func (r *GormReceiptRepository) GetByUserIDAndRange(userID uint, from, to *time.Time) ([]*models.Receipt, error) {
	query := r.db.Where("user_id = ? AND receipt_date IS NOT NULL", userID)
	if from != nil {
		query = query.Where("receipt_date >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("receipt_date <= ?", models.DateOnly(*to))
	}

	var receipts []*models.Receipt
	if err := query.Order("receipt_date DESC, created_at DESC").Find(&receipts).Error; err != nil {
		r.logger.WithError(err).Error("Failed to get receipts by range")
		return nil, err
	}

	return receipts, nil
}

func (r *GormReceiptRepository) GetUndated(userID uint) ([]*models.Receipt, error) {
	var receipts []*models.Receipt
	err := r.db.Where("user_id = ? AND receipt_date IS NULL", userID).
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}

func (r *GormReceiptRepository) UpdateDate(userID uint, id string, date time.Time, status string) (*models.Receipt, error) {
	result := r.db.Model(&models.Receipt{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"receipt_date": models.DateOnly(date),
			"ocr_status":   status,
		})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update receipt date")
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(userID, id)
}

func (r *GormReceiptRepository) Delete(userID uint, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Receipt{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.logger.WithField("id", id).Info("Receipt deleted")
	return nil
}

func (r *GormReceiptRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Receipt{}).Error
}
