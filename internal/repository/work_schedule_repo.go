package repository

import (
	"errors"
	"receiptor-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkScheduleRepository interface {
	Create(period *models.WorkSchedulePeriod) error
	Update(period *models.WorkSchedulePeriod) error
	Delete(userID, id uint) error
	GetByID(userID, id uint) (*models.WorkSchedulePeriod, error)
	GetByUserID(userID uint) ([]*models.WorkSchedulePeriod, error)
	DeleteByUserID(userID uint) error
}

type GormWorkScheduleRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkScheduleRepository(db *gorm.DB) (*GormWorkScheduleRepository, error) {
	logger := newLogger()

	if err := db.AutoMigrate(&models.WorkSchedulePeriod{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_schedule_periods table")
		return nil, err
	}

	logger.Debug("Work schedule repository initialized")

	return &GormWorkScheduleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWorkScheduleRepository) Create(period *models.WorkSchedulePeriod) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": period.UserID,
		"start":   period.StartDate.Format("2006-01-02"),
	}).Info("Creating work schedule period")

	if !period.IsValid() {
		r.logger.WithField("user_id", period.UserID).Warn("Invalid work schedule period")
		return errors.New("invalid work schedule period")
	}

	if err := r.db.Create(period).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create work schedule period")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":      period.ID,
		"user_id": period.UserID,
	}).Info("Work schedule period created successfully")

	return nil
}

func (r *GormWorkScheduleRepository) Update(period *models.WorkSchedulePeriod) error {
	if !period.IsValid() {
		r.logger.WithField("id", period.ID).Warn("Invalid work schedule period for update")
		return errors.New("invalid work schedule period")
	}

	existing, err := r.GetByID(period.UserID, period.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		r.logger.WithField("id", period.ID).Warn("Work schedule period not found for update")
		return ErrNotFound
	}

	// Save would skip a nil end date, so the columns are written explicitly
	result := r.db.Model(existing).Select("start_date", "end_date", "working_days", "description").Updates(period)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update work schedule period")
		return result.Error
	}

	r.logger.WithField("id", period.ID).Info("Work schedule period updated successfully")
	return nil
}

func (r *GormWorkScheduleRepository) Delete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.WorkSchedulePeriod{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete work schedule period")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Work schedule period not found for deletion")
		return ErrNotFound
	}

	r.logger.WithField("id", id).Info("Work schedule period deleted successfully")
	return nil
}

func (r *GormWorkScheduleRepository) GetByID(userID, id uint) (*models.WorkSchedulePeriod, error) {
	var period models.WorkSchedulePeriod
	result := r.db.Where("user_id = ?", userID).First(&period, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Work schedule period not found")
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work schedule period by ID")
		return nil, result.Error
	}

	return &period, nil
}

// GetByUserID returns all periods of a user ordered by start date.
func (r *GormWorkScheduleRepository) GetByUserID(userID uint) ([]*models.WorkSchedulePeriod, error) {
	var periods []*models.WorkSchedulePeriod
	result := r.db.Where("user_id = ?", userID).Order("start_date ASC, id ASC").Find(&periods)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work schedule periods")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(periods),
	}).Debug("Retrieved work schedule periods")

	return periods, nil
}

func (r *GormWorkScheduleRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WorkSchedulePeriod{}).Error
}
