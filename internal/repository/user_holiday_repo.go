package repository

import (
	"errors"
	"receiptor-bot/internal/models"

	"gorm.io/gorm"
)

type UserHolidayRepository interface {
	Create(holiday *models.UserHoliday) error
	Update(holiday *models.UserHoliday) error
	GetByID(userID, id uint) (*models.UserHoliday, error)
	GetByUserID(userID uint) ([]models.UserHoliday, error)
	GetByUserIDAndYear(userID uint, year int) ([]models.UserHoliday, error)
	Delete(userID, id uint) error
	DeleteByUserID(userID uint) error
}

type GormUserHolidayRepository struct {
	db *gorm.DB
}

func NewGormUserHolidayRepository(db *gorm.DB) (*GormUserHolidayRepository, error) {
	if err := db.AutoMigrate(&models.UserHoliday{}); err != nil {
		return nil, err
	}
	return &GormUserHolidayRepository{db: db}, nil
}

func (r *GormUserHolidayRepository) Create(holiday *models.UserHoliday) error {
	return r.db.Create(holiday).Error
}

func (r *GormUserHolidayRepository) Update(holiday *models.UserHoliday) error {
	result := r.db.Model(&models.UserHoliday{}).
		Where("id = ? AND user_id = ?", holiday.ID, holiday.UserID).
		Updates(map[string]any{
			"start_date":  holiday.StartDate,
			"end_date":    holiday.EndDate,
			"description": holiday.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUserHolidayRepository) GetByID(userID, id uint) (*models.UserHoliday, error) {
	var holiday models.UserHoliday
	err := r.db.Where("user_id = ?", userID).First(&holiday, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *GormUserHolidayRepository) GetByUserID(userID uint) ([]models.UserHoliday, error) {
	var holidays []models.UserHoliday
	err := r.db.Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&holidays).Error
	return holidays, err
}

// GetByUserIDAndYear returns the periods that overlap the given year.
func (r *GormUserHolidayRepository) GetByUserIDAndYear(userID uint, year int) ([]models.UserHoliday, error) {
	from, to := models.YearBounds(year)

	var holidays []models.UserHoliday
	err := r.db.Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, to, from).
		Order("start_date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *GormUserHolidayRepository) Delete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.UserHoliday{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUserHolidayRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserHoliday{}).Error
}
