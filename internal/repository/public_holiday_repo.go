package repository

import (
	"receiptor-bot/internal/models"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PublicHolidayRepository interface {
	GetByCountryYear(countryCode string, year int) ([]models.PublicHoliday, error)
	HasCountryYear(countryCode string, year int) (bool, error)
	ReplaceCountryYear(countryCode string, year int, days []models.PublicHoliday) error
	IsPublicHoliday(countryCode string, date time.Time) (bool, error)
}

type GormPublicHolidayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormPublicHolidayRepository(db *gorm.DB) (*GormPublicHolidayRepository, error) {
	if err := db.AutoMigrate(&models.PublicHoliday{}); err != nil {
		return nil, err
	}

	return &GormPublicHolidayRepository{db: db, logger: newLogger()}, nil
}

func (r *GormPublicHolidayRepository) GetByCountryYear(countryCode string, year int) ([]models.PublicHoliday, error) {
	var days []models.PublicHoliday
	err := r.db.Where("country_code = ? AND year = ?", countryCode, year).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *GormPublicHolidayRepository) HasCountryYear(countryCode string, year int) (bool, error) {
	var count int64
	err := r.db.Model(&models.PublicHoliday{}).
		Where("country_code = ? AND year = ?", countryCode, year).
		Count(&count).Error
	return count > 0, err
}

// ReplaceCountryYear swaps the cached calendar of one country and year in a
// single transaction, so readers never see a half-written year.
func (r *GormPublicHolidayRepository) ReplaceCountryYear(countryCode string, year int, days []models.PublicHoliday) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("country_code = ? AND year = ?", countryCode, year).
			Delete(&models.PublicHoliday{}).Error; err != nil {
			return err
		}

		if len(days) == 0 {
			return nil
		}

		for i := range days {
			days[i].ID = 0
			days[i].CountryCode = countryCode
			days[i].Year = year
			days[i].Date = models.DateOnly(days[i].Date)
		}
		return tx.Create(&days).Error
	})
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"country": countryCode,
			"year":    year,
		}).Error("Failed to replace public holidays")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"country": countryCode,
		"year":    year,
		"count":   len(days),
	}).Info("Public holidays stored")
	return nil
}

func (r *GormPublicHolidayRepository) IsPublicHoliday(countryCode string, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.PublicHoliday{}).
		Where("country_code = ? AND date = ?", countryCode, models.DateOnly(date)).
		Count(&count).Error
	return count > 0, err
}
