package models

import (
	"time"
)

// PublicHoliday is a cached entry of the external public-holiday calendar.
type PublicHoliday struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CountryCode string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_public_holiday_country_date;index:idx_public_holiday_country_year" json:"country_code"`
	Year        int       `gorm:"not null;index:idx_public_holiday_country_year" json:"year"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_public_holiday_country_date" json:"date"`
	Name        string    `json:"name"`
	LocalName   string    `json:"local_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PublicHoliday) TableName() string {
	return "public_holidays"
}
