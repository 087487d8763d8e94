package models

import "time"

// UserHoliday is a personal day-off range, both ends inclusive.
type UserHoliday struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (UserHoliday) TableName() string {
	return "user_holidays"
}

// Days returns the number of calendar days in the range.
func (h *UserHoliday) Days() int {
	return int(h.EndDate.Sub(h.StartDate).Hours()/24) + 1
}
