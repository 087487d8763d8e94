package models

import (
	"time"
)

// WorkSchedulePeriod overrides the working weekdays for a date range
type WorkSchedulePeriod struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	StartDate   time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"` // nil = open-ended
	WorkingDays []int      `gorm:"serializer:json;not null" json:"working_days"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkSchedulePeriod) TableName() string {
	return "work_schedule_periods"
}

// IsOpenEnded reports whether the period has no end date.
func (p *WorkSchedulePeriod) IsOpenEnded() bool {
	return p.EndDate == nil
}

// IsValid checks the data is consistent
func (p *WorkSchedulePeriod) IsValid() bool {
	if p.UserID == 0 || p.StartDate.IsZero() {
		return false
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return false
	}
	for _, d := range p.WorkingDays {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}
