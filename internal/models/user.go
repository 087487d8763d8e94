package models

import "strings"

type Role string

const (
	RoleClient string = "client"
	RoleAdmin  string = "admin"
)

// Defaults for users who have not configured their profile
const (
	DefaultWorkingCountryCode   = "LU"
	DefaultResidenceCountryCode = "BE"
	DefaultHomeworkingThreshold = 34
)

// DefaultWorkingDays is Monday to Friday, Monday=0.
var DefaultWorkingDays = []int{0, 1, 2, 3, 4}

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	ChatID    int64  `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string `json:"username"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `gorm:"default:'client'" json:"role"`

	WorkingCountryCode   string `gorm:"type:varchar(2)" json:"working_country_code"`
	ResidenceCountryCode string `gorm:"type:varchar(2)" json:"residence_country_code"`
	HomeworkingThreshold *int   `json:"homeworking_threshold"`
	WorkingDays          []int  `gorm:"serializer:json" json:"working_days"`
}

// IsAdmin checks whether the user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Settings returns the compliance settings with defaults filled in.
func (u *User) Settings() Settings {
	s := Settings{
		WorkingCountryCode:   DefaultWorkingCountryCode,
		ResidenceCountryCode: DefaultResidenceCountryCode,
		HomeworkingThreshold: DefaultHomeworkingThreshold,
		WorkingDays:          append([]int(nil), DefaultWorkingDays...),
	}
	if u == nil {
		return s
	}

	if u.WorkingCountryCode != "" {
		s.WorkingCountryCode = strings.ToUpper(u.WorkingCountryCode)
	}
	if u.ResidenceCountryCode != "" {
		s.ResidenceCountryCode = strings.ToUpper(u.ResidenceCountryCode)
	}
	if u.HomeworkingThreshold != nil {
		s.HomeworkingThreshold = *u.HomeworkingThreshold
	}
	if len(u.WorkingDays) > 0 {
		s.WorkingDays = append([]int(nil), u.WorkingDays...)
	}
	return s
}

func (User) TableName() string {
	return "users"
}

// Settings is the effective compliance configuration of a user.
type Settings struct {
	WorkingCountryCode   string `json:"working_country_code"`
	ResidenceCountryCode string `json:"residence_country_code"`
	HomeworkingThreshold int    `json:"homeworking_threshold"`
	WorkingDays          []int  `json:"working_days"`
}
