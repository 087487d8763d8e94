package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrAccessDenied       = errors.New("access denied: administrators only")
	ErrInvalidCountryCode = errors.New("country code must be two letters")
	ErrInvalidThreshold   = errors.New("threshold must be zero or more")
	ErrInvalidWeekdays    = errors.New("weekdays must be numbers from 0 (Mon) to 6 (Sun)")
	ErrInvalidPeriod      = errors.New("end date is before start date")
	ErrScheduleNotFound   = errors.New("schedule period not found")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrReceiptNotFound    = errors.New("receipt not found")
)
