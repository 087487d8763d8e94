package service

//go:generate mockgen -destination=mock_holiday_source.go -package=service . HolidaySource
