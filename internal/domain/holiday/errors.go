package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists on this date")
	ErrInvalidType     = errors.New("holiday type must be 'regular' or 'company'")
)
