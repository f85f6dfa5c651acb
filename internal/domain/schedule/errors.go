package schedule

import "errors"

var (
	ErrAssignmentNotFound  = errors.New("schedule assignment not found")
	ErrDuplicateAssignment = errors.New("assignment already exists for this employee and date")
	ErrEditSessionNotFound = errors.New("edit session not found")
	ErrInvalidPeriod       = errors.New("invalid year or month")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)
