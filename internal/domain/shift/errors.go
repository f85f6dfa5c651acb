package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftNameExists = errors.New("shift with this name already exists in the department")
	ErrInvalidTimeSpan = errors.New("shift start and end times are required")
)
