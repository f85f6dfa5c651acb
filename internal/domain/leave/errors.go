package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrOverlappingLeave      = errors.New("overlapping leave request exists for this employee")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidStatusChange   = errors.New("invalid leave status transition")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
)
