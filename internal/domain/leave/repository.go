package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, lt LeaveType) error
	Delete(ctx context.Context, id string) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetByDepartmentAndRange(ctx context.Context, departmentID string, start, end time.Time) ([]LeaveRequest, error)
	// CheckOverlapping reports whether any non-denied request for the
	// employee intersects [start, end] inclusive, excluding excludeID.
	CheckOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approvedBy *string, approvedAt *time.Time) error
}
