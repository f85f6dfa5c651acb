package leave

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
)

// LeaveService handles leave requests and the leave type catalogue.
type LeaveService interface {
	// Create files a leave request. Employees may only file for
	// themselves; managers may file for anyone.
	Create(ctx context.Context, actor auth.Identity, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// Approve moves a pending request to approved. Manager only.
	Approve(ctx context.Context, actor auth.Identity, id string) error

	// Deny moves a pending request to denied. Manager only.
	Deny(ctx context.Context, actor auth.Identity, id string) error

	// Cancel withdraws a request. The owner may cancel while pending; a
	// manager may cancel a pending or approved request.
	Cancel(ctx context.Context, actor auth.Identity, id string) error

	// Reflect marks an approved request as written into the schedule
	// grid. Manager only.
	Reflect(ctx context.Context, actor auth.Identity, id string) error

	// CreateType adds a leave type with its legend color. Manager only.
	CreateType(ctx context.Context, actor auth.Identity, lt LeaveType) (LeaveType, error)

	ListTypes(ctx context.Context) ([]LeaveType, error)

	// DeleteType removes a leave type. Manager only.
	DeleteType(ctx context.Context, actor auth.Identity, id string) error
}
