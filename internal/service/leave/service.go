package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	leaveTypeRepo    leave.LeaveTypeRepository
	employeeRepo     employee.Repository
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	employeeRepo employee.Repository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		leaveTypeRepo:    leaveTypeRepo,
		employeeRepo:     employeeRepo,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, actor auth.Identity, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	// Employees may only file leave for themselves.
	if !actor.IsManager() && (actor.EmployeeID == nil || *actor.EmployeeID != req.EmployeeID) {
		return leave.LeaveRequestResponse{}, user.ErrManagerAccessRequired
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, schedule.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, schedule.ErrInvalidDateFormat
	}
	if start.After(end) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if _, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to load leave type: %w", err)
	}

	overlapping, err := s.leaveRequestRepo.CheckOverlapping(ctx, req.EmployeeID, start, end, "")
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRequestRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, actor auth.Identity, id string) error {
	return s.decide(ctx, actor, id, leave.LeaveStatusApproved)
}

func (s *LeaveServiceImpl) Deny(ctx context.Context, actor auth.Identity, id string) error {
	return s.decide(ctx, actor, id, leave.LeaveStatusDenied)
}

// decide moves a pending request to approved or denied. Only pending
// requests can be decided.
func (s *LeaveServiceImpl) decide(ctx context.Context, actor auth.Identity, id string, status leave.LeaveStatus) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load leave request: %w", err)
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	if err := s.leaveRequestRepo.UpdateStatus(ctx, id, status, &actor.UserID, &now); err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	return nil
}

// Cancel withdraws a request. The owner may cancel while pending; a manager
// may cancel a pending or approved request.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, actor auth.Identity, id string) error {
	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load leave request: %w", err)
	}

	owner := actor.EmployeeID != nil && *actor.EmployeeID == request.EmployeeID
	switch request.Status {
	case leave.LeaveStatusPending:
		if !owner && !actor.IsManager() {
			return user.ErrManagerAccessRequired
		}
	case leave.LeaveStatusApproved:
		if !actor.IsManager() {
			return user.ErrManagerAccessRequired
		}
	default:
		return leave.ErrInvalidStatusChange
	}

	if err := s.leaveRequestRepo.UpdateStatus(ctx, id, leave.LeaveStatusCancelled, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel leave request: %w", err)
	}
	return nil
}

// Reflect marks an approved request as written into the schedule grid, so
// the UI stops offering it for reflection. Only approved requests move to
// reflected.
func (s *LeaveServiceImpl) Reflect(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load leave request: %w", err)
	}
	if request.Status != leave.LeaveStatusApproved {
		return leave.ErrInvalidStatusChange
	}

	if err := s.leaveRequestRepo.UpdateStatus(ctx, id, leave.LeaveStatusReflected, nil, nil); err != nil {
		return fmt.Errorf("failed to reflect leave request: %w", err)
	}
	return nil
}

// Leave type administration.

func (s *LeaveServiceImpl) CreateType(ctx context.Context, actor auth.Identity, lt leave.LeaveType) (leave.LeaveType, error) {
	if !actor.IsManager() {
		return leave.LeaveType{}, user.ErrManagerAccessRequired
	}
	created, err := s.leaveTypeRepo.Create(ctx, lt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

func (s *LeaveServiceImpl) DeleteType(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	if err := s.leaveTypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}
