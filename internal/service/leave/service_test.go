package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.nextID++
	req.ID = "r" + strconv.Itoa(r.nextID)
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) GetByDepartmentAndRange(ctx context.Context, departmentID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (r *fakeRequestRepo) CheckOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.ID == excludeID || req.Status == leave.LeaveStatusDenied {
			continue
		}
		if leave.Overlaps(req.StartDate, req.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedBy *string, approvedAt *time.Time) error {
	req, ok := r.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	if approvedBy != nil {
		req.ApprovedBy = approvedBy
	}
	if approvedAt != nil {
		req.ApprovedAt = approvedAt
	}
	r.requests[id] = req
	return nil
}

type fakeTypeRepo struct{}

func (fakeTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	lt.ID = "lt1"
	return lt, nil
}
func (fakeTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	return leave.LeaveType{ID: id, Name: "Vacation", Color: "C6E0B4"}, nil
}
func (fakeTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) { return nil, nil }
func (fakeTypeRepo) Update(ctx context.Context, lt leave.LeaveType) error { return nil }
func (fakeTypeRepo) Delete(ctx context.Context, id string) error          { return nil }

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Status: employee.StatusActive}, nil
}
func (fakeEmployeeRepo) GetByDepartmentID(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return nil, nil
}
func (fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}
func (fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (leave.LeaveService, *fakeRequestRepo) {
	repo := newFakeRequestRepo()
	return NewLeaveService(repo, fakeTypeRepo{}, fakeEmployeeRepo{}), repo
}

var (
	empID   = "e1"
	member  = auth.Identity{UserID: "u1", EmployeeID: &empID, Role: user.RoleEmployee}
	manager = auth.Identity{UserID: "u2", Role: user.RoleManager}
)

func createReq(start, end string) leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		EmployeeID:  empID,
		LeaveTypeID: "lt1",
		StartDate:   start,
		EndDate:     end,
	}
}

func TestCreateLeaveRequest(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Status)
	assert.Equal(t, "2024-03-05", resp.StartDate)
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, member, createReq("2024-03-08", "2024-03-10"))
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	// A disjoint range is fine.
	_, err = svc.Create(ctx, member, createReq("2024-03-11", "2024-03-12"))
	assert.NoError(t, err)
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), member, createReq("2024-03-10", "2024-03-05"))
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateRejectsOtherEmployee(t *testing.T) {
	svc, _ := newTestService()

	req := createReq("2024-03-05", "2024-03-08")
	req.EmployeeID = "someone-else"
	_, err := svc.Create(context.Background(), member, req)
	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
}

func TestApproveOnlyPending(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, manager, created.ID))
	stored := repo.requests[created.ID]
	assert.Equal(t, leave.LeaveStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, manager.UserID, *stored.ApprovedBy)

	// A second decision is rejected.
	assert.ErrorIs(t, svc.Approve(ctx, manager, created.ID), leave.ErrLeaveAlreadyProcessed)
	assert.ErrorIs(t, svc.Deny(ctx, manager, created.ID), leave.ErrLeaveAlreadyProcessed)
}

func TestApproveRequiresManager(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Approve(ctx, member, created.ID), user.ErrManagerAccessRequired)
}

func TestCancelTransitions(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)

	// Owner cancels while pending.
	require.NoError(t, svc.Cancel(ctx, member, created.ID))
	assert.Equal(t, leave.LeaveStatusCancelled, repo.requests[created.ID].Status)

	// Cancelled requests cannot be cancelled again.
	assert.ErrorIs(t, svc.Cancel(ctx, manager, created.ID), leave.ErrInvalidStatusChange)
}

func TestCancelApprovedRequiresManager(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, manager, created.ID))

	assert.ErrorIs(t, svc.Cancel(ctx, member, created.ID), user.ErrManagerAccessRequired)
	require.NoError(t, svc.Cancel(ctx, manager, created.ID))
	assert.Equal(t, leave.LeaveStatusCancelled, repo.requests[created.ID].Status)
}

func TestReflectOnlyApproved(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, member, createReq("2024-03-05", "2024-03-08"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Reflect(ctx, manager, created.ID), leave.ErrInvalidStatusChange)

	require.NoError(t, svc.Approve(ctx, manager, created.ID))
	require.NoError(t, svc.Reflect(ctx, manager, created.ID))
	assert.Equal(t, leave.LeaveStatusReflected, repo.requests[created.ID].Status)
}
