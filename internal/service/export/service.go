package export

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/holiday"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/export"
	"github.com/shiftboard/shiftboard-backend-go/internal/roster"
)

// ExportServiceImpl assembles a department's month into an xlsx workbook. The
// cron archival sweep and the interactive download endpoint both go through
// BuildMonth, so the archived file and the downloaded file are identical.
type ExportServiceImpl struct {
	departmentRepo     department.Repository
	sectorRepo         department.SectorRepository
	employeeRepo       employee.Repository
	shiftRepo          shift.Repository
	assignmentRepo     schedule.AssignmentRepository
	orderOverrideRepo  schedule.OrderOverrideRepository
	leaderOverrideRepo schedule.LeaderOverrideRepository
	leaveRequestRepo   leave.LeaveRequestRepository
	leaveTypeRepo      leave.LeaveTypeRepository
	holidayRepo        holiday.Repository
	genericShifts      []string
}

func NewExportService(
	departmentRepo department.Repository,
	sectorRepo department.SectorRepository,
	employeeRepo employee.Repository,
	shiftRepo shift.Repository,
	assignmentRepo schedule.AssignmentRepository,
	orderOverrideRepo schedule.OrderOverrideRepository,
	leaderOverrideRepo schedule.LeaderOverrideRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	holidayRepo holiday.Repository,
	genericShifts []string,
) schedule.ExportService {
	return &ExportServiceImpl{
		departmentRepo:     departmentRepo,
		sectorRepo:         sectorRepo,
		employeeRepo:       employeeRepo,
		shiftRepo:          shiftRepo,
		assignmentRepo:     assignmentRepo,
		orderOverrideRepo:  orderOverrideRepo,
		leaderOverrideRepo: leaderOverrideRepo,
		leaveRequestRepo:   leaveRequestRepo,
		leaveTypeRepo:      leaveTypeRepo,
		holidayRepo:        holidayRepo,
		genericShifts:      genericShifts,
	}
}

// BuildMonth renders the monthly workbook for a department and returns the
// file contents along with the conventional filename.
func (s *ExportServiceImpl) BuildMonth(ctx context.Context, departmentID string, year, month int) ([]byte, string, error) {
	if month < 1 || month > 12 {
		return nil, "", schedule.ErrInvalidPeriod
	}

	dept, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load department: %w", err)
	}
	employees, err := s.employeeRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load employees: %w", err)
	}
	sectors, err := s.sectorRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load sectors: %w", err)
	}
	shifts, err := s.shiftRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load shifts: %w", err)
	}
	orderOverrides, err := s.orderOverrideRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load order overrides: %w", err)
	}
	leaderOverrides, err := s.leaderOverrideRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load leader overrides: %w", err)
	}
	rows, err := s.assignmentRepo.GetMonthRows(ctx, departmentID, year, month)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load assignments: %w", err)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	leaves, err := s.leaveRequestRepo.GetByDepartmentAndRange(ctx, departmentID, monthStart, monthEnd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load leave requests: %w", err)
	}
	leaveTypes, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load leave types: %w", err)
	}
	holidays, err := s.holidayRepo.GetByRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load holidays: %w", err)
	}

	// Exports reflect the frozen month as last edited, so the newest
	// override wins and employees outside their employment window drop out.
	entries := roster.Resolve(roster.ResolveInput{
		Employees:               employees,
		Sectors:                 sectors,
		OrderOverrides:          orderOverrides,
		LeaderOverrides:         leaderOverrides,
		Year:                    year,
		Month:                   month,
		Mode:                    roster.ModeLatestOverride,
		EnforceEmploymentWindow: true,
	})

	data, err := export.RenderMonth(export.GridInput{
		DepartmentName: dept.Name,
		Year:           year,
		Month:          month,
		Roster:         entries,
		Sectors:        sectors,
		Shifts:         shifts,
		Rows:           rows,
		Leaves:         leaves,
		LeaveTypes:     leaveTypes,
		Holidays:       holidays,
		GenericShifts:  s.genericShifts,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	return data, export.Filename(year, month, dept.Name), nil
}
