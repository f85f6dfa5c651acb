package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
	"github.com/shiftboard/shiftboard-backend-go/internal/repository/postgresql"
	"github.com/shiftboard/shiftboard-backend-go/internal/roster"
)

// EditSessionTTL is how long a freshly opened (or touched) edit session
// stays alive before the archival sweep picks the period up.
const EditSessionTTL = 30 * time.Minute

type ScheduleServiceImpl struct {
	db                 *database.DB
	employeeRepo       employee.Repository
	sectorRepo         department.SectorRepository
	assignmentRepo     schedule.AssignmentRepository
	orderOverrideRepo  schedule.OrderOverrideRepository
	leaderOverrideRepo schedule.LeaderOverrideRepository
	editSessionRepo    schedule.EditSessionRepository
	leaveRequestRepo   leave.LeaveRequestRepository
	genericShifts      []string
}

func NewScheduleService(
	db *database.DB,
	employeeRepo employee.Repository,
	sectorRepo department.SectorRepository,
	assignmentRepo schedule.AssignmentRepository,
	orderOverrideRepo schedule.OrderOverrideRepository,
	leaderOverrideRepo schedule.LeaderOverrideRepository,
	editSessionRepo schedule.EditSessionRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	genericShifts []string,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                 db,
		employeeRepo:       employeeRepo,
		sectorRepo:         sectorRepo,
		assignmentRepo:     assignmentRepo,
		orderOverrideRepo:  orderOverrideRepo,
		leaderOverrideRepo: leaderOverrideRepo,
		editSessionRepo:    editSessionRepo,
		leaveRequestRepo:   leaveRequestRepo,
		genericShifts:      genericShifts,
	}
}

func (s *ScheduleServiceImpl) MonthlyView(ctx context.Context, departmentID string, year, month int) (schedule.MonthlyViewResponse, error) {
	if month < 1 || month > 12 {
		return schedule.MonthlyViewResponse{}, schedule.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	sectors, err := s.sectorRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load sectors: %w", err)
	}
	orderOverrides, err := s.orderOverrideRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load order overrides: %w", err)
	}
	leaderOverrides, err := s.leaderOverrideRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load leader overrides: %w", err)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	leaves, err := s.leaveRequestRepo.GetByDepartmentAndRange(ctx, departmentID, monthStart, monthEnd)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load leave requests: %w", err)
	}

	entries := roster.Resolve(roster.ResolveInput{
		Employees:       employees,
		Sectors:         sectors,
		OrderOverrides:  orderOverrides,
		LeaderOverrides: leaderOverrides,
		Year:            year,
		Month:           month,
		Mode:            roster.ModeAnyEligible,
	})

	rows, err := s.assignmentRepo.GetMonthRows(ctx, departmentID, year, month)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load assignments: %w", err)
	}

	dayRows := make([]roster.DayRow, 0, len(rows))
	for _, r := range rows {
		dayRows = append(dayRows, roster.DayRow{
			EmployeeID:    r.EmployeeID,
			Date:          r.Date,
			ShiftName:     r.ShiftName,
			IsShiftLeader: r.IsShiftLeader,
		})
	}
	leaders := roster.ComputeLeaders(roster.LeadersInput{
		Rows:            dayRows,
		LeaderOverrides: leaderOverrides,
		Leaves:          leaves,
		GenericShifts:   s.genericShifts,
		Year:            year,
		Month:           month,
	})

	assignments, err := s.assignmentRepo.GetByDepartmentAndMonth(ctx, departmentID, year, month)
	if err != nil {
		return schedule.MonthlyViewResponse{}, fmt.Errorf("failed to load assignment rows: %w", err)
	}

	return buildMonthlyView(departmentID, year, month, entries, assignments, rows, leaders), nil
}

func buildMonthlyView(
	departmentID string,
	year, month int,
	entries []roster.Entry,
	assignments []schedule.Assignment,
	rows []schedule.ExportRow,
	leaders []roster.Leader,
) schedule.MonthlyViewResponse {
	resp := schedule.MonthlyViewResponse{
		DepartmentID: departmentID,
		Year:         year,
		Month:        month,
	}

	for i, entry := range entries {
		resp.Roster = append(resp.Roster, schedule.RosterEntryResponse{
			EmployeeID: entry.Employee.ID,
			FullName:   entry.Employee.FullName(),
			SectorID:   entry.SectorID,
			Privilege:  entry.Privilege.String(),
			Position:   i + 1,
		})
	}

	shiftNames := make(map[string]string, len(rows))
	for _, r := range rows {
		shiftNames[r.EmployeeID+"|"+r.Date.Format("2006-01-02")] = r.ShiftName
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, schedule.AssignmentResponse{
			ID:            a.ID,
			EmployeeID:    a.EmployeeID,
			Date:          a.Date.Format("2006-01-02"),
			ShiftID:       a.ShiftID,
			ShiftName:     shiftNames[a.EmployeeID+"|"+a.Date.Format("2006-01-02")],
			Comment:       a.Comment,
			IsShiftLeader: a.IsShiftLeader,
		})
	}

	for _, l := range leaders {
		resp.Leaders = append(resp.Leaders, schedule.LeaderResponse{
			Date:       l.Date.Format("2006-01-02"),
			EmployeeID: l.EmployeeID,
			ShiftName:  l.ShiftName,
		})
	}
	return resp
}

func (s *ScheduleServiceImpl) SaveAssignments(ctx context.Context, actor auth.Identity, req schedule.SaveAssignmentsRequest) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}

	parsed := make([]schedule.Assignment, 0, len(req.Assignments))
	for _, item := range req.Assignments {
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			return schedule.ErrInvalidDateFormat
		}
		parsed = append(parsed, schedule.Assignment{
			EmployeeID:    item.EmployeeID,
			Date:          date,
			ShiftID:       item.ShiftID,
			Comment:       item.Comment,
			IsShiftLeader: item.IsShiftLeader,
		})
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, a := range parsed {
			if _, err := s.assignmentRepo.Upsert(txCtx, a); err != nil {
				return fmt.Errorf("failed to save assignment for %s on %s: %w", a.EmployeeID, a.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
}

func (s *ScheduleServiceImpl) Reorder(ctx context.Context, actor auth.Identity, req schedule.ReorderRequest) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	if req.Year < 1 || req.Month < 1 || req.Month > 12 {
		return schedule.ErrInvalidPeriod
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, entry := range req.Entries {
			_, err := s.orderOverrideRepo.Upsert(txCtx, schedule.OrderOverride{
				EmployeeID:   entry.EmployeeID,
				DepartmentID: req.DepartmentID,
				Year:         req.Year,
				Month:        req.Month,
				OrderIndex:   entry.OrderIndex,
				SectorID:     entry.SectorID,
			})
			if err != nil {
				return fmt.Errorf("failed to save order override for %s: %w", entry.EmployeeID, err)
			}

			if entry.IsLeader != nil {
				_, err := s.leaderOverrideRepo.Upsert(txCtx, schedule.LeaderOverride{
					EmployeeID:   entry.EmployeeID,
					DepartmentID: req.DepartmentID,
					Year:         req.Year,
					Month:        req.Month,
					IsLeader:     *entry.IsLeader,
				})
				if err != nil {
					return fmt.Errorf("failed to save leader override for %s: %w", entry.EmployeeID, err)
				}
			}
		}
		return nil
	})
}

func (s *ScheduleServiceImpl) OpenEditSession(ctx context.Context, actor auth.Identity, req schedule.OpenEditSessionRequest) (schedule.EditSession, error) {
	if !actor.IsManager() {
		return schedule.EditSession{}, user.ErrManagerAccessRequired
	}
	if req.Month < 1 || req.Month > 12 {
		return schedule.EditSession{}, schedule.ErrInvalidPeriod
	}

	session, err := s.editSessionRepo.Upsert(ctx, schedule.EditSession{
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Month:        req.Month,
		ExpiresAt:    time.Now().Add(EditSessionTTL),
	})
	if err != nil {
		return schedule.EditSession{}, fmt.Errorf("failed to open edit session: %w", err)
	}
	return session, nil
}
