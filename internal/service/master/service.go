package master

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/master"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// MasterServiceImpl covers the org structure: departments, their sectors, and
// the shift catalogue.
type MasterServiceImpl struct {
	departmentRepo department.Repository
	sectorRepo     department.SectorRepository
	shiftRepo      shift.Repository
}

func NewMasterService(
	departmentRepo department.Repository,
	sectorRepo department.SectorRepository,
	shiftRepo shift.Repository,
) master.MasterService {
	return &MasterServiceImpl{
		departmentRepo: departmentRepo,
		sectorRepo:     sectorRepo,
		shiftRepo:      shiftRepo,
	}
}

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, actor auth.Identity, req department.CreateDepartmentRequest) (department.Department, error) {
	if !actor.IsAdmin() {
		return department.Department{}, user.ErrAdminAccessRequired
	}
	if validator.IsEmpty(req.Name) {
		return department.Department{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsAdmin() {
		return user.ErrAdminAccessRequired
	}
	return s.departmentRepo.Delete(ctx, id)
}

func (s *MasterServiceImpl) CreateSector(ctx context.Context, actor auth.Identity, req department.CreateSectorRequest) (department.Sector, error) {
	if !actor.IsManager() {
		return department.Sector{}, user.ErrManagerAccessRequired
	}
	if validator.IsEmpty(req.Name) {
		return department.Sector{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return department.Sector{}, fmt.Errorf("failed to load department: %w", err)
	}
	created, err := s.sectorRepo.Create(ctx, department.Sector{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return department.Sector{}, fmt.Errorf("failed to create sector: %w", err)
	}
	return created, nil
}

func (s *MasterServiceImpl) ListSectors(ctx context.Context, departmentID string) ([]department.Sector, error) {
	sectors, err := s.sectorRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return sectors, nil
}

func (s *MasterServiceImpl) UpdateSector(ctx context.Context, actor auth.Identity, id string, req department.UpdateSectorRequest) (department.Sector, error) {
	if !actor.IsManager() {
		return department.Sector{}, user.ErrManagerAccessRequired
	}
	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		return department.Sector{}, err
	}
	if !validator.IsEmpty(req.Name) {
		sector.Name = req.Name
	}
	sector.DisplayOrder = req.DisplayOrder
	if err := s.sectorRepo.Update(ctx, sector); err != nil {
		return department.Sector{}, fmt.Errorf("failed to update sector: %w", err)
	}
	return sector, nil
}

func (s *MasterServiceImpl) DeleteSector(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	return s.sectorRepo.Delete(ctx, id)
}

func (s *MasterServiceImpl) CreateShift(ctx context.Context, actor auth.Identity, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if !actor.IsManager() {
		return shift.ShiftResponse{}, user.ErrManagerAccessRequired
	}
	if validator.IsEmpty(req.Name) {
		return shift.ShiftResponse{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return shift.ShiftResponse{}, shift.ErrInvalidTimeSpan
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, shift.ErrInvalidTimeSpan
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to load department: %w", err)
	}
	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		StartTime:    start,
		EndTime:      end,
		Pattern:      req.Pattern,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListShifts(ctx context.Context, departmentID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

func (s *MasterServiceImpl) DeleteShift(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	return s.shiftRepo.Delete(ctx, id)
}
