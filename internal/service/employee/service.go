package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.Repository
	departmentRepo department.Repository
	sectorRepo     department.SectorRepository
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	departmentRepo department.Repository,
	sectorRepo department.SectorRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		sectorRepo:     sectorRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, actor auth.Identity, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !actor.IsManager() {
		return employee.EmployeeResponse{}, user.ErrManagerAccessRequired
	}

	var validationErrors validator.ValidationErrors
	if validator.IsEmpty(req.FirstName) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(req.LastName) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if req.HireDate != nil && !validator.IsValidDate(*req.HireDate) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if len(validationErrors) > 0 {
		return employee.EmployeeResponse{}, validationErrors
	}

	privilege := employee.Privilege(req.Privilege)
	if privilege < employee.PrivilegeNone || privilege > employee.PrivilegeTopManager {
		return employee.EmployeeResponse{}, employee.ErrInvalidPrivilege
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load department: %w", err)
	}
	if req.SectorID != nil {
		sector, err := s.sectorRepo.GetByID(ctx, *req.SectorID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to load sector: %w", err)
		}
		if sector.DepartmentID != req.DepartmentID {
			return employee.EmployeeResponse{}, department.ErrSectorNotFound
		}
	}

	emp := employee.Employee{
		DepartmentID: req.DepartmentID,
		SectorID:     req.SectorID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Privilege:    privilege,
		Status:       employee.StatusActive,
	}
	if req.HireDate != nil {
		hire, _ := time.Parse("2006-01-02", *req.HireDate)
		emp.HireDate = &hire
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, actor auth.Identity, req employee.UpdateEmployeeRequest, hireDate, termDate *string) (employee.EmployeeResponse, error) {
	if !actor.IsManager() {
		return employee.EmployeeResponse{}, user.ErrManagerAccessRequired
	}

	if req.Privilege != nil {
		p := employee.Privilege(*req.Privilege)
		if p < employee.PrivilegeNone || p > employee.PrivilegeTopManager {
			return employee.EmployeeResponse{}, employee.ErrInvalidPrivilege
		}
	}
	if req.Status != nil {
		st := employee.Status(*req.Status)
		if st != employee.StatusActive && st != employee.StatusInactive {
			return employee.EmployeeResponse{}, employee.ErrInvalidStatus
		}
	}
	if hireDate != nil {
		parsed, err := time.Parse("2006-01-02", *hireDate)
		if err != nil {
			return employee.EmployeeResponse{}, schedule.ErrInvalidDateFormat
		}
		req.HireDate = &parsed
	}
	if termDate != nil {
		parsed, err := time.Parse("2006-01-02", *termDate)
		if err != nil {
			return employee.EmployeeResponse{}, schedule.ErrInvalidDateFormat
		}
		req.TermDate = &parsed
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	return s.employeeRepo.Delete(ctx, id)
}
