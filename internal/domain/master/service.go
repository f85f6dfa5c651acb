package master

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
)

// MasterService covers the org structure: departments, their sectors, and
// the shift catalogue.
type MasterService interface {
	// CreateDepartment registers a department. Admin only.
	CreateDepartment(ctx context.Context, actor auth.Identity, req department.CreateDepartmentRequest) (department.Department, error)

	ListDepartments(ctx context.Context) ([]department.Department, error)

	GetDepartment(ctx context.Context, id string) (department.Department, error)

	// DeleteDepartment removes a department. Admin only.
	DeleteDepartment(ctx context.Context, actor auth.Identity, id string) error

	// CreateSector adds a sector to a department. Manager only.
	CreateSector(ctx context.Context, actor auth.Identity, req department.CreateSectorRequest) (department.Sector, error)

	ListSectors(ctx context.Context, departmentID string) ([]department.Sector, error)

	// UpdateSector renames or reorders a sector. An empty name keeps the
	// current one. Manager only.
	UpdateSector(ctx context.Context, actor auth.Identity, id string, req department.UpdateSectorRequest) (department.Sector, error)

	// DeleteSector removes a sector. Manager only.
	DeleteSector(ctx context.Context, actor auth.Identity, id string) error

	// CreateShift adds a shift to a department's catalogue. Manager only.
	CreateShift(ctx context.Context, actor auth.Identity, req shift.CreateShiftRequest) (shift.ShiftResponse, error)

	ListShifts(ctx context.Context, departmentID string) ([]shift.ShiftResponse, error)

	// DeleteShift removes a shift from the catalogue. Manager only.
	DeleteShift(ctx context.Context, actor auth.Identity, id string) error
}
