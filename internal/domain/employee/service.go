package employee

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
)

// EmployeeService manages the employee roster of a department.
type EmployeeService interface {
	// Create registers a new employee. Manager only.
	Create(ctx context.Context, actor auth.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)

	// Update applies partial changes. hireDate and termDate are optional
	// YYYY-MM-DD strings. Manager only.
	Update(ctx context.Context, actor auth.Identity, req UpdateEmployeeRequest, hireDate, termDate *string) (EmployeeResponse, error)

	// Delete removes an employee. Manager only.
	Delete(ctx context.Context, actor auth.Identity, id string) error
}
