package access

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type Repository interface {
	Upsert(ctx context.Context, tpl Template) (Template, error)
	GetByDepartmentAndRole(ctx context.Context, departmentID string, role user.Role) (Template, error)
	GetByDepartmentID(ctx context.Context, departmentID string) ([]Template, error)
	Delete(ctx context.Context, id string) error
}
