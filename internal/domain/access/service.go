package access

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

// AccessService manages per-department permission templates.
type AccessService interface {
	// Save stores the permission tree for a (department, role) pair,
	// replacing any previous template. Admin only.
	Save(ctx context.Context, actor auth.Identity, departmentID string, role user.Role, tree PermissionTree) (Template, error)

	// Resolve returns the effective permission tree for a role in a
	// department. No template means an empty tree, which denies everything.
	Resolve(ctx context.Context, departmentID string, role user.Role) (PermissionTree, error)

	// ListByDepartment returns all templates for a department. Manager only.
	ListByDepartment(ctx context.Context, actor auth.Identity, departmentID string) ([]Template, error)

	// Delete removes a template by ID. Admin only.
	Delete(ctx context.Context, actor auth.Identity, id string) error
}
