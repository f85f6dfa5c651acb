package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/access"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type AccessServiceImpl struct {
	templateRepo   access.Repository
	departmentRepo department.Repository
}

func NewAccessService(templateRepo access.Repository, departmentRepo department.Repository) access.AccessService {
	return &AccessServiceImpl{
		templateRepo:   templateRepo,
		departmentRepo: departmentRepo,
	}
}

// Save stores the permission tree for a (department, role) pair, replacing
// any previous template.
func (s *AccessServiceImpl) Save(ctx context.Context, actor auth.Identity, departmentID string, role user.Role, tree access.PermissionTree) (access.Template, error) {
	if !actor.IsAdmin() {
		return access.Template{}, user.ErrAdminAccessRequired
	}
	if role != user.RoleAdmin && role != user.RoleManager && role != user.RoleEmployee {
		return access.Template{}, access.ErrInvalidRole
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return access.Template{}, fmt.Errorf("failed to load department: %w", err)
	}

	saved, err := s.templateRepo.Upsert(ctx, access.Template{
		DepartmentID: departmentID,
		Role:         role,
		Tree:         tree,
	})
	if err != nil {
		return access.Template{}, fmt.Errorf("failed to save access template: %w", err)
	}
	return saved, nil
}

// Resolve returns the effective permission tree for a user in a department.
// A department with no template for the role yields an empty tree, which
// denies everything.
func (s *AccessServiceImpl) Resolve(ctx context.Context, departmentID string, role user.Role) (access.PermissionTree, error) {
	tpl, err := s.templateRepo.GetByDepartmentAndRole(ctx, departmentID, role)
	if err != nil {
		if errors.Is(err, access.ErrTemplateNotFound) {
			return access.PermissionTree{}, nil
		}
		return access.PermissionTree{}, fmt.Errorf("failed to load access template: %w", err)
	}
	return tpl.Tree, nil
}

func (s *AccessServiceImpl) ListByDepartment(ctx context.Context, actor auth.Identity, departmentID string) ([]access.Template, error) {
	if !actor.IsManager() {
		return nil, user.ErrManagerAccessRequired
	}
	templates, err := s.templateRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list access templates: %w", err)
	}
	return templates, nil
}

func (s *AccessServiceImpl) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsAdmin() {
		return user.ErrAdminAccessRequired
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, access.ErrTemplateNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete access template: %w", err)
	}
	return nil
}
