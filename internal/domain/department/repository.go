package department

import "context"

type Repository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error
	Delete(ctx context.Context, id string) error
}

type SectorRepository interface {
	Create(ctx context.Context, sector Sector) (Sector, error)
	GetByID(ctx context.Context, id string) (Sector, error)
	GetByDepartmentID(ctx context.Context, departmentID string) ([]Sector, error)
	Update(ctx context.Context, sector Sector) error
	Delete(ctx context.Context, id string) error
}
