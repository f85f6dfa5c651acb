package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.Name).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return department.Department{}, err
	}
	return dept, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	var dept department.Department
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM departments WHERE id = $1
	`, id).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return dept, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM departments ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE departments SET name = $2, updated_at = NOW() WHERE id = $1
	`, dept.ID, dept.Name)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

type sectorRepositoryImpl struct {
	db *database.DB
}

func NewSectorRepository(db *database.DB) department.SectorRepository {
	return &sectorRepositoryImpl{db: db}
}

func (r *sectorRepositoryImpl) Create(ctx context.Context, sector department.Sector) (department.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sectors (id, department_id, name, display_order, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, sector.DepartmentID, sector.Name, sector.DisplayOrder).
		Scan(&sector.ID, &sector.CreatedAt, &sector.UpdatedAt)
	if err != nil {
		return department.Sector{}, err
	}
	return sector, nil
}

func (r *sectorRepositoryImpl) GetByID(ctx context.Context, id string) (department.Sector, error) {
	q := GetQuerier(ctx, r.db)

	var sector department.Sector
	err := q.QueryRow(ctx, `
		SELECT id, department_id, name, display_order, created_at, updated_at
		FROM sectors WHERE id = $1
	`, id).Scan(&sector.ID, &sector.DepartmentID, &sector.Name, &sector.DisplayOrder, &sector.CreatedAt, &sector.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Sector{}, department.ErrSectorNotFound
		}
		return department.Sector{}, err
	}
	return sector, nil
}

func (r *sectorRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]department.Sector, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, department_id, name, display_order, created_at, updated_at
		FROM sectors
		WHERE department_id = $1
		ORDER BY display_order NULLS LAST, name
	`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []department.Sector
	for rows.Next() {
		var sector department.Sector
		err := rows.Scan(&sector.ID, &sector.DepartmentID, &sector.Name, &sector.DisplayOrder, &sector.CreatedAt, &sector.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, sector)
	}
	return sectors, rows.Err()
}

func (r *sectorRepositoryImpl) Update(ctx context.Context, sector department.Sector) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE sectors SET name = $2, display_order = $3, updated_at = NOW() WHERE id = $1
	`, sector.ID, sector.Name, sector.DisplayOrder)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrSectorNotFound
	}
	return nil
}

func (r *sectorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM sectors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrSectorNotFound
	}
	return nil
}
