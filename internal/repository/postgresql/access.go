package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/access"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type accessRepositoryImpl struct {
	db *database.DB
}

func NewAccessRepository(db *database.DB) access.Repository {
	return &accessRepositoryImpl{db: db}
}

func (r *accessRepositoryImpl) Upsert(ctx context.Context, tpl access.Template) (access.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_templates (id, department_id, role, tree, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (department_id, role) DO UPDATE
		SET tree = EXCLUDED.tree,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, tpl.DepartmentID, tpl.Role, tpl.Tree).
		Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		return access.Template{}, err
	}
	return tpl, nil
}

func (r *accessRepositoryImpl) GetByDepartmentAndRole(ctx context.Context, departmentID string, role user.Role) (access.Template, error) {
	q := GetQuerier(ctx, r.db)

	var tpl access.Template
	err := q.QueryRow(ctx, `
		SELECT id, department_id, role, tree, created_at, updated_at
		FROM access_templates
		WHERE department_id = $1 AND role = $2
	`, departmentID, role).Scan(&tpl.ID, &tpl.DepartmentID, &tpl.Role, &tpl.Tree, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Template{}, access.ErrTemplateNotFound
		}
		return access.Template{}, err
	}
	return tpl, nil
}

func (r *accessRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]access.Template, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, department_id, role, tree, created_at, updated_at
		FROM access_templates
		WHERE department_id = $1
		ORDER BY role
	`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []access.Template
	for rows.Next() {
		var tpl access.Template
		err := rows.Scan(&tpl.ID, &tpl.DepartmentID, &tpl.Role, &tpl.Tree, &tpl.CreatedAt, &tpl.UpdatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

func (r *accessRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM access_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return access.ErrTemplateNotFound
	}
	return nil
}
