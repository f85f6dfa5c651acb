package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, department_id, name, start_time, end_time, pattern, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.DepartmentID, s.Name, s.StartTime, s.EndTime, s.Pattern,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var s shift.Shift
	err := q.QueryRow(ctx, `
		SELECT id, department_id, name, start_time, end_time, pattern, created_at, updated_at
		FROM shifts WHERE id = $1
	`, id).Scan(&s.ID, &s.DepartmentID, &s.Name, &s.StartTime, &s.EndTime, &s.Pattern, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, department_id, name, start_time, end_time, pattern, created_at, updated_at
		FROM shifts
		WHERE department_id = $1
		ORDER BY pattern, name
	`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(&s.ID, &s.DepartmentID, &s.Name, &s.StartTime, &s.EndTime, &s.Pattern, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE shifts SET name = $2, start_time = $3, end_time = $4, pattern = $5, updated_at = NOW()
		WHERE id = $1
	`, s.ID, s.Name, s.StartTime, s.EndTime, s.Pattern)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}
