package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Upsert enforces the one-assignment-per-(employee, date) invariant with an
// ON CONFLICT update.
func (r *assignmentRepositoryImpl) Upsert(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_assignments (
			id, employee_id, date, shift_id, comment, is_shift_leader, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET shift_id = EXCLUDED.shift_id,
		    comment = EXCLUDED.comment,
		    is_shift_leader = EXCLUDED.is_shift_leader,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Date, a.ShiftID, a.Comment, a.IsShiftLeader,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return schedule.Assignment{}, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	var a schedule.Assignment
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, date, shift_id, comment, is_shift_leader, created_at, updated_at
		FROM schedule_assignments
		WHERE employee_id = $1 AND date = $2::date
	`, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ShiftID, &a.Comment, &a.IsShiftLeader, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Assignment{}, schedule.ErrAssignmentNotFound
		}
		return schedule.Assignment{}, err
	}
	return a, nil
}

// GetMonthRows returns the typed export projection for a department and
// month: each assignment joined with its shift's short name.
func (r *assignmentRepositoryImpl) GetMonthRows(ctx context.Context, departmentID string, year, month int) ([]schedule.ExportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.employee_id, sa.date, COALESCE(sh.name, ''), sa.comment, sa.is_shift_leader
		FROM schedule_assignments sa
		INNER JOIN employees e ON sa.employee_id = e.id
		LEFT JOIN shifts sh ON sa.shift_id = sh.id
		WHERE e.department_id = $1
		  AND date_part('year', sa.date) = $2
		  AND date_part('month', sa.date) = $3
		ORDER BY sa.date, sa.employee_id
	`

	rows, err := q.Query(ctx, query, departmentID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []schedule.ExportRow
	for rows.Next() {
		var row schedule.ExportRow
		err := rows.Scan(&row.EmployeeID, &row.Date, &row.ShiftName, &row.Comment, &row.IsShiftLeader)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *assignmentRepositoryImpl) GetByDepartmentAndMonth(ctx context.Context, departmentID string, year, month int) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.date, sa.shift_id, sa.comment, sa.is_shift_leader, sa.created_at, sa.updated_at
		FROM schedule_assignments sa
		INNER JOIN employees e ON sa.employee_id = e.id
		WHERE e.department_id = $1
		  AND date_part('year', sa.date) = $2
		  AND date_part('month', sa.date) = $3
		ORDER BY sa.date, sa.employee_id
	`

	rows, err := q.Query(ctx, query, departmentID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		var a schedule.Assignment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.ShiftID, &a.Comment, &a.IsShiftLeader, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM schedule_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

type orderOverrideRepositoryImpl struct {
	db *database.DB
}

func NewOrderOverrideRepository(db *database.DB) schedule.OrderOverrideRepository {
	return &orderOverrideRepositoryImpl{db: db}
}

func (r *orderOverrideRepositoryImpl) Upsert(ctx context.Context, ov schedule.OrderOverride) (schedule.OrderOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO order_overrides (
			id, employee_id, department_id, year, month, order_index, sector_id, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		ON CONFLICT (employee_id, department_id, year, month) DO UPDATE
		SET order_index = EXCLUDED.order_index,
		    sector_id = EXCLUDED.sector_id,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ov.EmployeeID, ov.DepartmentID, ov.Year, ov.Month, ov.OrderIndex, ov.SectorID,
	).Scan(&ov.ID, &ov.CreatedAt, &ov.UpdatedAt)
	if err != nil {
		return schedule.OrderOverride{}, err
	}
	return ov, nil
}

func (r *orderOverrideRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]schedule.OrderOverride, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, department_id, year, month, order_index, sector_id, created_at, updated_at
		FROM order_overrides
		WHERE department_id = $1
		ORDER BY year, month, order_index
	`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []schedule.OrderOverride
	for rows.Next() {
		var ov schedule.OrderOverride
		err := rows.Scan(&ov.ID, &ov.EmployeeID, &ov.DepartmentID, &ov.Year, &ov.Month, &ov.OrderIndex, &ov.SectorID, &ov.CreatedAt, &ov.UpdatedAt)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}
	return overrides, rows.Err()
}

type leaderOverrideRepositoryImpl struct {
	db *database.DB
}

func NewLeaderOverrideRepository(db *database.DB) schedule.LeaderOverrideRepository {
	return &leaderOverrideRepositoryImpl{db: db}
}

func (r *leaderOverrideRepositoryImpl) Upsert(ctx context.Context, ov schedule.LeaderOverride) (schedule.LeaderOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leader_overrides (
			id, employee_id, department_id, year, month, is_leader, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		ON CONFLICT (employee_id, department_id, year, month) DO UPDATE
		SET is_leader = EXCLUDED.is_leader,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ov.EmployeeID, ov.DepartmentID, ov.Year, ov.Month, ov.IsLeader,
	).Scan(&ov.ID, &ov.CreatedAt, &ov.UpdatedAt)
	if err != nil {
		return schedule.LeaderOverride{}, err
	}
	return ov, nil
}

func (r *leaderOverrideRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]schedule.LeaderOverride, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, department_id, year, month, is_leader, created_at, updated_at
		FROM leader_overrides
		WHERE department_id = $1
		ORDER BY year, month
	`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []schedule.LeaderOverride
	for rows.Next() {
		var ov schedule.LeaderOverride
		err := rows.Scan(&ov.ID, &ov.EmployeeID, &ov.DepartmentID, &ov.Year, &ov.Month, &ov.IsLeader, &ov.CreatedAt, &ov.UpdatedAt)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}
	return overrides, rows.Err()
}

type editSessionRepositoryImpl struct {
	db *database.DB
}

func NewEditSessionRepository(db *database.DB) schedule.EditSessionRepository {
	return &editSessionRepositoryImpl{db: db}
}

func (r *editSessionRepositoryImpl) Upsert(ctx context.Context, session schedule.EditSession) (schedule.EditSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO edit_sessions (
			id, department_id, year, month, expires_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		)
		ON CONFLICT (department_id, year, month) DO UPDATE
		SET expires_at = EXCLUDED.expires_at,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.DepartmentID, session.Year, session.Month, session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return schedule.EditSession{}, err
	}
	return session, nil
}

func (r *editSessionRepositoryImpl) GetExpired(ctx context.Context, now time.Time) ([]schedule.EditSession, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, department_id, year, month, expires_at, created_at, updated_at
		FROM edit_sessions
		WHERE expires_at < $1
		ORDER BY expires_at
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []schedule.EditSession
	for rows.Next() {
		var s schedule.EditSession
		err := rows.Scan(&s.ID, &s.DepartmentID, &s.Year, &s.Month, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *editSessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM edit_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrEditSessionNotFound
	}
	return nil
}
