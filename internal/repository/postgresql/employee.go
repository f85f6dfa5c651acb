package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, department_id, sector_id, first_name, last_name,
			privilege, status, hire_date, term_date,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.DepartmentID, emp.SectorID, emp.FirstName, emp.LastName,
		int(emp.Privilege), emp.Status, emp.HireDate, emp.TermDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, sector_id, first_name, last_name,
		       privilege, status, hire_date, term_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	var privilege int
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.DepartmentID,
		&emp.SectorID,
		&emp.FirstName,
		&emp.LastName,
		&privilege,
		&emp.Status,
		&emp.HireDate,
		&emp.TermDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	emp.Privilege = employee.Privilege(privilege)

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, sector_id, first_name, last_name,
		       privilege, status, hire_date, term_date, created_at, updated_at
		FROM employees
		WHERE department_id = $1
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var privilege int
		err := rows.Scan(
			&emp.ID,
			&emp.DepartmentID,
			&emp.SectorID,
			&emp.FirstName,
			&emp.LastName,
			&privilege,
			&emp.Status,
			&emp.HireDate,
			&emp.TermDate,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		emp.Privilege = employee.Privilege(privilege)
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			department_id = COALESCE($2, department_id),
			sector_id = COALESCE($3, sector_id),
			first_name = COALESCE($4, first_name),
			last_name = COALESCE($5, last_name),
			privilege = COALESCE($6, privilege),
			status = COALESCE($7, status),
			hire_date = COALESCE($8, hire_date),
			term_date = COALESCE($9, term_date),
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		req.ID, req.DepartmentID, req.SectorID, req.FirstName, req.LastName,
		req.Privilege, req.Status, req.HireDate, req.TermDate,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
