package schedule

import (
	"context"
	"time"
)

type AssignmentRepository interface {
	Upsert(ctx context.Context, a Assignment) (Assignment, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Assignment, error)
	GetMonthRows(ctx context.Context, departmentID string, year, month int) ([]ExportRow, error)
	GetByDepartmentAndMonth(ctx context.Context, departmentID string, year, month int) ([]Assignment, error)
	Delete(ctx context.Context, id string) error
}

type OrderOverrideRepository interface {
	Upsert(ctx context.Context, ov OrderOverride) (OrderOverride, error)
	GetByDepartmentID(ctx context.Context, departmentID string) ([]OrderOverride, error)
}

type LeaderOverrideRepository interface {
	Upsert(ctx context.Context, ov LeaderOverride) (LeaderOverride, error)
	GetByDepartmentID(ctx context.Context, departmentID string) ([]LeaderOverride, error)
}

type EditSessionRepository interface {
	Upsert(ctx context.Context, session EditSession) (EditSession, error)
	GetExpired(ctx context.Context, now time.Time) ([]EditSession, error)
	Delete(ctx context.Context, id string) error
}
