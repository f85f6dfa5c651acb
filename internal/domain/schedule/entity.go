package schedule

import "time"

// CommentCancelled is the reserved assignment comment meaning the shift was
// cancelled by a manager. The grid renderer strikes such cells through
// instead of clearing them.
const CommentCancelled = "cancelled"

// Assignment is one employee's shift on one calendar day. At most one row
// exists per (employee, date); date is compared by calendar day only.
type Assignment struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ShiftID       *string
	Comment       string
	IsShiftLeader bool // explicit leader flag for this assignment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderOverride pins an employee to an explicit roster position for a period
// and optionally moves them to another sector for display. An override stays
// in effect for every later period until a newer one supersedes it.
type OrderOverride struct {
	ID           string
	EmployeeID   string
	DepartmentID string
	Year         int
	Month        int
	OrderIndex   int
	SectorID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeaderOverride marks an employee as shift-leader-eligible (or explicitly
// not) from a given period onward.
type LeaderOverride struct {
	ID           string
	EmployeeID   string
	DepartmentID string
	Year         int
	Month        int
	IsLeader     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EditSession marks a (department, period) as open for interactive editing.
// Once ExpiresAt passes, the archival sweep exports the month and removes
// the session.
type EditSession struct {
	ID           string
	DepartmentID string
	Year         int
	Month        int
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
