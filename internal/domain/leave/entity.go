package leave

import "time"

// LeaveType carries the legend color used by the grid renderer. Color is a
// 6-digit hex RGB without the leading '#'.
type LeaveType struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusDenied    LeaveStatus = "denied"
	LeaveStatusCancelled LeaveStatus = "cancelled"
	LeaveStatusReflected LeaveStatus = "reflected"
)

// LeaveRequest spans [StartDate, EndDate] inclusive, calendar days only.
// No two non-denied requests for one employee may overlap.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Status      LeaveStatus
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joins (for responses)
	LeaveTypeName *string
	EmployeeName  *string
}

// Covers reports whether the request spans the given calendar day.
// Time-of-day on either side is ignored.
func (r LeaveRequest) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
