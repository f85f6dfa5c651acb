package shift

import "time"

// Shift is a department-scoped named shift. Name is the short code shown in
// grid cells ("A", "B", "D8", ...). Pattern is a rotation tag like "4/2" or
// "5/2" used only to group shifts in the export legend.
type Shift struct {
	ID           string
	DepartmentID string
	Name         string
	StartTime    time.Time // time-of-day, date part ignored
	EndTime      time.Time // time-of-day, date part ignored
	Pattern      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TimeRange renders "08:00 - 20:00" for the export legend.
func (s Shift) TimeRange() string {
	return s.StartTime.Format("15:04") + " - " + s.EndTime.Format("15:04")
}
