package schedule

import "time"

// ExportRow is the typed projection of one assignment used by both the
// interactive download and the archival export: the assignment joined with
// its shift's short name.
type ExportRow struct {
	EmployeeID    string
	Date          time.Time
	ShiftName     string
	Comment       string
	IsShiftLeader bool
}

type SaveAssignmentRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	ShiftID       *string `json:"shift_id"`
	Comment       string  `json:"comment"`
	IsShiftLeader bool    `json:"is_shift_leader"`
}

type SaveAssignmentsRequest struct {
	DepartmentID string                  `json:"department_id"`
	Assignments  []SaveAssignmentRequest `json:"assignments"`
}

// ReorderEntry carries one employee's new position, and optionally a new
// sector and leadership flag, effective from the given period onward.
type ReorderEntry struct {
	EmployeeID string  `json:"employee_id"`
	OrderIndex int     `json:"order_index"`
	SectorID   *string `json:"sector_id"`
	IsLeader   *bool   `json:"is_leader"`
}

type ReorderRequest struct {
	DepartmentID string         `json:"department_id"`
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	Entries      []ReorderEntry `json:"entries"`
}

type OpenEditSessionRequest struct {
	DepartmentID string `json:"department_id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	ShiftID       *string `json:"shift_id,omitempty"`
	ShiftName     string  `json:"shift_name,omitempty"`
	Comment       string  `json:"comment,omitempty"`
	IsShiftLeader bool    `json:"is_shift_leader,omitempty"`
}

type RosterEntryResponse struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	SectorID   *string `json:"sector_id,omitempty"`
	Privilege  string  `json:"privilege"`
	Position   int     `json:"position"`
}

type LeaderResponse struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
	ShiftName  string `json:"shift_name"`
}

type MonthlyViewResponse struct {
	DepartmentID string                `json:"department_id"`
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Roster       []RosterEntryResponse `json:"roster"`
	Assignments  []AssignmentResponse  `json:"assignments"`
	Leaders      []LeaderResponse      `json:"leaders"`
}
