package employee

import "time"

type Employee struct {
	ID           string
	DepartmentID string
	SectorID     *string
	FirstName    string
	LastName     string
	Privilege    Privilege
	Status       Status
	HireDate     *time.Time
	TermDate     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last" for display and export rows.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Privilege is the employee's scheduling rank. Values are ordered: a higher
// value outranks a lower one.
type Privilege int

const (
	PrivilegeNone        Privilege = iota // administrative/service accounts, never rostered
	PrivilegeMember                       // regular rostered employee
	PrivilegeShiftLeader                  // leads a rotating shift
	PrivilegeManager                      // department manager
	PrivilegeTopManager                   // above department level, never rostered
)

var privilegeNames = map[Privilege]string{
	PrivilegeNone:        "none",
	PrivilegeMember:      "member",
	PrivilegeShiftLeader: "shift_leader",
	PrivilegeManager:     "manager",
	PrivilegeTopManager:  "top_manager",
}

func (p Privilege) String() string {
	if name, ok := privilegeNames[p]; ok {
		return name
	}
	return "unknown"
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
