package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // full access, manages templates and holidays
	RoleManager  Role = "manager"  // edits schedules, approves leave
	RoleEmployee Role = "employee" // views own schedule, requests leave
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if the user can edit schedules and approve leave.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
