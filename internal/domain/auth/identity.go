package auth

import "github.com/shiftboard/shiftboard-backend-go/internal/domain/user"

// Identity is the acting user, passed explicitly into every service
// operation that needs authorization. Nothing in the core reads identity
// from ambient state.
type Identity struct {
	UserID     string
	EmployeeID *string
	Role       user.Role
}

func (i Identity) IsManager() bool {
	return i.Role == user.RoleManager || i.Role == user.RoleAdmin
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}
