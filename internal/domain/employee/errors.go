package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPrivilege = errors.New("invalid privilege level")
	ErrInvalidStatus    = errors.New("invalid employment status")
)
