package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrSectorNotFound     = errors.New("sector not found")
	ErrDepartmentNameUsed = errors.New("department with this name already exists")
)
