package department

import "time"

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sector is a sub-unit of a department. DisplayOrder controls where the
// sector's employees appear in the monthly grid; nil sorts after every
// sector that has an explicit order.
type Sector struct {
	ID           string
	DepartmentID string
	Name         string
	DisplayOrder *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
