package employee

import "time"

type CreateEmployeeRequest struct {
	DepartmentID string  `json:"department_id"`
	SectorID     *string `json:"sector_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Privilege    int     `json:"privilege"`
	HireDate     *string `json:"hire_date"` // YYYY-MM-DD
}

type UpdateEmployeeRequest struct {
	ID           string     `json:"-"`
	DepartmentID *string    `json:"department_id"`
	SectorID     *string    `json:"sector_id"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Privilege    *int       `json:"privilege"`
	Status       *string    `json:"status"`
	HireDate     *time.Time `json:"-"`
	TermDate     *time.Time `json:"-"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	SectorID     *string `json:"sector_id,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Privilege    string  `json:"privilege"`
	Status       string  `json:"status"`
	HireDate     *string `json:"hire_date,omitempty"`
	TermDate     *string `json:"term_date,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		SectorID:     e.SectorID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Privilege:    e.Privilege.String(),
		Status:       string(e.Status),
	}
	if e.HireDate != nil {
		d := e.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	if e.TermDate != nil {
		d := e.TermDate.Format("2006-01-02")
		resp.TermDate = &d
	}
	return resp
}
