package department

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

type CreateSectorRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	DisplayOrder *int   `json:"display_order"`
}

type UpdateSectorRequest struct {
	Name         string `json:"name"`
	DisplayOrder *int   `json:"display_order"`
}
