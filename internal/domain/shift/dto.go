package shift

type CreateShiftRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	Pattern      string `json:"pattern"`
}

type ShiftResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Pattern      string `json:"pattern"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		DepartmentID: s.DepartmentID,
		Name:         s.Name,
		StartTime:    s.StartTime.Format("15:04"),
		EndTime:      s.EndTime.Format("15:04"),
		Pattern:      s.Pattern,
	}
}
