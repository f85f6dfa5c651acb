package response

import (
	"errors"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/access"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/holiday"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrManagerAccessRequired), errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Org structure errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrSectorNotFound):
		NotFound(w, "Sector not found")
	case errors.Is(err, department.ErrDepartmentNameUsed):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift with this name already exists in the department")
	case errors.Is(err, shift.ErrInvalidTimeSpan):
		BadRequest(w, "Shift times must be HH:MM", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidPrivilege):
		BadRequest(w, "Invalid privilege level", nil)
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employment status", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, schedule.ErrEditSessionNotFound):
		NotFound(w, "Edit session not found")
	case errors.Is(err, schedule.ErrInvalidPeriod):
		BadRequest(w, "Invalid year or month", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, "Dates must be YYYY-MM-DD", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave request exists for this employee")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidStatusChange):
		Conflict(w, "Invalid leave status transition")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, holiday.ErrInvalidType):
		BadRequest(w, "Holiday type must be 'regular' or 'company'", nil)

	// Access template errors
	case errors.Is(err, access.ErrTemplateNotFound):
		NotFound(w, "Access template not found")
	case errors.Is(err, access.ErrInvalidRole):
		BadRequest(w, "Invalid role for access template", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
