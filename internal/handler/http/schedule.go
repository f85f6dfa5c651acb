package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	MonthlyView(w http.ResponseWriter, r *http.Request)
	SaveAssignments(w http.ResponseWriter, r *http.Request)
	Reorder(w http.ResponseWriter, r *http.Request)
	OpenEditSession(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(service schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: service}
}

// parsePeriod reads year/month from query parameters.
func parsePeriod(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, schedule.ErrInvalidPeriod
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, schedule.ErrInvalidPeriod
	}
	if !validator.IsValidPeriod(year, month) {
		return 0, 0, schedule.ErrInvalidPeriod
	}
	return year, month, nil
}

// MonthlyView implements ScheduleHandler.
func (h *ScheduleHandlerImpl) MonthlyView(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.scheduleService.MonthlyView(r.Context(), departmentID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// SaveAssignments implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SaveAssignments(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req schedule.SaveAssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveAssignments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.SaveAssignments(r.Context(), actor, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignments saved successfully", nil)
}

// Reorder implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Reorder(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req schedule.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reorder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.Reorder(r.Context(), actor, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster order updated successfully", nil)
}

// OpenEditSession implements ScheduleHandler.
func (h *ScheduleHandlerImpl) OpenEditSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req schedule.OpenEditSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("OpenEditSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	session, err := h.scheduleService.OpenEditSession(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"id":         session.ID,
		"expires_at": session.ExpiresAt,
	})
}
