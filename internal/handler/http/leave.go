package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetEmployeeRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	DenyRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	ReflectRequest(w http.ResponseWriter, r *http.Request)

	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(service leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: service}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Employees filing for themselves may omit the employee id.
	if req.EmployeeID == "" && actor.EmployeeID != nil {
		req.EmployeeID = *actor.EmployeeID
	}

	created, err := h.leaveService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok || actor.EmployeeID == nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requests, err := h.leaveService.GetByEmployee(r.Context(), *actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetEmployeeRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetEmployeeRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	requests, err := h.leaveService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, action string, fn func(r *http.Request, id string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	if err := fn(r, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+action, nil)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	h.decide(w, r, "approved", func(r *http.Request, id string) error {
		return h.leaveService.Approve(r.Context(), actor, id)
	})
}

// DenyRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) DenyRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	h.decide(w, r, "denied", func(r *http.Request, id string) error {
		return h.leaveService.Deny(r.Context(), actor, id)
	})
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	h.decide(w, r, "cancelled", func(r *http.Request, id string) error {
		return h.leaveService.Cancel(r.Context(), actor, id)
	})
}

// ReflectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ReflectRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	h.decide(w, r, "reflected", func(r *http.Request, id string) error {
		return h.leaveService.Reflect(r.Context(), actor, id)
	})
}

// CreateType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateType(r.Context(), actor, leave.LeaveType{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", created)
}

// ListTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// DeleteType implements LeaveHandler.
func (h *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := h.leaveService.DeleteType(r.Context(), actor, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}
