package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/access"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

type AccessHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AccessHandlerImpl struct {
	accessService access.AccessService
}

func NewAccessHandler(service access.AccessService) AccessHandler {
	return &AccessHandlerImpl{accessService: service}
}

// Save implements AccessHandler.
func (h *AccessHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req struct {
		DepartmentID string                `json:"department_id"`
		Role         string                `json:"role"`
		Tree         access.PermissionTree `json:"tree"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save access template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.accessService.Save(r.Context(), actor, req.DepartmentID, user.Role(req.Role), req.Tree)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access template saved successfully", saved)
}

// Resolve implements AccessHandler.
// Returns the caller's own effective permission tree for the department.
func (h *AccessHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	tree, err := h.accessService.Resolve(r.Context(), departmentID, actor.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tree)
}

// ListByDepartment implements AccessHandler.
func (h *AccessHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	templates, err := h.accessService.ListByDepartment(r.Context(), actor, departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// Delete implements AccessHandler.
func (h *AccessHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Identity(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Access template ID is required", nil)
		return
	}

	if err := h.accessService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access template deleted successfully", nil)
}
