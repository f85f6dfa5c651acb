package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler interface {
	DownloadMonth(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService schedule.ExportService
}

func NewExportHandler(service schedule.ExportService) ExportHandler {
	return &ExportHandlerImpl{exportService: service}
}

// DownloadMonth implements ExportHandler.
func (h *ExportHandlerImpl) DownloadMonth(w http.ResponseWriter, r *http.Request) {
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

	data, filename, err := h.exportService.BuildMonth(r.Context(), departmentID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, xlsxContentType, data)
}
