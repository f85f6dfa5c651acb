package schedule

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
)

type ScheduleService interface {
	// MonthlyView resolves the live roster and effective leaders for a
	// department and period.
	MonthlyView(ctx context.Context, departmentID string, year, month int) (MonthlyViewResponse, error)

	// SaveAssignments upserts a batch of per-day assignments. Manager only.
	SaveAssignments(ctx context.Context, actor auth.Identity, req SaveAssignmentsRequest) error

	// Reorder records explicit roster positions (and optional sector or
	// leadership changes) effective from the given period. Manager only.
	Reorder(ctx context.Context, actor auth.Identity, req ReorderRequest) error

	// OpenEditSession marks the period as being edited and (re)arms its
	// archival expiry. Manager only.
	OpenEditSession(ctx context.Context, actor auth.Identity, req OpenEditSessionRequest) (EditSession, error)
}

// ExportService renders a department's month into an xlsx workbook. The
// archival sweep and the interactive download share one implementation, so
// the archived file and the downloaded file are identical.
type ExportService interface {
	// BuildMonth returns the workbook contents and its conventional
	// filename.
	BuildMonth(ctx context.Context, departmentID string, year, month int) ([]byte, string, error)
}
