package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/export"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/storage"
)

// ExportBuilder assembles the monthly workbook for a department/period.
// Implemented by the export service; shared with the interactive download.
type ExportBuilder interface {
	BuildMonth(ctx context.Context, departmentID string, year, month int) (data []byte, filename string, err error)
}

// Uploader is the remote sink. Implemented by the NAS client.
type Uploader interface {
	Upload(ctx context.Context, dir, filename string, data []byte) error
}

type ArchiveJobs struct {
	builder     ExportBuilder
	sessionRepo schedule.EditSessionRepository
	store       storage.ArchiveStorage
	uploader    Uploader
}

func NewArchiveJobs(
	builder ExportBuilder,
	sessionRepo schedule.EditSessionRepository,
	store storage.ArchiveStorage,
	uploader Uploader,
) *ArchiveJobs {
	return &ArchiveJobs{
		builder:     builder,
		sessionRepo: sessionRepo,
		store:       store,
		uploader:    uploader,
	}
}

func (j *ArchiveJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("archive_expired_edit_sessions", interval, j.ArchiveExpiredSessions)
}

// ArchiveExpiredSessions exports every schedule period whose edit session
// has expired. Sessions are processed sequentially; one failing session is
// logged and skipped, the rest of the sweep continues. The session token is
// removed only after both sinks succeeded, so a partial failure is retried
// on the next sweep.
func (j *ArchiveJobs) ArchiveExpiredSessions(ctx context.Context) error {
	expired, err := j.sessionRepo.GetExpired(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to load expired edit sessions: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	failed := 0
	for _, session := range expired {
		if err := j.archiveSession(ctx, session); err != nil {
			failed++
			slog.Error("Cron: schedule archive failed",
				"department_id", session.DepartmentID,
				"year", session.Year,
				"month", session.Month,
				"error", err,
			)
			continue
		}
		slog.Info("Cron: schedule archived",
			"department_id", session.DepartmentID,
			"year", session.Year,
			"month", session.Month,
		)
	}

	if failed > 0 {
		return fmt.Errorf("archive sweep: %d of %d sessions failed", failed, len(expired))
	}
	return nil
}

func (j *ArchiveJobs) archiveSession(ctx context.Context, session schedule.EditSession) error {
	data, filename, err := j.builder.BuildMonth(ctx, session.DepartmentID, session.Year, session.Month)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	dir := export.ArchiveDir(session.Year, session.Month)

	written, err := j.store.WriteUnique(ctx, dir, filename, data)
	if err != nil {
		return fmt.Errorf("failed to write local archive: %w", err)
	}
	slog.Debug("Cron: local archive written", "path", written)

	if err := j.uploader.Upload(ctx, dir, filename, data); err != nil {
		return fmt.Errorf("failed to upload to NAS: %w", err)
	}

	if err := j.sessionRepo.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to delete edit session: %w", err)
	}
	return nil
}
