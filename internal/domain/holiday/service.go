package holiday

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
)

// HolidayService maintains the holiday calendar shared by all departments.
type HolidayService interface {
	// Create registers a holiday. dateStr is YYYY-MM-DD. Manager only.
	Create(ctx context.Context, actor auth.Identity, dateStr, name string, hType HolidayType) (Holiday, error)

	GetByYear(ctx context.Context, year int) ([]Holiday, error)

	// Delete removes a holiday. Manager only.
	Delete(ctx context.Context, actor auth.Identity, id string) error
}
