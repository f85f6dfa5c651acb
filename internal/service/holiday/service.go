package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/holiday"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// Create registers a holiday. Dates are unique: a second holiday on the
// same calendar day is rejected.
func (s *HolidayServiceImpl) Create(ctx context.Context, actor auth.Identity, dateStr, name string, hType holiday.HolidayType) (holiday.Holiday, error) {
	if !actor.IsManager() {
		return holiday.Holiday{}, user.ErrManagerAccessRequired
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return holiday.Holiday{}, schedule.ErrInvalidDateFormat
	}
	if hType != holiday.TypeRegular && hType != holiday.TypeCompany {
		return holiday.Holiday{}, holiday.ErrInvalidType
	}

	_, err = s.holidayRepo.GetByDate(ctx, date)
	if err == nil {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}
	if !errors.Is(err, holiday.ErrHolidayNotFound) {
		return holiday.Holiday{}, fmt.Errorf("failed to check holiday date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: name,
		Type: hType,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (s *HolidayServiceImpl) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	holidays, err := s.holidayRepo.GetByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	return holidays, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
