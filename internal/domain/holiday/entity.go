package holiday

import "time"

type HolidayType string

const (
	// TypeRegular tints the day like a weekend.
	TypeRegular HolidayType = "regular"
	// TypeCompany blanks assigned shifts and uses the dark tint; it
	// takes precedence over leave coloring in the grid.
	TypeCompany HolidayType = "company"
)

// Holiday is unique per calendar date.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Type      HolidayType
	CreatedAt time.Time
	UpdatedAt time.Time
}
