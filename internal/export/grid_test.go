package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/holiday"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/roster"
)

func rosterEntry(id, first, last string) roster.Entry {
	return roster.Entry{
		Employee: employee.Employee{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Privilege: employee.PrivilegeMember,
			Status:    employee.StatusActive,
		},
		Privilege: employee.PrivilegeMember,
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// cellFill returns the cell's pattern fill color, normalized to 6-digit RGB.
// Read-back colors may carry the leading alpha byte.
func cellFill(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	styleID, err := f.GetCellStyle("Schedule", cell)
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	if len(style.Fill.Color) == 0 {
		return ""
	}
	color := strings.ToUpper(style.Fill.Color[0])
	if len(color) == 8 {
		color = color[2:]
	}
	return color
}

// cellHasDiagonal reports whether the cell's borders include a diagonal line.
func cellHasDiagonal(t *testing.T, f *excelize.File, cell string) bool {
	t.Helper()
	styleID, err := f.GetCellStyle("Schedule", cell)
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	for _, b := range style.Border {
		if b.Type == "diagonalDown" {
			return true
		}
	}
	return false
}

func TestRenderMonthGridDimensions(t *testing.T) {
	// February 2024 is a leap month: 29 day columns.
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          2,
		Roster: []roster.Entry{
			rosterEntry("e1", "Anna", "Berg"),
			rosterEntry("e2", "Boris", "Calder"),
		},
		GenericShifts: []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	require.Equal(t, []string{"Schedule"}, f.GetSheetList())

	// Day number row runs 1..29 and stops there.
	first, err := f.GetCellValue("Schedule", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", first)
	last, err := f.GetCellValue("Schedule", "AD2") // col 30 = day 29
	require.NoError(t, err)
	assert.Equal(t, "29", last)
	past, err := f.GetCellValue("Schedule", "AE2")
	require.NoError(t, err)
	assert.Empty(t, past)

	// One body row per roster entry.
	name1, err := f.GetCellValue("Schedule", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Anna Berg", name1)
	name2, err := f.GetCellValue("Schedule", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Boris Calder", name2)

	// Feb 10 and 11 2024 fall on a weekend and are tinted; Feb 9 is not.
	assert.Equal(t, "D9D9D9", cellFill(t, f, "K4"))
	assert.Equal(t, "D9D9D9", cellFill(t, f, "L4"))
	assert.Empty(t, cellFill(t, f, "J4"))
}

func TestRenderMonthAssignmentAppearsInCell(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		Roster:         []roster.Entry{rosterEntry("e1", "Anna", "Berg")},
		Rows: []schedule.ExportRow{
			{EmployeeID: "e1", Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), ShiftName: "A"},
		},
		GenericShifts: []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	// March 7 is day 7, column 2+6 = H; the only roster row is row 4.
	got, err := f.GetCellValue("Schedule", "H4")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestRenderMonthCancelledKeepsText(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		Roster:         []roster.Entry{rosterEntry("e1", "Anna", "Berg")},
		Rows: []schedule.ExportRow{
			{
				EmployeeID: "e1",
				Date:       time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
				ShiftName:  "A",
				Comment:    schedule.CommentCancelled,
			},
		},
		GenericShifts: []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	got, err := f.GetCellValue("Schedule", "H4")
	require.NoError(t, err)
	assert.Equal(t, "A", got, "cancelled shifts stay visible, struck through")
	assert.True(t, cellHasDiagonal(t, f, "H4"))
	assert.False(t, cellHasDiagonal(t, f, "G4"), "neighboring day keeps plain borders")
}

func TestRenderMonthCompanyHolidayBlanksCell(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		Roster:         []roster.Entry{rosterEntry("e1", "Anna", "Berg")},
		Rows: []schedule.ExportRow{
			{EmployeeID: "e1", Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), ShiftName: "A"},
		},
		Holidays: []holiday.Holiday{
			{Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), Name: "Founding Day", Type: holiday.TypeCompany},
		},
		GenericShifts: []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	got, err := f.GetCellValue("Schedule", "H4")
	require.NoError(t, err)
	assert.Empty(t, got, "company holiday suppresses the assignment")
}

func TestRenderMonthLeaveBlanksCell(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		Roster:         []roster.Entry{rosterEntry("e1", "Anna", "Berg")},
		Rows: []schedule.ExportRow{
			{EmployeeID: "e1", Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), ShiftName: "A"},
		},
		Leaves: []leave.LeaveRequest{
			{
				EmployeeID:  "e1",
				LeaveTypeID: "lt1",
				StartDate:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
				Status:      leave.LeaveStatusApproved,
			},
		},
		LeaveTypes: []leave.LeaveType{
			{ID: "lt1", Name: "Vacation", Color: "C6E0B4"},
		},
		GenericShifts: []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	got, err := f.GetCellValue("Schedule", "H4")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRenderMonthCountFormulas(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		Roster: []roster.Entry{
			rosterEntry("e1", "Anna", "Berg"),
			rosterEntry("e2", "Boris", "Calder"),
		},
		GenericShifts: []string{"A", "B"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	// Two roster rows (4, 5), blank spacer row 6, count rows 7 and 8.
	label, err := f.GetCellValue("Schedule", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Shift A", label)

	formula, err := f.GetCellFormula("Schedule", "B7")
	require.NoError(t, err)
	assert.Equal(t, `COUNTIF(B4:B5,"A")`, formula)

	label, err = f.GetCellValue("Schedule", "A8")
	require.NoError(t, err)
	assert.Equal(t, "Shift B", label)
}

func TestRenderMonthEmptyRoster(t *testing.T) {
	data, err := RenderMonth(GridInput{
		DepartmentName: "Production",
		Year:           2024,
		Month:          3,
		GenericShifts:  []string{"A"},
	})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	title, err := f.GetCellValue("Schedule", "B1")
	require.NoError(t, err)
	assert.Equal(t, "March 2024", title)
}

func TestRenderMonthInvalidPeriod(t *testing.T) {
	_, err := RenderMonth(GridInput{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, schedule.ErrInvalidPeriod)
}

func TestFilenameAndArchiveDir(t *testing.T) {
	assert.Equal(t, "2024.02 Production.xlsx", Filename(2024, 2, "Production"))
	assert.Equal(t, "2024/02. February", ArchiveDir(2024, 2))
}
