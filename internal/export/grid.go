// Package export renders a resolved monthly roster into the formatted
// schedule workbook and owns the artifact naming conventions.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/holiday"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/roster"
)

const (
	sheetName = "Schedule"

	nameCol     = 1 // employee names
	firstDayCol = 2 // one column per calendar day

	titleRow     = 1
	dayNumRow    = 2
	weekdayRow   = 3
	firstDataRow = 4

	dayColWidth   = 4.5
	nameColWidth  = 28.0
	dataRowHeight = 18.0

	weekendFill = "D9D9D9"
	companyFill = "808080"
)

type GridInput struct {
	DepartmentName string
	Year           int
	Month          int
	Roster         []roster.Entry
	Sectors        []department.Sector
	Shifts         []shift.Shift
	Rows           []schedule.ExportRow
	Leaves         []leave.LeaveRequest
	LeaveTypes     []leave.LeaveType
	Holidays       []holiday.Holiday
	GenericShifts  []string
}

// Filename is the artifact naming convention: "2024.02 Production.xlsx".
func Filename(year, month int, departmentName string) string {
	return fmt.Sprintf("%d.%02d %s.xlsx", year, month, departmentName)
}

// ArchiveDir is the local/NAS subfolder convention: "2024/02. February".
func ArchiveDir(year, month int) string {
	return fmt.Sprintf("%d/%02d. %s", year, month, time.Month(month).String())
}

// RenderMonth produces the monthly schedule workbook: one row per roster
// entry, one column per calendar day, trailing per-shift count rows with
// threshold coloring, and a side legend. An empty roster yields a valid
// grid with headers only.
func RenderMonth(in GridInput) ([]byte, error) {
	if in.Month < 1 || in.Month > 12 {
		return nil, schedule.ErrInvalidPeriod
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	g := &grid{f: f}

	days := daysInMonth(in.Year, in.Month)
	lastDayCol := firstDayCol + days - 1
	lastDataRow := firstDataRow + len(in.Roster) - 1

	styles, err := newGridStyles(f, in.LeaveTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to build styles: %w", err)
	}

	g.writeHeader(in, days, styles)
	g.writeBody(in, days, styles)
	g.writeCountRows(in, days, lastDataRow, styles)
	g.writeLegend(in, lastDayCol, styles)

	g.setColWidth(nameCol, nameCol, nameColWidth)
	g.setColWidth(firstDayCol, lastDayCol, dayColWidth)
	g.setColWidth(lastDayCol+2, lastDayCol+3, 14)
	if g.err != nil {
		return nil, fmt.Errorf("failed to render grid: %w", g.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// grid wraps the workbook with sticky error handling so layout code stays
// linear.
type grid struct {
	f   *excelize.File
	err error
}

func (g *grid) setCell(col, row int, value interface{}) {
	if g.err != nil {
		return
	}
	g.err = g.f.SetCellValue(sheetName, cellName(col, row), value)
}

func (g *grid) setStyle(col, row, styleID int) {
	if g.err != nil {
		return
	}
	g.err = g.f.SetCellStyle(sheetName, cellName(col, row), cellName(col, row), styleID)
}

func (g *grid) merge(fromCol, fromRow, toCol, toRow int) {
	if g.err != nil {
		return
	}
	g.err = g.f.MergeCell(sheetName, cellName(fromCol, fromRow), cellName(toCol, toRow))
}

func (g *grid) setColWidth(from, to int, width float64) {
	if g.err != nil {
		return
	}
	start, _ := excelize.ColumnNumberToName(from)
	end, _ := excelize.ColumnNumberToName(to)
	g.err = g.f.SetColWidth(sheetName, start, end, width)
}

func (g *grid) setRowHeight(row int, height float64) {
	if g.err != nil {
		return
	}
	g.err = g.f.SetRowHeight(sheetName, row, height)
}

func (g *grid) writeHeader(in GridInput, days int, styles gridStyles) {
	g.setCell(nameCol, titleRow, in.DepartmentName)
	g.setStyle(nameCol, titleRow, styles.deptLabel)

	title := fmt.Sprintf("%s %d", time.Month(in.Month).String(), in.Year)
	g.merge(firstDayCol, titleRow, firstDayCol+days-1, titleRow)
	g.setCell(firstDayCol, titleRow, title)
	g.setStyle(firstDayCol, titleRow, styles.monthTitle)

	for d := 1; d <= days; d++ {
		date := time.Date(in.Year, time.Month(in.Month), d, 0, 0, 0, 0, time.UTC)
		col := firstDayCol + d - 1
		g.setCell(col, dayNumRow, d)
		g.setCell(col, weekdayRow, date.Weekday().String()[:3])
		g.setStyle(col, dayNumRow, styles.dayHeader)
		g.setStyle(col, weekdayRow, styles.dayHeader)
	}
}

func (g *grid) writeBody(in GridInput, days int, styles gridStyles) {
	rowByKey := make(map[string]schedule.ExportRow, len(in.Rows))
	for _, r := range in.Rows {
		rowByKey[r.EmployeeID+"|"+r.Date.Format("2006-01-02")] = r
	}
	holidayByDay := make(map[int]holiday.Holiday)
	for _, h := range in.Holidays {
		if h.Date.Year() == in.Year && int(h.Date.Month()) == in.Month {
			holidayByDay[h.Date.Day()] = h
		}
	}

	var prevSector *string
	for i, entry := range in.Roster {
		row := firstDataRow + i
		g.setRowHeight(row, dataRowHeight)

		nameStyle := styles.name
		if i > 0 && !sameSector(prevSector, entry.SectorID) {
			// visual sector break only; ordering is already settled
			nameStyle = styles.nameSectorBreak
		}
		prevSector = entry.SectorID
		g.setCell(nameCol, row, entry.Employee.FullName())
		g.setStyle(nameCol, row, nameStyle)

		for d := 1; d <= days; d++ {
			date := time.Date(in.Year, time.Month(in.Month), d, 0, 0, 0, 0, time.UTC)
			col := firstDayCol + d - 1
			text, styleID := resolveCell(entry.Employee.ID, date, rowByKey, holidayByDay, in.Leaves, styles)
			if text != "" {
				g.setCell(col, row, text)
			}
			g.setStyle(col, row, styleID)
		}
	}
}

// resolveCell applies the tinting precedence: company holiday beats leave
// beats weekend/regular holiday beats plain. Cancelled assignments keep
// their shift text and get the diagonal strike instead of a tint.
func resolveCell(
	employeeID string,
	date time.Time,
	rows map[string]schedule.ExportRow,
	holidays map[int]holiday.Holiday,
	leaves []leave.LeaveRequest,
	styles gridStyles,
) (string, int) {
	assignment, hasAssignment := rows[employeeID+"|"+date.Format("2006-01-02")]
	h, hasHoliday := holidays[date.Day()]

	if hasHoliday && h.Type == holiday.TypeCompany {
		return "", styles.companyHoliday
	}

	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Status == leave.LeaveStatusApproved && l.Covers(date) {
			if styleID, ok := styles.leaveByType[l.LeaveTypeID]; ok {
				return "", styleID
			}
			return "", styles.leaveFallback
		}
	}

	text := ""
	if hasAssignment {
		text = assignment.ShiftName
	}
	cancelled := hasAssignment && assignment.Comment == schedule.CommentCancelled && text != ""

	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	if weekend || hasHoliday {
		if cancelled {
			return text, styles.weekendStrike
		}
		return text, styles.weekend
	}
	if cancelled {
		return text, styles.strike
	}
	return text, styles.base
}

func (g *grid) writeCountRows(in GridInput, days, lastDataRow int, styles gridStyles) {
	countRow := lastDataRow + 1
	for _, code := range in.GenericShifts {
		countRow++
		g.setCell(nameCol, countRow, "Shift "+code)
		g.setStyle(nameCol, countRow, styles.name)
		g.setRowHeight(countRow, dataRowHeight)

		for d := 1; d <= days; d++ {
			col := firstDayCol + d - 1
			colName, _ := excelize.ColumnNumberToName(col)
			var formula string
			if len(in.Roster) > 0 {
				formula = fmt.Sprintf("COUNTIF(%s%d:%s%d,%q)", colName, firstDataRow, colName, lastDataRow, code)
			} else {
				formula = "0"
			}
			if g.err == nil {
				g.err = g.f.SetCellFormula(sheetName, cellName(col, countRow), formula)
			}
			g.setStyle(col, countRow, styles.base)
		}

		if g.err == nil {
			rangeRef := fmt.Sprintf("%s:%s", cellName(firstDayCol, countRow), cellName(firstDayCol+days-1, countRow))
			g.err = g.f.SetConditionalFormat(sheetName, rangeRef, countBands(styles))
		}
	}
}

// countBands colors shift coverage: 0 staffed is a gap, 1 is thin, 2 is the
// target, 3+ is overstaffed-but-fine.
func countBands(styles gridStyles) []excelize.ConditionalFormatOptions {
	zero, one, two := "0", "1", "2"
	return []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: "==", Value: zero, Format: &styles.countDanger},
		{Type: "cell", Criteria: "==", Value: one, Format: &styles.countWarning},
		{Type: "cell", Criteria: "==", Value: two, Format: &styles.countSuccess},
		{Type: "cell", Criteria: ">", Value: two, Format: &styles.countSolid},
	}
}

func (g *grid) writeLegend(in GridInput, lastDayCol int, styles gridStyles) {
	swatchCol := lastDayCol + 2
	labelCol := lastDayCol + 3

	row := titleRow
	g.setCell(swatchCol, row, "Legend")
	g.setStyle(swatchCol, row, styles.deptLabel)

	for _, lt := range in.LeaveTypes {
		row++
		if styleID, ok := styles.leaveByType[lt.ID]; ok {
			g.setStyle(swatchCol, row, styleID)
		}
		g.setCell(labelCol, row, lt.Name)
	}

	// shift time tables grouped by rotation pattern
	patterns := make(map[string][]shift.Shift)
	var order []string
	for _, s := range in.Shifts {
		if _, ok := patterns[s.Pattern]; !ok {
			order = append(order, s.Pattern)
		}
		patterns[s.Pattern] = append(patterns[s.Pattern], s)
	}
	for _, pattern := range order {
		row += 2
		g.setCell(swatchCol, row, pattern)
		g.setStyle(swatchCol, row, styles.deptLabel)
		for _, s := range patterns[pattern] {
			row++
			g.setCell(swatchCol, row, s.Name)
			g.setCell(labelCol, row, s.TimeRange())
		}
	}
}

func sameSector(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
