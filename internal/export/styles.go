package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
)

type gridStyles struct {
	deptLabel       int
	monthTitle      int
	dayHeader       int
	name            int
	nameSectorBreak int
	base            int
	weekend         int
	companyHoliday  int
	strike          int
	weekendStrike   int
	leaveFallback   int
	leaveByType     map[string]int

	countDanger  int
	countWarning int
	countSuccess int
	countSolid   int
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "999999", Style: 1},
		{Type: "right", Color: "999999", Style: 1},
		{Type: "top", Color: "999999", Style: 1},
		{Type: "bottom", Color: "999999", Style: 1},
	}
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newGridStyles(f *excelize.File, leaveTypes []leave.LeaveType) (gridStyles, error) {
	var s gridStyles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if s.deptLabel, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return s, err
	}
	if s.monthTitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.dayHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: center,
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.name, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.nameSectorBreak, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border: append(thinBorders()[:2:2],
			excelize.Border{Type: "top", Color: "000000", Style: 2},
			excelize.Border{Type: "bottom", Color: "999999", Style: 1},
		),
	}); err != nil {
		return s, err
	}
	if s.base, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.weekend, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thinBorders(),
		Fill:      fill(weekendFill),
	}); err != nil {
		return s, err
	}
	if s.companyHoliday, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thinBorders(),
		Fill:      fill(companyFill),
		Font:      &excelize.Font{Color: "FFFFFF"},
	}); err != nil {
		return s, err
	}
	if s.strike, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border: append(thinBorders(),
			excelize.Border{Type: "diagonalDown", Color: "FF0000", Style: 2},
		),
	}); err != nil {
		return s, err
	}
	if s.weekendStrike, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border: append(thinBorders(),
			excelize.Border{Type: "diagonalDown", Color: "FF0000", Style: 2},
		),
		Fill: fill(weekendFill),
	}); err != nil {
		return s, err
	}
	if s.leaveFallback, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thinBorders(),
		Fill:      fill("FFE699"),
	}); err != nil {
		return s, err
	}

	s.leaveByType = make(map[string]int, len(leaveTypes))
	for _, lt := range leaveTypes {
		color := lt.Color
		if color == "" {
			color = "FFE699"
		}
		styleID, err := f.NewStyle(&excelize.Style{
			Alignment: center,
			Border:    thinBorders(),
			Fill:      fill(color),
		})
		if err != nil {
			return s, err
		}
		s.leaveByType[lt.ID] = styleID
	}

	if s.countDanger, err = f.NewConditionalStyle(&excelize.Style{
		Fill: fill("FFC7CE"),
		Font: &excelize.Font{Color: "9C0006"},
	}); err != nil {
		return s, err
	}
	if s.countWarning, err = f.NewConditionalStyle(&excelize.Style{
		Fill: fill("FFEB9C"),
		Font: &excelize.Font{Color: "9C6500"},
	}); err != nil {
		return s, err
	}
	if s.countSuccess, err = f.NewConditionalStyle(&excelize.Style{
		Fill: fill("C6EFCE"),
		Font: &excelize.Font{Color: "006100"},
	}); err != nil {
		return s, err
	}
	if s.countSolid, err = f.NewConditionalStyle(&excelize.Style{
		Fill: fill("548235"),
		Font: &excelize.Font{Color: "FFFFFF"},
	}); err != nil {
		return s, err
	}

	return s, nil
}
