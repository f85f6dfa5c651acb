package roster

import (
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
)

// DayRow is one assignment as seen by the leader calculation.
type DayRow struct {
	EmployeeID    string
	Date          time.Time
	ShiftName     string
	IsShiftLeader bool
}

// Leader is the effective leader of one (date, shift) pair.
type Leader struct {
	Date       time.Time
	EmployeeID string
	ShiftName  string
}

type LeadersInput struct {
	Rows            []DayRow
	LeaderOverrides []schedule.LeaderOverride
	Leaves          []leave.LeaveRequest
	GenericShifts   []string
	Year            int
	Month           int
}

// ComputeLeaders determines at most one effective leader per (date, shift)
// pair among the generic rotating shifts. An assignment explicitly flagged
// as leader wins unless that employee is on approved leave that day.
// Otherwise the single override-eligible, leave-free candidate in the group
// wins. Ambiguity (zero or two-plus candidates) yields no entry for the
// pair; ties are never broken arbitrarily.
func ComputeLeaders(in LeadersInput) []Leader {
	generic := make(map[string]bool, len(in.GenericShifts))
	for _, name := range in.GenericShifts {
		generic[name] = true
	}

	eligibleSet := latestLeaderFlags(in.LeaderOverrides, in.Year, in.Month)

	type groupKey struct {
		date  string
		shift string
	}
	groups := make(map[groupKey][]DayRow)
	var keys []groupKey
	for _, row := range in.Rows {
		if !generic[row.ShiftName] {
			continue
		}
		key := groupKey{date: dayKey(row.Date), shift: row.ShiftName}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], row)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].shift < keys[j].shift
	})

	var leaders []Leader
	for _, key := range keys {
		rows := groups[key]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })

		if leader, ok := pickLeader(rows, eligibleSet, in.Leaves); ok {
			leaders = append(leaders, Leader{
				Date:       rows[0].Date,
				EmployeeID: leader,
				ShiftName:  key.shift,
			})
		}
	}
	return leaders
}

func pickLeader(rows []DayRow, eligibleSet map[string]bool, leaves []leave.LeaveRequest) (string, bool) {
	for _, row := range rows {
		if row.IsShiftLeader && !onApprovedLeave(leaves, row.EmployeeID, row.Date) {
			return row.EmployeeID, true
		}
	}

	var candidates []DayRow
	for _, row := range rows {
		if eligibleSet[row.EmployeeID] {
			candidates = append(candidates, row)
		}
	}
	if len(candidates) != 1 {
		return "", false
	}
	sole := candidates[0]
	if onApprovedLeave(leaves, sole.EmployeeID, sole.Date) {
		return "", false
	}
	return sole.EmployeeID, true
}

func onApprovedLeave(leaves []leave.LeaveRequest, employeeID string, date time.Time) bool {
	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Status == leave.LeaveStatusApproved && l.Covers(date) {
			return true
		}
	}
	return false
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
