// Package roster holds the scheduling engine: the order-resolved monthly
// roster and the per-day shift leader calculation. Everything here is a pure
// function of its inputs; callers load snapshots from the store and pass
// them in.
package roster

import (
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
)

// Mode selects how a single order override is chosen from an employee's
// eligible set. The export path uses the latest eligible override; the live
// view historically used any eligible match, and the two are kept as
// explicit named modes.
type Mode int

const (
	// ModeAnyEligible picks the first eligible override in input order.
	ModeAnyEligible Mode = iota
	// ModeLatestOverride picks the eligible override closest to the
	// target period (max year, then max month).
	ModeLatestOverride
)

type ResolveInput struct {
	Employees       []employee.Employee
	Sectors         []department.Sector
	OrderOverrides  []schedule.OrderOverride
	LeaderOverrides []schedule.LeaderOverride
	Year            int
	Month           int
	Mode            Mode

	// EnforceEmploymentWindow drops employees hired after the target
	// month's end or terminated before its start. Set on the export path.
	EnforceEmploymentWindow bool
}

// Entry is one roster line: the employee with sector and privilege as they
// should be displayed for the target period.
type Entry struct {
	Employee         employee.Employee
	SectorID         *string
	Privilege        employee.Privilege
	OrderIndex       int
	HasOrderOverride bool
}

// eligible reports whether an override period (year, month) applies to the
// target period: it must not lie in the target's future.
func eligible(ovYear, ovMonth, year, month int) bool {
	return ovYear < year || (ovYear == year && ovMonth <= month)
}

// later reports whether period a is strictly after period b.
func later(aYear, aMonth, bYear, bMonth int) bool {
	return aYear > bYear || (aYear == bYear && aMonth > bMonth)
}

// Resolve produces the authoritative ordered roster for a department and
// period. The output contains every includable employee exactly once:
// first the employees with an eligible order override, ascending by the
// chosen ordinal, then the rest sorted by sector display order, privilege
// (descending) and name. Calling Resolve twice with identical inputs yields
// identical output.
func Resolve(in ResolveInput) []Entry {
	sectorOrder := make(map[string]*int, len(in.Sectors))
	for _, s := range in.Sectors {
		sectorOrder[s.ID] = s.DisplayOrder
	}

	orderByEmployee := make(map[string]schedule.OrderOverride)
	for _, ov := range in.OrderOverrides {
		if !eligible(ov.Year, ov.Month, in.Year, in.Month) {
			continue
		}
		current, ok := orderByEmployee[ov.EmployeeID]
		switch in.Mode {
		case ModeLatestOverride:
			if !ok || later(ov.Year, ov.Month, current.Year, current.Month) {
				orderByEmployee[ov.EmployeeID] = ov
			}
		default: // ModeAnyEligible keeps the first match in input order
			if !ok {
				orderByEmployee[ov.EmployeeID] = ov
			}
		}
	}

	leaderByEmployee := latestLeaderFlags(in.LeaderOverrides, in.Year, in.Month)

	var overridden, fallback []Entry
	for _, emp := range in.Employees {
		if !includable(emp, in) {
			continue
		}

		entry := Entry{
			Employee:  emp,
			SectorID:  emp.SectorID,
			Privilege: emp.Privilege,
		}

		if ov, ok := orderByEmployee[emp.ID]; ok {
			entry.HasOrderOverride = true
			entry.OrderIndex = ov.OrderIndex
			if ov.SectorID != nil {
				entry.SectorID = ov.SectorID
			}
		}

		// Managers are never downgraded by a leader flag.
		if flag, ok := leaderByEmployee[emp.ID]; ok && emp.Privilege != employee.PrivilegeManager {
			if flag {
				entry.Privilege = employee.PrivilegeShiftLeader
			} else {
				entry.Privilege = employee.PrivilegeMember
			}
		}

		if entry.HasOrderOverride {
			overridden = append(overridden, entry)
		} else {
			fallback = append(fallback, entry)
		}
	}

	sort.SliceStable(overridden, func(i, j int) bool {
		if overridden[i].OrderIndex != overridden[j].OrderIndex {
			return overridden[i].OrderIndex < overridden[j].OrderIndex
		}
		return lessByName(overridden[i].Employee, overridden[j].Employee)
	})

	sort.SliceStable(fallback, func(i, j int) bool {
		si, sj := displayOrder(fallback[i].SectorID, sectorOrder), displayOrder(fallback[j].SectorID, sectorOrder)
		if si != sj {
			return si < sj
		}
		if fallback[i].Privilege != fallback[j].Privilege {
			return fallback[i].Privilege > fallback[j].Privilege
		}
		return lessByName(fallback[i].Employee, fallback[j].Employee)
	})

	return append(overridden, fallback...)
}

func includable(emp employee.Employee, in ResolveInput) bool {
	if emp.Privilege == employee.PrivilegeNone || emp.Privilege == employee.PrivilegeTopManager {
		return false
	}
	if emp.Status != employee.StatusActive {
		return false
	}
	if in.EnforceEmploymentWindow {
		monthStart := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)
		if emp.HireDate != nil && emp.HireDate.After(monthEnd) {
			return false
		}
		if emp.TermDate != nil && emp.TermDate.Before(monthStart) {
			return false
		}
	}
	return true
}

// latestLeaderFlags reduces leader overrides to one flag per employee: the
// eligible override closest to the target period. The period-eligibility
// rule is applied uniformly here, matching the order override rule.
func latestLeaderFlags(overrides []schedule.LeaderOverride, year, month int) map[string]bool {
	latest := make(map[string]schedule.LeaderOverride)
	for _, ov := range overrides {
		if !eligible(ov.Year, ov.Month, year, month) {
			continue
		}
		current, ok := latest[ov.EmployeeID]
		if !ok || later(ov.Year, ov.Month, current.Year, current.Month) {
			latest[ov.EmployeeID] = ov
		}
	}
	flags := make(map[string]bool, len(latest))
	for id, ov := range latest {
		flags[id] = ov.IsLeader
	}
	return flags
}

// displayOrder maps a sector to its configured position; sectors without a
// configured order, and employees without a sector, sort last.
func displayOrder(sectorID *string, order map[string]*int) int {
	const last = int(^uint(0) >> 1)
	if sectorID == nil {
		return last
	}
	pos, ok := order[*sectorID]
	if !ok || pos == nil {
		return last
	}
	return *pos
}

func lessByName(a, b employee.Employee) bool {
	if a.FirstName != b.FirstName {
		return a.FirstName < b.FirstName
	}
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	return a.ID < b.ID
}
