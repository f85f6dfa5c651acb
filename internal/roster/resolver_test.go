package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/department"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/employee"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
)

func ptr[T any](v T) *T { return &v }

func emp(id, first, last string, priv employee.Privilege, sectorID *string) employee.Employee {
	return employee.Employee{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Privilege: priv,
		Status:    employee.StatusActive,
		SectorID:  sectorID,
	}
}

func TestResolveEveryEligibleEmployeeExactlyOnce(t *testing.T) {
	employees := []employee.Employee{
		emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
		emp("e2", "Boris", "Calder", employee.PrivilegeShiftLeader, nil),
		emp("e3", "Chloe", "Drake", employee.PrivilegeManager, nil),
		emp("e4", "Dan", "Eads", employee.PrivilegeNone, nil),       // excluded
		emp("e5", "Eve", "Frost", employee.PrivilegeTopManager, nil), // excluded
	}
	inactive := emp("e6", "Fay", "Grey", employee.PrivilegeMember, nil)
	inactive.Status = employee.StatusInactive
	employees = append(employees, inactive)

	entries := Resolve(ResolveInput{
		Employees: employees,
		Year:      2024,
		Month:     3,
	})

	require.Len(t, entries, 3)
	seen := make(map[string]int)
	for _, e := range entries {
		seen[e.Employee.ID]++
	}
	for _, id := range []string{"e1", "e2", "e3"} {
		assert.Equal(t, 1, seen[id], "employee %s should appear exactly once", id)
	}
	assert.NotContains(t, seen, "e4")
	assert.NotContains(t, seen, "e5")
	assert.NotContains(t, seen, "e6")
}

func TestResolveIsDeterministic(t *testing.T) {
	in := ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, ptr("s1")),
			emp("e2", "Boris", "Calder", employee.PrivilegeMember, ptr("s2")),
			emp("e3", "Chloe", "Drake", employee.PrivilegeShiftLeader, nil),
		},
		Sectors: []department.Sector{
			{ID: "s1", DisplayOrder: ptr(2)},
			{ID: "s2", DisplayOrder: ptr(1)},
		},
		OrderOverrides: []schedule.OrderOverride{
			{EmployeeID: "e3", Year: 2024, Month: 1, OrderIndex: 1},
		},
		Year:  2024,
		Month: 3,
	}

	first := Resolve(in)
	second := Resolve(in)
	assert.Equal(t, first, second)
}

func TestResolveOverriddenPrefixThenFallback(t *testing.T) {
	entries := Resolve(ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
			emp("e2", "Boris", "Calder", employee.PrivilegeManager, nil),
			emp("e3", "Chloe", "Drake", employee.PrivilegeMember, nil),
			emp("e4", "Dan", "Eads", employee.PrivilegeShiftLeader, nil),
		},
		OrderOverrides: []schedule.OrderOverride{
			{EmployeeID: "e3", Year: 2024, Month: 2, OrderIndex: 2},
			{EmployeeID: "e1", Year: 2024, Month: 2, OrderIndex: 1},
		},
		Year:  2024,
		Month: 3,
	})

	require.Len(t, entries, 4)
	// Overridden employees first, ascending by ordinal.
	assert.Equal(t, "e1", entries[0].Employee.ID)
	assert.Equal(t, "e3", entries[1].Employee.ID)
	assert.True(t, entries[0].HasOrderOverride)
	assert.True(t, entries[1].HasOrderOverride)
	// Fallback tail sorted by privilege descending, then name.
	assert.Equal(t, "e2", entries[2].Employee.ID)
	assert.Equal(t, "e4", entries[3].Employee.ID)
	assert.False(t, entries[2].HasOrderOverride)
}

func TestResolveOverrideCarriesForward(t *testing.T) {
	// A January override still pins the employee in March when no later
	// override supersedes it.
	in := ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
			emp("e2", "Boris", "Calder", employee.PrivilegeMember, nil),
		},
		OrderOverrides: []schedule.OrderOverride{
			{EmployeeID: "e2", Year: 2024, Month: 1, OrderIndex: 1},
		},
		Year:  2024,
		Month: 3,
		Mode:  ModeLatestOverride,
	}

	entries := Resolve(in)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].Employee.ID)
	assert.True(t, entries[0].HasOrderOverride)
}

func TestResolveFutureOverrideIgnored(t *testing.T) {
	entries := Resolve(ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
		},
		OrderOverrides: []schedule.OrderOverride{
			{EmployeeID: "e1", Year: 2024, Month: 6, OrderIndex: 1},
		},
		Year:  2024,
		Month: 3,
	})

	require.Len(t, entries, 1)
	assert.False(t, entries[0].HasOrderOverride)
}

func TestResolveLatestOverrideWins(t *testing.T) {
	entries := Resolve(ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
		},
		OrderOverrides: []schedule.OrderOverride{
			{EmployeeID: "e1", Year: 2024, Month: 1, OrderIndex: 5, SectorID: ptr("s1")},
			{EmployeeID: "e1", Year: 2024, Month: 2, OrderIndex: 1, SectorID: ptr("s2")},
		},
		Year:  2024,
		Month: 3,
		Mode:  ModeLatestOverride,
	})

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].OrderIndex)
	require.NotNil(t, entries[0].SectorID)
	assert.Equal(t, "s2", *entries[0].SectorID)
}

func TestResolveLeaderFlagAdjustsPrivilege(t *testing.T) {
	entries := Resolve(ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil),
			emp("e2", "Boris", "Calder", employee.PrivilegeShiftLeader, nil),
			emp("e3", "Chloe", "Drake", employee.PrivilegeManager, nil),
		},
		LeaderOverrides: []schedule.LeaderOverride{
			{EmployeeID: "e1", Year: 2024, Month: 1, IsLeader: true},
			{EmployeeID: "e2", Year: 2024, Month: 1, IsLeader: false},
			{EmployeeID: "e3", Year: 2024, Month: 1, IsLeader: false},
		},
		Year:  2024,
		Month: 3,
	})

	byID := make(map[string]Entry)
	for _, e := range entries {
		byID[e.Employee.ID] = e
	}
	assert.Equal(t, employee.PrivilegeShiftLeader, byID["e1"].Privilege)
	assert.Equal(t, employee.PrivilegeMember, byID["e2"].Privilege)
	// A manager keeps their rank regardless of leader flags.
	assert.Equal(t, employee.PrivilegeManager, byID["e3"].Privilege)
}

func TestResolveEmploymentWindow(t *testing.T) {
	hiredLate := emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil)
	hiredLate.HireDate = ptr(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	termedEarly := emp("e2", "Boris", "Calder", employee.PrivilegeMember, nil)
	termedEarly.TermDate = ptr(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	current := emp("e3", "Chloe", "Drake", employee.PrivilegeMember, nil)
	current.HireDate = ptr(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	in := ResolveInput{
		Employees:               []employee.Employee{hiredLate, termedEarly, current},
		Year:                    2024,
		Month:                   3,
		EnforceEmploymentWindow: true,
	}

	entries := Resolve(in)
	require.Len(t, entries, 1)
	assert.Equal(t, "e3", entries[0].Employee.ID)

	// The live view keeps everyone.
	in.EnforceEmploymentWindow = false
	assert.Len(t, Resolve(in), 3)
}

func TestResolveFallbackSectorOrdering(t *testing.T) {
	entries := Resolve(ResolveInput{
		Employees: []employee.Employee{
			emp("e1", "Anna", "Berg", employee.PrivilegeMember, nil), // no sector, sorts last
			emp("e2", "Boris", "Calder", employee.PrivilegeMember, ptr("s2")),
			emp("e3", "Chloe", "Drake", employee.PrivilegeMember, ptr("s1")),
		},
		Sectors: []department.Sector{
			{ID: "s1", DisplayOrder: ptr(2)},
			{ID: "s2", DisplayOrder: ptr(1)},
		},
		Year:  2024,
		Month: 3,
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "e2", entries[0].Employee.ID)
	assert.Equal(t, "e3", entries[1].Employee.ID)
	assert.Equal(t, "e1", entries[2].Employee.ID)
}
