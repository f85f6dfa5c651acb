package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
)

var genericShifts = []string{"A", "B", "C"}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeLeadersExplicitFlagWins(t *testing.T) {
	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "A"},
			{EmployeeID: "e2", Date: day(5), ShiftName: "A", IsShiftLeader: true},
		},
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	require.Len(t, leaders, 1)
	assert.Equal(t, "e2", leaders[0].EmployeeID)
	assert.Equal(t, "A", leaders[0].ShiftName)
}

func TestComputeLeadersSingleEligibleCandidate(t *testing.T) {
	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "A"},
			{EmployeeID: "e2", Date: day(5), ShiftName: "A"},
		},
		LeaderOverrides: []schedule.LeaderOverride{
			{EmployeeID: "e2", Year: 2024, Month: 1, IsLeader: true},
		},
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	require.Len(t, leaders, 1)
	assert.Equal(t, "e2", leaders[0].EmployeeID)
}

func TestComputeLeadersAmbiguityYieldsNothing(t *testing.T) {
	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "A"},
			{EmployeeID: "e2", Date: day(5), ShiftName: "A"},
		},
		LeaderOverrides: []schedule.LeaderOverride{
			{EmployeeID: "e1", Year: 2024, Month: 1, IsLeader: true},
			{EmployeeID: "e2", Year: 2024, Month: 1, IsLeader: true},
		},
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	assert.Empty(t, leaders)
}

func TestComputeLeadersApprovedLeaveExcludes(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{
			EmployeeID: "e2",
			StartDate:  day(4),
			EndDate:    day(6),
			Status:     leave.LeaveStatusApproved,
		},
	}

	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "A"},
			{EmployeeID: "e2", Date: day(5), ShiftName: "A", IsShiftLeader: true},
		},
		LeaderOverrides: []schedule.LeaderOverride{
			{EmployeeID: "e1", Year: 2024, Month: 1, IsLeader: true},
		},
		Leaves:        leaves,
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	// The flagged leader is on leave, so the sole override-eligible
	// candidate takes over.
	require.Len(t, leaders, 1)
	assert.Equal(t, "e1", leaders[0].EmployeeID)

	// Pending leave does not exclude.
	leaves[0].Status = leave.LeaveStatusPending
	leaders = ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e2", Date: day(5), ShiftName: "A", IsShiftLeader: true},
		},
		Leaves:        leaves,
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})
	require.Len(t, leaders, 1)
	assert.Equal(t, "e2", leaders[0].EmployeeID)
}

func TestComputeLeadersIgnoresNonGenericShifts(t *testing.T) {
	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "D8", IsShiftLeader: true},
		},
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	assert.Empty(t, leaders)
}

func TestComputeLeadersPerShiftGrouping(t *testing.T) {
	leaders := ComputeLeaders(LeadersInput{
		Rows: []DayRow{
			{EmployeeID: "e1", Date: day(5), ShiftName: "A", IsShiftLeader: true},
			{EmployeeID: "e2", Date: day(5), ShiftName: "B", IsShiftLeader: true},
			{EmployeeID: "e3", Date: day(6), ShiftName: "A", IsShiftLeader: true},
		},
		GenericShifts: genericShifts,
		Year:          2024,
		Month:         3,
	})

	require.Len(t, leaders, 3)
	got := make(map[string]string)
	for _, l := range leaders {
		got[l.Date.Format("2006-01-02")+"|"+l.ShiftName] = l.EmployeeID
	}
	assert.Equal(t, "e1", got["2024-03-05|A"])
	assert.Equal(t, "e2", got["2024-03-05|B"])
	assert.Equal(t, "e3", got["2024-03-06|A"])
}
