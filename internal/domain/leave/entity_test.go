package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestCovers(t *testing.T) {
	r := LeaveRequest{StartDate: d(5), EndDate: d(10)}

	assert.False(t, r.Covers(d(4)))
	assert.True(t, r.Covers(d(5)), "start day is inclusive")
	assert.True(t, r.Covers(d(7)))
	assert.True(t, r.Covers(d(10)), "end day is inclusive")
	assert.False(t, r.Covers(d(11)))
}

func TestCoversIgnoresTimeOfDay(t *testing.T) {
	r := LeaveRequest{
		StartDate: time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 5, 0, 1, 0, 0, time.UTC),
	}
	assert.True(t, r.Covers(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint before", d(1), d(3), d(5), d(8), false},
		{"disjoint after", d(9), d(12), d(5), d(8), false},
		{"touching at boundary", d(1), d(5), d(5), d(8), true},
		{"contained", d(6), d(7), d(5), d(8), true},
		{"containing", d(4), d(9), d(5), d(8), true},
		{"partial overlap", d(3), d(6), d(5), d(8), true},
		{"single day equal", d(5), d(5), d(5), d(5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap is symmetric")
		})
	}
}
