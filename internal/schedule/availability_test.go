package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func occupancy(grid []string, occupied ...string) Occupancy {
	set := make(map[string]struct{}, len(occupied))
	for _, h := range occupied {
		set[h] = struct{}{}
	}
	return Occupancy{Grid: grid, Occupied: set}
}

func TestAvailableStartsOneHour(t *testing.T) {
	occ := occupancy([]string{"20:00", "21:00", "22:00"}, "21:00")

	// 22:00 with duration 1 only needs itself; it stays available.
	assert.Equal(t, []string{"20:00", "22:00"}, AvailableStarts(occ, 1))
}

func TestAvailableStartsTwoHoursTouchingOccupied(t *testing.T) {
	occ := occupancy([]string{"20:00", "21:00", "22:00"}, "21:00")

	// 20:00 + 2h touches 21:00 (occupied); 21:00 is occupied itself;
	// 22:00 + 2h needs 23:00 which is outside the window.
	assert.Empty(t, AvailableStarts(occ, 2))
}

func TestAvailableStartsRejectsSpillPastClosing(t *testing.T) {
	occ := occupancy([]string{"20:00", "21:00", "22:00"})

	assert.Equal(t, []string{"20:00", "21:00"}, AvailableStarts(occ, 2))
}

func TestAvailableStartsHalfHourChecksWholeHours(t *testing.T) {
	occ := occupancy([]string{"18:00", "19:00", "20:00", "21:00"}, "19:00")

	// 1.5 h checks ceil(1.5) = 2 whole hours: 18:00 is rejected because
	// its second hour (19:00) is occupied.
	assert.Equal(t, []string{"20:00"}, AvailableStarts(occ, 1.5))
}

func TestAvailableStartsAcrossMidnight(t *testing.T) {
	grid := TimeGrid("14:00", "02:00")

	free := occupancy(grid)
	assert.Contains(t, AvailableStarts(free, 2), "23:00")

	// 23:00 + 2h checks 23:00 and 00:00; occupying 00:00 rejects it.
	taken := occupancy(grid, "00:00")
	assert.NotContains(t, AvailableStarts(taken, 2), "23:00")
	assert.Contains(t, AvailableStarts(taken, 1), "23:00")
}

func TestEndLabel(t *testing.T) {
	tests := []struct {
		start    string
		duration float64
		want     string
	}{
		{"19:00", 1, "20:00"},
		{"19:00", 1.5, "20:30"},
		{"19:00", 2, "21:00"},
		{"23:00", 1, "00:00"},
		{"23:00", 1.5, "00:30"},
		{"23:00", 2, "01:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EndLabel(tt.start, tt.duration), "start %s + %vh", tt.start, tt.duration)
	}
}
