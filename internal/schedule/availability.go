package schedule

import (
	"fmt"
	"math"
)

// AvailableStarts filters the occupancy grid down to the start times where a
// reservation of the given duration has every constituent hour free and
// inside the operating window.
//
// Occupancy is tracked at whole-hour granularity, so a 1.5 h reservation
// checks ceil(1.5) = 2 whole hours.
func AvailableStarts(occ Occupancy, duration float64) []string {
	if occ.Precomputed != nil {
		return occ.Precomputed
	}
	if duration <= 0 {
		return nil
	}

	inGrid := make(map[string]struct{}, len(occ.Grid))
	for _, label := range occ.Grid {
		inGrid[label] = struct{}{}
	}

	hoursToCheck := int(math.Ceil(duration))
	var starts []string
	for _, start := range occ.Grid {
		h, ok := ParseHour(start)
		if !ok {
			continue
		}
		free := true
		for i := 0; i < hoursToCheck; i++ {
			check := HourLabel(h + i) // wraps 24 -> "00:00"
			if _, occupied := occ.Occupied[check]; occupied {
				free = false
				break
			}
			// A required hour outside the grid means the reservation
			// would spill past closing.
			if _, ok := inGrid[check]; !ok {
				free = false
				break
			}
		}
		if free {
			starts = append(starts, start)
		}
	}
	return starts
}

// EndLabel returns the display end time ("HH:MM") for a start label and a
// duration in hours, carrying minutes past the hour and wrapping past
// midnight. Display only: availability is decided by AvailableStarts.
func EndLabel(start string, duration float64) string {
	h, ok := ParseHour(start)
	if !ok {
		return ""
	}
	endHour := h + int(math.Floor(duration))
	endMinutes := int(math.Round(math.Mod(duration, 1) * 60))
	if endMinutes >= 60 {
		endHour++
		endMinutes -= 60
	}
	if endHour >= 24 {
		endHour -= 24
	}
	return fmt.Sprintf("%02d:%02d", endHour, endMinutes)
}
