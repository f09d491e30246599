package model

import (
	"fmt"
	"time"
)

// Durations a reservation may span, in hours.
var Durations = []float64{1, 1.5, 2}

// ValidDuration reports whether d is one of the offered durations.
func ValidDuration(d float64) bool {
	for _, v := range Durations {
		if d == v {
			return true
		}
	}
	return false
}

// AvailabilityQuery pins down one court, date and duration. It is passed
// explicitly through every call so no ambient date/court state is shared
// between flows.
type AvailabilityQuery struct {
	VenueID  string
	CourtID  string
	Date     string  // "YYYY-MM-DD"
	Duration float64 // hours
}

func (q AvailabilityQuery) Validate() error {
	if q.VenueID == "" || q.CourtID == "" {
		return fmt.Errorf("venue and court are required")
	}
	if _, err := time.Parse("2006-01-02", q.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", q.Date, err)
	}
	if !ValidDuration(q.Duration) {
		return fmt.Errorf("invalid duration %v: must be one of %v", q.Duration, Durations)
	}
	return nil
}

// StartOption is one bookable start time with its display end time.
type StartOption struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability is the computed set of bookable start times for one query.
// It is rebuilt from a fresh backend fetch on every date, court or duration
// change and never cached across them.
type Availability struct {
	Query  AvailabilityQuery
	Starts []StartOption
}

// Has reports whether start is still listed as bookable.
func (a *Availability) Has(start string) bool {
	for _, opt := range a.Starts {
		if opt.Start == start {
			return true
		}
	}
	return false
}

// Occupancy is the ephemeral per-court, per-date admin view: the hours
// consumed by reservations and by administrative blocks. It is re-fetched
// after every mutating action rather than patched locally.
type Occupancy struct {
	ReservedHours []string `json:"reservedHours"`
	BlockedHours  []string `json:"blockedHours"`
}

// Reserved reports whether hour is held by a reservation.
func (o Occupancy) Reserved(hour string) bool {
	return containsHour(o.ReservedHours, hour)
}

// Blocked reports whether hour is administratively blocked.
func (o Occupancy) Blocked(hour string) bool {
	return containsHour(o.BlockedHours, hour)
}

func containsHour(hours []string, hour string) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
