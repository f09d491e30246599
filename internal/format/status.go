package format

import "github.com/canchapp/booking_client/internal/model"

// StatusDisplay is the terminal rendering of a reservation status.
type StatusDisplay struct {
	Badge string
	Text  string
}

// ReservationStatus returns the badge and text for a reservation status.
func ReservationStatus(status model.ReservationStatus) StatusDisplay {
	displays := map[model.ReservationStatus]StatusDisplay{
		model.ReservationStatusPending:   {"[..]", "pending"},
		model.ReservationStatusConfirmed: {"[ok]", "confirmed"},
		model.ReservationStatusCancelled: {"[--]", "cancelled"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return StatusDisplay{"[??]", "unknown"}
}

// CourtState renders a court's active flag.
func CourtState(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
