package model

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"   // awaiting administrator review
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCancelled
}

// CanTransitionTo encodes the reservation state machine: pending may become
// confirmed or cancelled, terminal states are immutable.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s != ReservationStatusPending {
		return false
	}
	return next == ReservationStatusConfirmed || next == ReservationStatusCancelled
}

type Reservation struct {
	ID        string            `json:"id,omitempty"`
	VenueID   string            `json:"complexId"`
	CourtID   string            `json:"courtId"`
	CourtName string            `json:"courtName,omitempty"`
	Date      string            `json:"date"`      // "YYYY-MM-DD"
	StartTime string            `json:"startTime"` // "HH:00"
	Duration  float64           `json:"duration"`  // hours: 1, 1.5 or 2
	EndTime   string            `json:"endTime"`   // derived, display only
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName,omitempty"`
	UserEmail string            `json:"userEmail,omitempty"`
	Status    ReservationStatus `json:"status"`
}
