package model

// Venue groups the courts of one sports complex.
type Venue struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Courts []Court `json:"courts"`
}

// Court is read-only for end users; administrators manage it through the
// admin gateway.
type Court struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	HourlyPrice   float64 `json:"hourlyPrice"`
	Description   string  `json:"description,omitempty"`
	Covered       bool    `json:"covered"`
	BallsProvided bool    `json:"ballsProvided"`
	OpensAt       string  `json:"opensAt"`  // wall clock "HH:MM"
	ClosesAt      string  `json:"closesAt"` // wall clock "HH:MM"
	ImageURL      string  `json:"imageUrl,omitempty"`
	Active        bool    `json:"active"`
}

// CourtDetail is the raw per-date detail payload from the directory service.
// Availability arrives in exactly one of three shapes; the resolver in
// internal/schedule detects them in fixed priority order:
//  1. AvailableSlots — precomputed start times, trusted verbatim
//  2. MasterSlots + OccupiedSlots
//  3. OpensAt/ClosesAt + ReservedSlots + BlockedSlots
type CourtDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	VenueName   string   `json:"venueName,omitempty"`
	HourlyPrice float64  `json:"hourlyPrice,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Images      []string `json:"images,omitempty"`

	AvailableSlots []string `json:"availableSlots,omitempty"`
	MasterSlots    []string `json:"masterSlots,omitempty"`
	OccupiedSlots  []string `json:"occupiedSlots,omitempty"`
	OpensAt        string   `json:"opensAt,omitempty"`
	ClosesAt       string   `json:"closesAt,omitempty"`
	ReservedSlots  []string `json:"reservedSlots,omitempty"`
	BlockedSlots   []string `json:"blockedSlots,omitempty"`
}
