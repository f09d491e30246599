package model

// Block marks one hour of a court unavailable by administrative decision,
// independent of any reservation. Only hours not already reserved may be
// blocked.
type Block struct {
	CourtID string `json:"courtId"`
	Date    string `json:"date"` // "YYYY-MM-DD"
	Hour    string `json:"hour"` // "HH:00"
}
