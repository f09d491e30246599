package schedule

import "github.com/canchapp/booking_client/internal/model"

// Occupancy is the canonical availability input for one court and date. The
// backend's three payload shapes are normalized into it exactly once, at the
// boundary; nothing downstream branches on the raw shape again.
type Occupancy struct {
	// Precomputed holds backend-supplied bookable start times. When non-nil
	// it is trusted verbatim and the duration calculator is bypassed.
	Precomputed []string
	// Grid is the ordered sequence of candidate start labels.
	Grid []string
	// Occupied is the union of reserved and blocked hours.
	Occupied map[string]struct{}
}

// Resolve normalizes a raw detail payload. Shape detection runs in fixed
// priority order, first match wins:
//  1. availableSlots — trusted verbatim
//  2. masterSlots + occupiedSlots
//  3. opensAt/closesAt + reservedSlots + blockedSlots
//
// When none of the shapes match the result is an empty grid: the caller
// shows "no availability" rather than an error.
func Resolve(detail model.CourtDetail) Occupancy {
	if detail.AvailableSlots != nil {
		return Occupancy{Precomputed: detail.AvailableSlots}
	}

	if detail.MasterSlots != nil {
		return Occupancy{
			Grid:     detail.MasterSlots,
			Occupied: toSet(detail.OccupiedSlots),
		}
	}

	if detail.OpensAt != "" && detail.ClosesAt != "" {
		occupied := make(map[string]struct{}, len(detail.ReservedSlots)+len(detail.BlockedSlots))
		addAll(occupied, detail.ReservedSlots)
		addAll(occupied, detail.BlockedSlots)
		return Occupancy{
			Grid:     TimeGrid(detail.OpensAt, detail.ClosesAt),
			Occupied: occupied,
		}
	}

	return Occupancy{}
}

func toSet(hours []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hours))
	addAll(set, hours)
	return set
}

func addAll(set map[string]struct{}, hours []string) {
	for _, h := range hours {
		set[h] = struct{}{}
	}
}
