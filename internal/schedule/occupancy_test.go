package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canchapp/booking_client/internal/model"
)

func TestResolvePrefersAvailableSlots(t *testing.T) {
	// Both shape 1 and shape 2 fields present: shape 1 wins outright.
	detail := model.CourtDetail{
		AvailableSlots: []string{"10:00", "11:00"},
		MasterSlots:    []string{"08:00", "09:00", "10:00", "11:00"},
		OccupiedSlots:  []string{"10:00"},
	}

	occ := Resolve(detail)

	assert.Equal(t, []string{"10:00", "11:00"}, occ.Precomputed)
	assert.Nil(t, occ.Grid)

	// Precomputed bypasses the duration calculator entirely.
	assert.Equal(t, []string{"10:00", "11:00"}, AvailableStarts(occ, 2))
}

func TestResolveMasterMinusOccupied(t *testing.T) {
	detail := model.CourtDetail{
		MasterSlots:   []string{"08:00", "09:00", "10:00"},
		OccupiedSlots: []string{"09:00"},
	}

	occ := Resolve(detail)

	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, occ.Grid)
	assert.Equal(t, []string{"08:00", "10:00"}, AvailableStarts(occ, 1))
}

func TestResolveOperatingWindowShape(t *testing.T) {
	detail := model.CourtDetail{
		OpensAt:       "08:00",
		ClosesAt:      "10:00",
		ReservedSlots: []string{"09:00"},
		BlockedSlots:  []string{"10:00"},
	}

	occ := Resolve(detail)

	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, occ.Grid)
	_, reserved := occ.Occupied["09:00"]
	_, blocked := occ.Occupied["10:00"]
	assert.True(t, reserved)
	assert.True(t, blocked)
	assert.Equal(t, []string{"08:00"}, AvailableStarts(occ, 1))
}

func TestResolveUnrecognizedShapeDegradesToEmpty(t *testing.T) {
	occ := Resolve(model.CourtDetail{ID: "c1", Name: "Cancha 1"})

	assert.Nil(t, occ.Precomputed)
	assert.Empty(t, occ.Grid)
	assert.Empty(t, AvailableStarts(occ, 1))
}
