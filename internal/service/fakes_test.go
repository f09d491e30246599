package service

import (
	"context"

	"github.com/canchapp/booking_client/internal/model"
)

type fakeDirectory struct {
	detail      model.CourtDetail
	err         error
	detailCalls int
}

func (f *fakeDirectory) Venues(ctx context.Context) ([]model.Venue, error) {
	return nil, nil
}

func (f *fakeDirectory) Detail(ctx context.Context, venueID, courtID, date string) (model.CourtDetail, error) {
	f.detailCalls++
	return f.detail, f.err
}

type fakeReservations struct {
	createErr   error
	createCalls int
	lastCreated model.Reservation
	list        []model.Reservation
	cancelled   []string
}

func (f *fakeReservations) Create(ctx context.Context, r model.Reservation) (model.Reservation, error) {
	f.createCalls++
	if f.createErr != nil {
		return model.Reservation{}, f.createErr
	}
	r.ID = "res-1"
	f.lastCreated = r
	return r, nil
}

func (f *fakeReservations) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	return f.list, nil
}

func (f *fakeReservations) Cancel(ctx context.Context, reservationID string) error {
	f.cancelled = append(f.cancelled, reservationID)
	return nil
}

// fakeAdmin keeps one court/date occupancy in memory and mutates it the way
// the backend would.
type fakeAdmin struct {
	occ          model.Occupancy
	occErr       error
	occCalls     int
	blockCalls   int
	unblockCalls int
	reservations []model.Reservation
	confirmed    []string
	cancelled    []string
}

func (f *fakeAdmin) Occupancy(ctx context.Context, courtID, date string) (model.Occupancy, error) {
	f.occCalls++
	if f.occErr != nil {
		return model.Occupancy{}, f.occErr
	}
	return model.Occupancy{
		ReservedHours: append([]string(nil), f.occ.ReservedHours...),
		BlockedHours:  append([]string(nil), f.occ.BlockedHours...),
	}, nil
}

func (f *fakeAdmin) Block(ctx context.Context, block model.Block) error {
	f.blockCalls++
	f.occ.BlockedHours = append(f.occ.BlockedHours, block.Hour)
	return nil
}

func (f *fakeAdmin) Unblock(ctx context.Context, block model.Block) error {
	f.unblockCalls++
	kept := f.occ.BlockedHours[:0]
	for _, h := range f.occ.BlockedHours {
		if h != block.Hour {
			kept = append(kept, h)
		}
	}
	f.occ.BlockedHours = kept
	return nil
}

func (f *fakeAdmin) Courts(ctx context.Context) ([]model.Court, error) {
	return nil, nil
}

func (f *fakeAdmin) CreateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	court.ID = "court-1"
	return court, nil
}

func (f *fakeAdmin) UpdateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	return court, nil
}

func (f *fakeAdmin) DeleteCourt(ctx context.Context, courtID string) error {
	return nil
}

func (f *fakeAdmin) ToggleCourt(ctx context.Context, courtID string) error {
	return nil
}

func (f *fakeAdmin) Reservations(ctx context.Context) ([]model.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeAdmin) ConfirmReservation(ctx context.Context, reservationID string) error {
	f.confirmed = append(f.confirmed, reservationID)
	return nil
}

func (f *fakeAdmin) CancelReservation(ctx context.Context, reservationID string) error {
	f.cancelled = append(f.cancelled, reservationID)
	return nil
}
