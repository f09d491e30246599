package service

import (
	"context"

	"github.com/canchapp/booking_client/internal/model"
)

// The services consume the backend through these interfaces; the concrete
// implementations live in internal/client.

type CourtDirectory interface {
	Venues(ctx context.Context) ([]model.Venue, error)
	Detail(ctx context.Context, venueID, courtID, date string) (model.CourtDetail, error)
}

type ReservationAPI interface {
	Create(ctx context.Context, r model.Reservation) (model.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]model.Reservation, error)
	Cancel(ctx context.Context, reservationID string) error
}

type AdminAPI interface {
	Courts(ctx context.Context) ([]model.Court, error)
	CreateCourt(ctx context.Context, court model.Court) (model.Court, error)
	UpdateCourt(ctx context.Context, court model.Court) (model.Court, error)
	DeleteCourt(ctx context.Context, courtID string) error
	ToggleCourt(ctx context.Context, courtID string) error
	Reservations(ctx context.Context) ([]model.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	CancelReservation(ctx context.Context, reservationID string) error
	Occupancy(ctx context.Context, courtID, date string) (model.Occupancy, error)
	Block(ctx context.Context, block model.Block) error
	Unblock(ctx context.Context, block model.Block) error
}
