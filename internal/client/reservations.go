package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/canchapp/booking_client/internal/model"
)

// ReservationsGateway covers the user-facing reservation endpoints.
type ReservationsGateway struct {
	c *Client
}

func NewReservationsGateway(c *Client) *ReservationsGateway {
	return &ReservationsGateway{c: c}
}

// Create submits a new reservation. The backend enforces slot exclusivity
// atomically; a 409 maps to ErrSlotTaken. A client-generated idempotency key
// makes a user-triggered resubmission after a transport failure safe.
func (g *ReservationsGateway) Create(ctx context.Context, r model.Reservation) (model.Reservation, error) {
	headers := http.Header{}
	headers.Set("Idempotency-Key", uuid.NewString())

	var created model.Reservation
	if err := g.c.send(ctx, http.MethodPost, "/reservations", r, &created, headers); err != nil {
		return model.Reservation{}, fmt.Errorf("create reservation: %w", err)
	}
	return created, nil
}

// ListByUser returns the user's reservations, newest first as the backend
// orders them.
func (g *ReservationsGateway) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	query := url.Values{"userId": {userID}}

	var reservations []model.Reservation
	if err := g.c.get(ctx, "/reservations", query, &reservations); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

// Cancel cancels the user's own reservation. Ownership is enforced
// server-side.
func (g *ReservationsGateway) Cancel(ctx context.Context, reservationID string) error {
	path := fmt.Sprintf("/reservations/%s/cancel", url.PathEscape(reservationID))
	if err := g.c.send(ctx, http.MethodPut, path, nil, nil, nil); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return nil
}
