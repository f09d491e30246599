package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/canchapp/booking_client/internal/model"
)

// AdminGateway covers the administrator-scoped endpoints. Every call
// requires a configured bearer token; its absence fails before any network
// I/O.
type AdminGateway struct {
	c *Client
}

func NewAdminGateway(c *Client) *AdminGateway {
	return &AdminGateway{c: c}
}

// Courts lists the authenticated administrator's courts.
func (g *AdminGateway) Courts(ctx context.Context) ([]model.Court, error) {
	if err := g.c.requireToken(); err != nil {
		return nil, err
	}
	var courts []model.Court
	if err := g.c.get(ctx, "/admin/courts", nil, &courts); err != nil {
		return nil, fmt.Errorf("list admin courts: %w", err)
	}
	return courts, nil
}

func (g *AdminGateway) CreateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	if err := g.c.requireToken(); err != nil {
		return model.Court{}, err
	}
	var created model.Court
	if err := g.c.send(ctx, http.MethodPost, "/admin/courts", court, &created, nil); err != nil {
		return model.Court{}, fmt.Errorf("create court: %w", err)
	}
	return created, nil
}

func (g *AdminGateway) UpdateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	if err := g.c.requireToken(); err != nil {
		return model.Court{}, err
	}
	path := "/admin/courts/" + url.PathEscape(court.ID)
	var updated model.Court
	if err := g.c.send(ctx, http.MethodPut, path, court, &updated, nil); err != nil {
		return model.Court{}, fmt.Errorf("update court: %w", err)
	}
	return updated, nil
}

func (g *AdminGateway) DeleteCourt(ctx context.Context, courtID string) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := "/admin/courts/" + url.PathEscape(courtID)
	if err := g.c.send(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete court: %w", err)
	}
	return nil
}

// ToggleCourt flips a court between active and inactive.
func (g *AdminGateway) ToggleCourt(ctx context.Context, courtID string) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/admin/courts/%s/toggle", url.PathEscape(courtID))
	if err := g.c.send(ctx, http.MethodPut, path, nil, nil, nil); err != nil {
		return fmt.Errorf("toggle court: %w", err)
	}
	return nil
}

// Reservations lists every reservation on the administrator's courts.
func (g *AdminGateway) Reservations(ctx context.Context) ([]model.Reservation, error) {
	if err := g.c.requireToken(); err != nil {
		return nil, err
	}
	var reservations []model.Reservation
	if err := g.c.get(ctx, "/admin/reservations", nil, &reservations); err != nil {
		return nil, fmt.Errorf("list admin reservations: %w", err)
	}
	return reservations, nil
}

func (g *AdminGateway) ConfirmReservation(ctx context.Context, reservationID string) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/admin/reservations/%s/confirm", url.PathEscape(reservationID))
	if err := g.c.send(ctx, http.MethodPut, path, nil, nil, nil); err != nil {
		return fmt.Errorf("confirm reservation: %w", err)
	}
	return nil
}

func (g *AdminGateway) CancelReservation(ctx context.Context, reservationID string) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/admin/reservations/%s/cancel", url.PathEscape(reservationID))
	if err := g.c.send(ctx, http.MethodPut, path, nil, nil, nil); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return nil
}

// Occupancy fetches the reserved and blocked hours for one court and date.
func (g *AdminGateway) Occupancy(ctx context.Context, courtID, date string) (model.Occupancy, error) {
	if err := g.c.requireToken(); err != nil {
		return model.Occupancy{}, err
	}
	path := fmt.Sprintf("/admin/courts/%s/availability", url.PathEscape(courtID))
	query := url.Values{"date": {date}}

	var occ model.Occupancy
	if err := g.c.get(ctx, path, query, &occ); err != nil {
		return model.Occupancy{}, fmt.Errorf("get occupancy: %w", err)
	}
	return occ, nil
}

// Block marks one hour unavailable. The reserved-hour precondition is
// checked by the admin service before this call is made.
func (g *AdminGateway) Block(ctx context.Context, block model.Block) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/admin/courts/%s/block", url.PathEscape(block.CourtID))
	if err := g.c.send(ctx, http.MethodPost, path, block, nil, nil); err != nil {
		return fmt.Errorf("block hour: %w", err)
	}
	return nil
}

// Unblock removes an administrative block.
func (g *AdminGateway) Unblock(ctx context.Context, block model.Block) error {
	if err := g.c.requireToken(); err != nil {
		return err
	}
	path := fmt.Sprintf("/admin/courts/%s/unblock", url.PathEscape(block.CourtID))
	if err := g.c.send(ctx, http.MethodPost, path, block, nil, nil); err != nil {
		return fmt.Errorf("unblock hour: %w", err)
	}
	return nil
}
