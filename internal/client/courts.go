package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/canchapp/booking_client/internal/model"
)

// CourtsGateway reads the public venue/court directory.
type CourtsGateway struct {
	c *Client
}

func NewCourtsGateway(c *Client) *CourtsGateway {
	return &CourtsGateway{c: c}
}

// Venues lists every venue with its courts.
func (g *CourtsGateway) Venues(ctx context.Context) ([]model.Venue, error) {
	var venues []model.Venue
	if err := g.c.get(ctx, "/courts", nil, &venues); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

// Detail fetches the raw per-date detail payload for one court. The payload
// shape varies; internal/schedule.Resolve normalizes it.
func (g *CourtsGateway) Detail(ctx context.Context, venueID, courtID, date string) (model.CourtDetail, error) {
	path := fmt.Sprintf("/courts/%s/%s", url.PathEscape(venueID), url.PathEscape(courtID))
	query := url.Values{"date": {date}}

	var detail model.CourtDetail
	if err := g.c.get(ctx, path, query, &detail); err != nil {
		return model.CourtDetail{}, fmt.Errorf("get court detail: %w", err)
	}
	return detail, nil
}
