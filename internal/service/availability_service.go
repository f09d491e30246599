package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/canchapp/booking_client/internal/model"
	"github.com/canchapp/booking_client/internal/schedule"
)

// AvailabilityService turns a raw court detail payload into the set of
// bookable start times for one query. Every call fetches fresh backend
// state: snapshots are never reused across date, court or duration changes.
type AvailabilityService struct {
	directory CourtDirectory
	logger    *zap.Logger
}

func NewAvailabilityService(directory CourtDirectory, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		directory: directory,
		logger:    logger,
	}
}

// Venues lists venues with their courts for browsing.
func (s *AvailabilityService) Venues(ctx context.Context) ([]model.Venue, error) {
	return s.directory.Venues(ctx)
}

// GetAvailability fetches the court's detail for the query date, resolves
// the payload shape and applies duration-aware filtering. An unrecognized
// payload yields an empty start list, not an error.
func (s *AvailabilityService) GetAvailability(ctx context.Context, q model.AvailabilityQuery) (*model.Availability, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("validate query: %w", err)
	}

	detail, err := s.directory.Detail(ctx, q.VenueID, q.CourtID, q.Date)
	if err != nil {
		return nil, fmt.Errorf("fetch court detail: %w", err)
	}

	occ := schedule.Resolve(detail)
	starts := schedule.AvailableStarts(occ, q.Duration)

	options := make([]model.StartOption, 0, len(starts))
	for _, start := range starts {
		options = append(options, model.StartOption{
			Start: start,
			End:   schedule.EndLabel(start, q.Duration),
		})
	}

	s.logger.Info("Availability computed",
		zap.String("venue_id", q.VenueID),
		zap.String("court_id", q.CourtID),
		zap.String("date", q.Date),
		zap.Float64("duration", q.Duration),
		zap.Int("grid_size", len(occ.Grid)),
		zap.Int("available", len(options)),
	)

	return &model.Availability{Query: q, Starts: options}, nil
}
