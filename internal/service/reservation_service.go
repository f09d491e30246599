package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/canchapp/booking_client/internal/client"
	"github.com/canchapp/booking_client/internal/model"
	"github.com/canchapp/booking_client/internal/schedule"
)

// ConflictError means the chosen slot is no longer available, either caught
// by the client-side guard or rejected authoritatively by the backend.
// Refreshed carries the availability re-derived after the conflict, when the
// re-fetch itself succeeded.
type ConflictError struct {
	Refreshed *model.Availability
}

func (e *ConflictError) Error() string {
	return "slot is no longer available"
}

// ReservationService owns the reservation flow: the advisory conflict guard
// before submission and the authoritative handling of backend rejections.
type ReservationService struct {
	reservations ReservationAPI
	availability *AvailabilityService
	logger       *zap.Logger
}

func NewReservationService(reservations ReservationAPI, availability *AvailabilityService, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		availability: availability,
		logger:       logger,
	}
}

// Reserve books the slot at start for the query's court, date and duration.
// The guard re-derives availability from a fresh fetch first — never from a
// stale snapshot — and refuses the submission outright when the start is
// already gone. The backend stays the final authority: its rejection is
// answered with one more re-fetch so the caller can show corrected state.
// New reservations always enter the state machine as pending.
func (s *ReservationService) Reserve(ctx context.Context, q model.AvailabilityQuery, start, userID string) (*model.Reservation, error) {
	if userID == "" {
		return nil, fmt.Errorf("user is required")
	}

	avail, err := s.availability.GetAvailability(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("pre-submit availability check: %w", err)
	}
	if !avail.Has(start) {
		s.logger.Info("Reservation refused by client-side guard",
			zap.String("court_id", q.CourtID),
			zap.String("date", q.Date),
			zap.String("start", start),
		)
		return nil, &ConflictError{Refreshed: avail}
	}

	created, err := s.reservations.Create(ctx, model.Reservation{
		VenueID:   q.VenueID,
		CourtID:   q.CourtID,
		Date:      q.Date,
		StartTime: start,
		Duration:  q.Duration,
		EndTime:   schedule.EndLabel(start, q.Duration),
		UserID:    userID,
		Status:    model.ReservationStatusPending,
	})
	if err != nil {
		if errors.Is(err, client.ErrSlotTaken) {
			refreshed, ferr := s.availability.GetAvailability(ctx, q)
			if ferr != nil {
				refreshed = nil
			}
			return nil, &ConflictError{Refreshed: refreshed}
		}
		return nil, err
	}

	s.logger.Info("Reservation created",
		zap.String("reservation_id", created.ID),
		zap.String("court_id", created.CourtID),
		zap.String("date", created.Date),
		zap.String("start", created.StartTime),
		zap.Float64("duration", created.Duration),
		zap.String("status", string(created.Status)),
	)
	return &created, nil
}

// Upcoming returns the user's reservations on or after today, oldest first
// input order preserved. Filtering happens client-side.
func (s *ReservationService) Upcoming(ctx context.Context, userID string) ([]model.Reservation, error) {
	return s.listFiltered(ctx, userID, true)
}

// Past returns the user's reservations before today.
func (s *ReservationService) Past(ctx context.Context, userID string) ([]model.Reservation, error) {
	return s.listFiltered(ctx, userID, false)
}

func (s *ReservationService) listFiltered(ctx context.Context, userID string, upcoming bool) ([]model.Reservation, error) {
	all, err := s.reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	filtered := make([]model.Reservation, 0, len(all))
	for _, r := range all {
		// Date strings compare lexicographically in YYYY-MM-DD.
		if (r.Date >= today) == upcoming {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Cancel cancels the user's own reservation. Ownership and the state
// machine are enforced server-side; the client only relays the outcome.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string) error {
	if err := s.reservations.Cancel(ctx, reservationID); err != nil {
		return err
	}
	s.logger.Info("Reservation cancelled by owner",
		zap.String("reservation_id", reservationID),
	)
	return nil
}
