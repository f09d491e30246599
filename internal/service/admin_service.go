package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/canchapp/booking_client/internal/model"
	"github.com/canchapp/booking_client/internal/schedule"
)

var (
	// ErrHourReserved means an administrator tried to block an hour a user
	// already holds. Informational, raised before any network call.
	ErrHourReserved = errors.New("hour is reserved by a user and cannot be blocked")
	// ErrNotPending means a confirm/cancel transition was attempted on a
	// reservation outside the pending state.
	ErrNotPending = errors.New("reservation is not pending")
	// ErrReservationNotFound means the reservation id is unknown to the
	// administrator's court set.
	ErrReservationNotFound = errors.New("reservation not found")
)

// AdminService owns the administrator flows: court management, reservation
// review and the per-hour block/unblock engine. After every successful
// mutation the occupancy snapshot is re-fetched; no local patch of the
// snapshot is trusted as final.
type AdminService struct {
	admin  AdminAPI
	logger *zap.Logger
}

func NewAdminService(admin AdminAPI, logger *zap.Logger) *AdminService {
	return &AdminService{
		admin:  admin,
		logger: logger,
	}
}

// Occupancy returns the current reserved/blocked hours for one court and
// date.
func (s *AdminService) Occupancy(ctx context.Context, courtID, date string) (model.Occupancy, error) {
	return s.admin.Occupancy(ctx, courtID, date)
}

// Block marks an hour unavailable. Blocking a reserved hour is refused
// before any network call; reserved always wins over blocked. On success
// the fresh snapshot is returned.
func (s *AdminService) Block(ctx context.Context, courtID, date, hour string) (model.Occupancy, error) {
	occ, err := s.admin.Occupancy(ctx, courtID, date)
	if err != nil {
		return model.Occupancy{}, fmt.Errorf("fetch occupancy: %w", err)
	}
	if occ.Reserved(hour) {
		return occ, ErrHourReserved
	}

	if err := s.admin.Block(ctx, model.Block{CourtID: courtID, Date: date, Hour: hour}); err != nil {
		return occ, err
	}

	s.logger.Info("Hour blocked",
		zap.String("court_id", courtID),
		zap.String("date", date),
		zap.String("hour", hour),
	)
	return s.admin.Occupancy(ctx, courtID, date)
}

// Unblock removes a block. Unblocking an hour that is not blocked is a
// harmless no-op reported as success, without touching the backend.
func (s *AdminService) Unblock(ctx context.Context, courtID, date, hour string) (model.Occupancy, error) {
	occ, err := s.admin.Occupancy(ctx, courtID, date)
	if err != nil {
		return model.Occupancy{}, fmt.Errorf("fetch occupancy: %w", err)
	}
	if !occ.Blocked(hour) {
		return occ, nil
	}

	if err := s.admin.Unblock(ctx, model.Block{CourtID: courtID, Date: date, Hour: hour}); err != nil {
		return occ, err
	}

	s.logger.Info("Hour unblocked",
		zap.String("court_id", courtID),
		zap.String("date", date),
		zap.String("hour", hour),
	)
	return s.admin.Occupancy(ctx, courtID, date)
}

// Reservations lists every reservation on the administrator's courts.
func (s *AdminService) Reservations(ctx context.Context) ([]model.Reservation, error) {
	return s.admin.Reservations(ctx)
}

// ConfirmReservation moves a pending reservation to confirmed. The state
// machine is checked client-side against the latest listing before the
// transition is submitted.
func (s *AdminService) ConfirmReservation(ctx context.Context, reservationID string) error {
	if err := s.guardTransition(ctx, reservationID, model.ReservationStatusConfirmed); err != nil {
		return err
	}
	if err := s.admin.ConfirmReservation(ctx, reservationID); err != nil {
		return err
	}
	s.logger.Info("Reservation confirmed", zap.String("reservation_id", reservationID))
	return nil
}

// CancelReservation moves a pending reservation to cancelled.
func (s *AdminService) CancelReservation(ctx context.Context, reservationID string) error {
	if err := s.guardTransition(ctx, reservationID, model.ReservationStatusCancelled); err != nil {
		return err
	}
	if err := s.admin.CancelReservation(ctx, reservationID); err != nil {
		return err
	}
	s.logger.Info("Reservation cancelled by admin", zap.String("reservation_id", reservationID))
	return nil
}

func (s *AdminService) guardTransition(ctx context.Context, reservationID string, next model.ReservationStatus) error {
	reservations, err := s.admin.Reservations(ctx)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}
	for _, r := range reservations {
		if r.ID != reservationID {
			continue
		}
		if !r.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: status is %s", ErrNotPending, r.Status)
		}
		return nil
	}
	return ErrReservationNotFound
}

// Courts lists the administrator's courts.
func (s *AdminService) Courts(ctx context.Context) ([]model.Court, error) {
	return s.admin.Courts(ctx)
}

// CreateCourt validates operating hours before handing the court to the
// backend.
func (s *AdminService) CreateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	if err := validateCourt(court); err != nil {
		return model.Court{}, err
	}
	return s.admin.CreateCourt(ctx, court)
}

func (s *AdminService) UpdateCourt(ctx context.Context, court model.Court) (model.Court, error) {
	if err := validateCourt(court); err != nil {
		return model.Court{}, err
	}
	return s.admin.UpdateCourt(ctx, court)
}

func (s *AdminService) DeleteCourt(ctx context.Context, courtID string) error {
	return s.admin.DeleteCourt(ctx, courtID)
}

func (s *AdminService) ToggleCourt(ctx context.Context, courtID string) error {
	return s.admin.ToggleCourt(ctx, courtID)
}

func validateCourt(court model.Court) error {
	if court.Name == "" {
		return fmt.Errorf("court name is required")
	}
	if court.HourlyPrice < 0 {
		return fmt.Errorf("hourly price cannot be negative")
	}
	if _, ok := schedule.ParseHour(court.OpensAt); !ok {
		return fmt.Errorf("invalid opening time %q", court.OpensAt)
	}
	if _, ok := schedule.ParseHour(court.ClosesAt); !ok {
		return fmt.Errorf("invalid closing time %q", court.ClosesAt)
	}
	return nil
}
