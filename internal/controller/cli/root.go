package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appcore "github.com/canchapp/booking_client/internal/app"
	"github.com/canchapp/booking_client/internal/client"
	"github.com/canchapp/booking_client/internal/config"
	"github.com/canchapp/booking_client/internal/service"
)

// App bundles the wired services every command runs against.
type App struct {
	Logger       *zap.Logger
	Availability *service.AvailabilityService
	Reservations *service.ReservationService
	Admin        *service.AdminService
}

var cliApp *App

var rootCmd = &cobra.Command{
	Use:   "canchactl",
	Short: "Padel court booking client",
	Long: `canchactl browses padel venues, checks court availability and manages
reservations against the booking backend. Administrator commands require
API_TOKEN to be configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cliApp != nil {
			return nil
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		cliApp = a
		return nil
	},
}

func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := appcore.NewLogger(cfg.Environment)

	c := client.New(cfg, logger)
	availability := service.NewAvailabilityService(client.NewCourtsGateway(c), logger)

	return &App{
		Logger:       logger,
		Availability: availability,
		Reservations: service.NewReservationService(client.NewReservationsGateway(c), availability, logger),
		Admin:        service.NewAdminService(client.NewAdminGateway(c), logger),
	}, nil
}

// SetApp injects a pre-wired app, used by tests.
func SetApp(a *App) {
	cliApp = a
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if client.IsRetryable(err) {
			fmt.Fprintln(os.Stderr, "The backend looks unavailable; try the same command again.")
		}
		os.Exit(1)
	}
}

// conflictMessage renders a refused reservation with the corrected options.
func conflictMessage(conflict *service.ConflictError) string {
	msg := "That start time was just taken."
	if conflict.Refreshed == nil || len(conflict.Refreshed.Starts) == 0 {
		return msg + " No other start times are free for this duration."
	}
	msg += " Still available:"
	for _, opt := range conflict.Refreshed.Starts {
		msg += "\n  " + opt.Start
	}
	return msg
}

func asConflict(err error) (*service.ConflictError, bool) {
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
