package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canchapp/booking_client/internal/format"
	"github.com/canchapp/booking_client/internal/model"
)

var (
	reserveVenueID  string
	reserveCourtID  string
	reserveDate     string
	reserveDuration float64
	reserveStart    string
	reserveUserID   string
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Reserve a court slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := model.AvailabilityQuery{
			VenueID:  reserveVenueID,
			CourtID:  reserveCourtID,
			Date:     reserveDate,
			Duration: reserveDuration,
		}
		created, err := cliApp.Reservations.Reserve(cmd.Context(), q, reserveStart, reserveUserID)
		if err != nil {
			if conflict, ok := asConflict(err); ok {
				fmt.Println(conflictMessage(conflict))
				return nil
			}
			return err
		}

		status := format.ReservationStatus(created.Status)
		fmt.Printf("Reservation %s %s\n", created.ID, status.Badge)
		fmt.Printf("  %s  %s  (%s)\n",
			format.DateLabel(created.Date),
			format.TimeRange(created.StartTime, created.EndTime),
			format.Duration(created.Duration),
		)
		fmt.Println("  awaiting confirmation by the venue")
		return nil
	},
}

var (
	listUserID string
	listPast   bool
)

var myReservationsCmd = &cobra.Command{
	Use:   "my-reservations",
	Short: "List your reservations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			reservations []model.Reservation
			err          error
		)
		if listPast {
			reservations, err = cliApp.Reservations.Past(cmd.Context(), listUserID)
		} else {
			reservations, err = cliApp.Reservations.Upcoming(cmd.Context(), listUserID)
		}
		if err != nil {
			return err
		}

		if len(reservations) == 0 {
			fmt.Println("No reservations.")
			return nil
		}
		for _, r := range reservations {
			printReservation(r)
		}
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [reservation-id]",
	Short: "Cancel one of your reservations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.Reservations.Cancel(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Reservation cancelled.")
		return nil
	},
}

func printReservation(r model.Reservation) {
	status := format.ReservationStatus(r.Status)
	fmt.Printf("%s %s  %s  %s  %s (%s)\n",
		status.Badge,
		r.ID,
		r.CourtName,
		format.DateLabel(r.Date),
		format.TimeRange(r.StartTime, r.EndTime),
		status.Text,
	)
}

func init() {
	reserveCmd.Flags().StringVar(&reserveVenueID, "venue", "", "venue id")
	reserveCmd.Flags().StringVar(&reserveCourtID, "court", "", "court id")
	reserveCmd.Flags().StringVar(&reserveDate, "date", "", "date (YYYY-MM-DD)")
	reserveCmd.Flags().Float64Var(&reserveDuration, "duration", 1, "duration in hours (1, 1.5 or 2)")
	reserveCmd.Flags().StringVar(&reserveStart, "start", "", "start time (HH:00)")
	reserveCmd.Flags().StringVar(&reserveUserID, "user", "", "user id")
	reserveCmd.MarkFlagRequired("venue")
	reserveCmd.MarkFlagRequired("court")
	reserveCmd.MarkFlagRequired("date")
	reserveCmd.MarkFlagRequired("start")
	reserveCmd.MarkFlagRequired("user")

	myReservationsCmd.Flags().StringVar(&listUserID, "user", "", "user id")
	myReservationsCmd.Flags().BoolVar(&listPast, "past", false, "show past reservations instead of upcoming")
	myReservationsCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(reserveCmd)
	rootCmd.AddCommand(myReservationsCmd)
	rootCmd.AddCommand(cancelCmd)
}
