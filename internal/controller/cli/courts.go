package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canchapp/booking_client/internal/format"
	"github.com/canchapp/booking_client/internal/model"
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List venues and their courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		venues, err := cliApp.Availability.Venues(cmd.Context())
		if err != nil {
			return err
		}
		if len(venues) == 0 {
			fmt.Println("No venues found.")
			return nil
		}
		for _, venue := range venues {
			fmt.Printf("%s (%s)\n", venue.Name, venue.ID)
			for _, court := range venue.Courts {
				fmt.Printf("  %s  %s  %s-%s  %s\n",
					court.Name,
					format.Price(court.HourlyPrice),
					court.OpensAt, court.ClosesAt,
					format.CourtState(court.Active),
				)
			}
		}
		return nil
	},
}

var (
	availVenueID  string
	availCourtID  string
	availDate     string
	availDuration float64
)

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Show bookable start times for a court, date and duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := model.AvailabilityQuery{
			VenueID:  availVenueID,
			CourtID:  availCourtID,
			Date:     availDate,
			Duration: availDuration,
		}
		avail, err := cliApp.Availability.GetAvailability(cmd.Context(), q)
		if err != nil {
			return err
		}

		fmt.Printf("%s, %s:\n", format.DateLabel(q.Date), format.Duration(q.Duration))
		if len(avail.Starts) == 0 {
			fmt.Println("  no start times available")
			return nil
		}
		for _, opt := range avail.Starts {
			fmt.Printf("  %s\n", format.TimeRange(opt.Start, opt.End))
		}
		return nil
	},
}

func init() {
	availabilityCmd.Flags().StringVar(&availVenueID, "venue", "", "venue id")
	availabilityCmd.Flags().StringVar(&availCourtID, "court", "", "court id")
	availabilityCmd.Flags().StringVar(&availDate, "date", "", "date (YYYY-MM-DD)")
	availabilityCmd.Flags().Float64Var(&availDuration, "duration", 1, "duration in hours (1, 1.5 or 2)")
	availabilityCmd.MarkFlagRequired("venue")
	availabilityCmd.MarkFlagRequired("court")
	availabilityCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(venuesCmd)
	rootCmd.AddCommand(availabilityCmd)
}
