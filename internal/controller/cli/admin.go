package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/canchapp/booking_client/internal/format"
	"github.com/canchapp/booking_client/internal/model"
	"github.com/canchapp/booking_client/internal/service"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator commands (requires API_TOKEN)",
}

var (
	adminCourtID string
	adminDate    string
	adminHour    string
)

var adminOccupancyCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Show reserved and blocked hours for a court and date",
	RunE: func(cmd *cobra.Command, args []string) error {
		occ, err := cliApp.Admin.Occupancy(cmd.Context(), adminCourtID, adminDate)
		if err != nil {
			return err
		}
		printOccupancy(occ)
		return nil
	},
}

var adminBlockCmd = &cobra.Command{
	Use:   "block",
	Short: "Block one hour on a court",
	RunE: func(cmd *cobra.Command, args []string) error {
		occ, err := cliApp.Admin.Block(cmd.Context(), adminCourtID, adminDate, adminHour)
		if err != nil {
			if errors.Is(err, service.ErrHourReserved) {
				fmt.Printf("%s is reserved by a user and cannot be blocked.\n", adminHour)
				printOccupancy(occ)
				return nil
			}
			return err
		}
		fmt.Printf("%s blocked.\n", adminHour)
		printOccupancy(occ)
		return nil
	},
}

var adminUnblockCmd = &cobra.Command{
	Use:   "unblock",
	Short: "Remove a block from one hour",
	RunE: func(cmd *cobra.Command, args []string) error {
		occ, err := cliApp.Admin.Unblock(cmd.Context(), adminCourtID, adminDate, adminHour)
		if err != nil {
			return err
		}
		fmt.Printf("%s is not blocked.\n", adminHour)
		printOccupancy(occ)
		return nil
	},
}

var adminReservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List reservations on your courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		reservations, err := cliApp.Admin.Reservations(cmd.Context())
		if err != nil {
			return err
		}
		if len(reservations) == 0 {
			fmt.Println("No reservations.")
			return nil
		}
		for _, r := range reservations {
			status := format.ReservationStatus(r.Status)
			fmt.Printf("%s %s  %s  %s  %s  %s (%s)\n",
				status.Badge,
				r.ID,
				r.UserName,
				r.CourtName,
				format.DateLabel(r.Date),
				format.TimeRange(r.StartTime, r.EndTime),
				status.Text,
			)
		}
		return nil
	},
}

var adminConfirmCmd = &cobra.Command{
	Use:   "confirm [reservation-id]",
	Short: "Confirm a pending reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.Admin.ConfirmReservation(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Reservation confirmed.")
		return nil
	},
}

var adminCancelCmd = &cobra.Command{
	Use:   "cancel [reservation-id]",
	Short: "Cancel a pending reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.Admin.CancelReservation(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Reservation cancelled.")
		return nil
	},
}

var adminCourtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "Manage your courts",
}

var adminCourtsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		courts, err := cliApp.Admin.Courts(cmd.Context())
		if err != nil {
			return err
		}
		if len(courts) == 0 {
			fmt.Println("No courts.")
			return nil
		}
		for _, court := range courts {
			fmt.Printf("%s  %s  %s  %s-%s  %s\n",
				court.ID,
				court.Name,
				format.Price(court.HourlyPrice),
				court.OpensAt, court.ClosesAt,
				format.CourtState(court.Active),
			)
		}
		return nil
	},
}

var (
	courtName     string
	courtPrice    string
	courtOpensAt  string
	courtClosesAt string
	courtDesc     string
	courtCovered  bool
	courtBalls    bool
)

func courtFromFlags() (model.Court, error) {
	price, err := strconv.ParseFloat(courtPrice, 64)
	if err != nil {
		return model.Court{}, fmt.Errorf("invalid price %q", courtPrice)
	}
	return model.Court{
		Name:          courtName,
		HourlyPrice:   price,
		Description:   courtDesc,
		Covered:       courtCovered,
		BallsProvided: courtBalls,
		OpensAt:       courtOpensAt,
		ClosesAt:      courtClosesAt,
		Active:        true,
	}, nil
}

var adminCourtsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a court",
	RunE: func(cmd *cobra.Command, args []string) error {
		court, err := courtFromFlags()
		if err != nil {
			return err
		}
		created, err := cliApp.Admin.CreateCourt(cmd.Context(), court)
		if err != nil {
			return err
		}
		fmt.Printf("Court created: %s\n", created.ID)
		return nil
	},
}

var adminCourtsUpdateCmd = &cobra.Command{
	Use:   "update [court-id]",
	Short: "Update a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		court, err := courtFromFlags()
		if err != nil {
			return err
		}
		court.ID = args[0]
		if _, err := cliApp.Admin.UpdateCourt(cmd.Context(), court); err != nil {
			return err
		}
		fmt.Println("Court updated.")
		return nil
	},
}

var adminCourtsToggleCmd = &cobra.Command{
	Use:   "toggle [court-id]",
	Short: "Toggle a court between active and inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.Admin.ToggleCourt(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Court toggled.")
		return nil
	},
}

var adminCourtsDeleteCmd = &cobra.Command{
	Use:   "delete [court-id]",
	Short: "Delete a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.Admin.DeleteCourt(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Court deleted.")
		return nil
	},
}

func printOccupancy(occ model.Occupancy) {
	hours := make(map[string]string, len(occ.ReservedHours)+len(occ.BlockedHours))
	for _, h := range occ.ReservedHours {
		hours[h] = "reserved"
	}
	for _, h := range occ.BlockedHours {
		// Reserved wins when the backend reports both.
		if _, ok := hours[h]; !ok {
			hours[h] = "blocked"
		}
	}
	if len(hours) == 0 {
		fmt.Println("All hours free.")
		return
	}

	labels := make([]string, 0, len(hours))
	for h := range hours {
		labels = append(labels, h)
	}
	sort.Strings(labels)
	for _, h := range labels {
		fmt.Printf("  %s  %s\n", h, hours[h])
	}
}

func init() {
	for _, cmd := range []*cobra.Command{adminOccupancyCmd, adminBlockCmd, adminUnblockCmd} {
		cmd.Flags().StringVar(&adminCourtID, "court", "", "court id")
		cmd.Flags().StringVar(&adminDate, "date", "", "date (YYYY-MM-DD)")
		cmd.MarkFlagRequired("court")
		cmd.MarkFlagRequired("date")
	}
	for _, cmd := range []*cobra.Command{adminBlockCmd, adminUnblockCmd} {
		cmd.Flags().StringVar(&adminHour, "hour", "", "hour to block (HH:00)")
		cmd.MarkFlagRequired("hour")
	}

	for _, cmd := range []*cobra.Command{adminCourtsCreateCmd, adminCourtsUpdateCmd} {
		cmd.Flags().StringVar(&courtName, "name", "", "court name")
		cmd.Flags().StringVar(&courtPrice, "price", "0", "hourly price")
		cmd.Flags().StringVar(&courtOpensAt, "opens", "08:00", "opening time (HH:00)")
		cmd.Flags().StringVar(&courtClosesAt, "closes", "23:00", "closing time (HH:00)")
		cmd.Flags().StringVar(&courtDesc, "description", "", "court description")
		cmd.Flags().BoolVar(&courtCovered, "covered", false, "court is covered")
		cmd.Flags().BoolVar(&courtBalls, "balls", false, "balls provided")
		cmd.MarkFlagRequired("name")
	}

	adminCourtsCmd.AddCommand(adminCourtsListCmd)
	adminCourtsCmd.AddCommand(adminCourtsCreateCmd)
	adminCourtsCmd.AddCommand(adminCourtsUpdateCmd)
	adminCourtsCmd.AddCommand(adminCourtsToggleCmd)
	adminCourtsCmd.AddCommand(adminCourtsDeleteCmd)

	adminCmd.AddCommand(adminOccupancyCmd)
	adminCmd.AddCommand(adminBlockCmd)
	adminCmd.AddCommand(adminUnblockCmd)
	adminCmd.AddCommand(adminReservationsCmd)
	adminCmd.AddCommand(adminConfirmCmd)
	adminCmd.AddCommand(adminCancelCmd)
	adminCmd.AddCommand(adminCourtsCmd)

	rootCmd.AddCommand(adminCmd)
}
