package main

import (
	"fmt"

	"github.com/jlehtonen/kwhreport/internal/parser"
	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/spf13/cobra"
)

var reservationCmd = &cobra.Command{
	Use:   "reservation [file]",
	Short: "Print reservation details from a delimited file",
	Long: `Reads a |-delimited reservation file and prints each reservation as a
labelled detail block with Finnish formatting (dd.mm.yyyy dates, comma
decimal separators, computed total price).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReservation,
}

func init() {
	rootCmd.AddCommand(reservationCmd)
}

func runReservation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := cfg.GetReservationsFile()
	if len(args) == 1 {
		path = args[0]
	}

	reservations, err := parser.ReadReservations(path)
	if err != nil {
		return fmt.Errorf("reading reservations: %w", err)
	}

	if len(reservations) == 0 {
		fmt.Println("No reservations found")
		return nil
	}

	for i := range reservations {
		if i > 0 {
			fmt.Println()
		}
		for _, line := range report.ReservationDetails(&reservations[i]) {
			fmt.Println(line)
		}
	}

	return nil
}
