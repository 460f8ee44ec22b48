package main

import (
	"fmt"
	"strings"

	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/jlehtonen/kwhreport/pkg/models"
	"github.com/spf13/cobra"
)

var listSource string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored daily totals",
	Long:  `Displays the imported daily consumption and production totals from the database.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSource, "source", "", "Filter by source file (e.g. week42.csv)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	totals, err := db.ListDaily(listSource)
	if err != nil {
		return fmt.Errorf("listing daily totals: %w", err)
	}

	if len(totals) == 0 {
		if listSource != "" {
			fmt.Printf("No data found for %s\n", listSource)
		} else {
			fmt.Println("No data found")
		}
		return nil
	}

	fmt.Println("\nStored Daily Totals (kWh):")
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Printf("%-12s  %-12s  %22s  %22s\n", "Date", "Weekday", "Consumption v1/v2/v3", "Production v1/v2/v3")
	fmt.Println("--------------------------------------------------------------------------------")

	var grandCons, grandProd models.PhaseWh
	for _, day := range totals {
		c1, c2, c3 := day.Consumption.KWh()
		p1, p2, p3 := day.Production.KWh()
		fmt.Printf("%-12s  %-12s  %6s %7s %7s  %6s %7s %7s\n",
			day.Date.Format("2006-01-02"), report.WeekdayName(day.Date),
			report.Decimal(c1), report.Decimal(c2), report.Decimal(c3),
			report.Decimal(p1), report.Decimal(p2), report.Decimal(p3))
		grandCons.Add(day.Consumption)
		grandProd.Add(day.Production)
	}

	fmt.Println("--------------------------------------------------------------------------------")
	c1, c2, c3 := grandCons.KWh()
	p1, p2, p3 := grandProd.KWh()
	fmt.Printf("Total consumption: %s / %s / %s kWh (%d days)\n",
		report.Decimal(c1), report.Decimal(c2), report.Decimal(c3), len(totals))
	fmt.Printf("Total production:  %s / %s / %s kWh\n",
		report.Decimal(p1), report.Decimal(p2), report.Decimal(p3))

	if listSource == "" {
		sources, err := db.Sources()
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
		fmt.Printf("Sources: %s\n", strings.Join(sources, ", "))
	}

	return nil
}
