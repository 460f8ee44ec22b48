package main

import (
	"fmt"

	"github.com/jlehtonen/kwhreport/internal/logging"
	"github.com/jlehtonen/kwhreport/internal/parser"
	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week [file]",
	Short: "Print one week's daily consumption and production totals",
	Long: `Reads a semicolon-delimited hourly Wh export, sums the six phase channels
per calendar day, and prints a kWh table with Finnish weekday names sorted
by date.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := cfg.GetWeekFile()
	if len(args) == 1 {
		path = args[0]
	}

	reader := parser.New(logging.New("week"))
	readings, _, err := reader.HourlyFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if len(readings) == 0 {
		fmt.Println("No data found")
		return nil
	}

	totals := report.DailyTotals(readings, path)
	for _, line := range report.WeekTable(totals) {
		fmt.Println(line)
	}

	return nil
}
