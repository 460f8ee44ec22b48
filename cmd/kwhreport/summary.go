package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jlehtonen/kwhreport/internal/logging"
	"github.com/jlehtonen/kwhreport/internal/parser"
	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/jlehtonen/kwhreport/pkg/models"
	"github.com/spf13/cobra"
)

var summaryOutput string

var summaryCmd = &cobra.Command{
	Use:   "summary [file...]",
	Short: "Write a multi-week consumption and production summary file",
	Long: `Reads the configured week exports (or the files given as arguments),
builds one kWh section per week plus combined per-phase totals, and writes
the report to the summary file.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryOutput, "output", "", "Summary file to write (default from config)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files := cfg.GetWeekFiles()
	if len(args) > 0 {
		files = args
	}

	output := cfg.GetSummaryFile()
	if summaryOutput != "" {
		output = summaryOutput
	}

	reader := parser.New(logging.New("summary"))
	weeks := make([][]models.DailyTotal, 0, len(files))
	for _, path := range files {
		readings, _, err := reader.HourlyFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		weeks = append(weeks, report.DailyTotals(readings, path))
	}

	lines := report.SummaryReport(weeks)
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(output, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}

	fmt.Printf("✓ Wrote %s (%d weeks)\n", output, len(weeks))
	return nil
}
