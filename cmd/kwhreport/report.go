package main

import (
	"fmt"
	"os"

	"github.com/jlehtonen/kwhreport/internal/logging"
	"github.com/jlehtonen/kwhreport/internal/menu"
	"github.com/jlehtonen/kwhreport/internal/parser"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Build period reports interactively from the yearly export",
	Long: `Reads the yearly measurement export (timestamp, consumption kWh,
production kWh, temperature) and runs an interactive menu for building
date-range, monthly and full-year summaries. A finished report can be
written to the report file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := cfg.GetYearFile()
	if len(args) == 1 {
		path = args[0]
	}

	reader := parser.New(logging.New("report"))
	data, _, err := reader.Measurements(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	runner := &menu.Runner{
		In:         os.Stdin,
		Out:        os.Stdout,
		Data:       data,
		Year:       cfg.GetReportYear(),
		ReportPath: cfg.GetReportFile(),
	}
	return runner.Run()
}
