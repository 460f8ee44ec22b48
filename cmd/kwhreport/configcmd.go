package main

import (
	"fmt"
	"os"

	"github.com/jlehtonen/kwhreport/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long:  `Creates the config file with the default input and output file names so they can be edited.`,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	cfg := &config.Config{
		ReservationsFile: "reservations.txt",
		WeekFile:         "week42.csv",
		WeekFiles:        []string{"week41.csv", "week42.csv", "week43.csv"},
		YearFile:         "2025.csv",
		SummaryFile:      "summary.txt",
		ReportFile:       "report.txt",
		ReportYear:       2025,
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
