package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jlehtonen/kwhreport/internal/logging"
	"github.com/jlehtonen/kwhreport/internal/parser"
	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file...]",
	Short: "Import week exports into the local database",
	Long: `Parses the configured week exports (or the files given as arguments),
computes daily phase totals, and stores them in the local SQLite database.
Days already stored for the same source file are skipped.`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files := cfg.GetWeekFiles()
	if len(args) > 0 {
		files = args
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	log := logging.New("import")
	reader := parser.New(log)

	totalRows := 0
	totalDays := 0
	duplicates := 0
	for _, path := range files {
		readings, skipped, err := reader.HourlyFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if skipped > 0 {
			log.Warn().Str("file", path).Int("rows", skipped).Msg("short rows skipped")
		}

		totals := report.DailyTotals(readings, path)
		for i := range totals {
			exists, err := db.HasData(totals[i].Date, path)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if exists {
				duplicates++
				continue
			}
			if err := db.InsertDaily(&totals[i]); err != nil {
				return fmt.Errorf("storing totals from %s: %w", path, err)
			}
			totalDays++
		}

		totalRows += len(readings)
	}

	fmt.Printf("✓ Imported %s hourly rows as %d daily totals from %d files\n",
		humanize.Comma(int64(totalRows)), totalDays, len(files))
	if duplicates > 0 {
		fmt.Printf("  - Skipped %d days already stored\n", duplicates)
	}
	return nil
}
