package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	ReservationsFile string   `yaml:"reservations_file,omitempty"` // Default: reservations.txt
	WeekFile         string   `yaml:"week_file,omitempty"`         // Default: week42.csv
	WeekFiles        []string `yaml:"week_files,omitempty"`        // Default: week41..43.csv
	YearFile         string   `yaml:"year_file,omitempty"`         // Default: 2025.csv
	SummaryFile      string   `yaml:"summary_file,omitempty"`      // Default: summary.txt
	ReportFile       string   `yaml:"report_file,omitempty"`       // Default: report.txt
	ReportYear       int      `yaml:"report_year,omitempty"`       // Default: 2025
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetReservationsFile returns the reservation input file
func (c *Config) GetReservationsFile() string {
	if c.ReservationsFile != "" {
		return c.ReservationsFile
	}
	return "reservations.txt"
}

// GetWeekFile returns the single-week input file for the week command
func (c *Config) GetWeekFile() string {
	if c.WeekFile != "" {
		return c.WeekFile
	}
	return "week42.csv"
}

// GetWeekFiles returns the week input files for the summary command
func (c *Config) GetWeekFiles() []string {
	if len(c.WeekFiles) > 0 {
		return c.WeekFiles
	}
	return []string{"week41.csv", "week42.csv", "week43.csv"}
}

// GetYearFile returns the yearly measurement file for the report command
func (c *Config) GetYearFile() string {
	if c.YearFile != "" {
		return c.YearFile
	}
	return "2025.csv"
}

// GetSummaryFile returns the summary output file
func (c *Config) GetSummaryFile() string {
	if c.SummaryFile != "" {
		return c.SummaryFile
	}
	return "summary.txt"
}

// GetReportFile returns the report output file
func (c *Config) GetReportFile() string {
	if c.ReportFile != "" {
		return c.ReportFile
	}
	return "report.txt"
}

// GetReportYear returns the year covered by the yearly report
func (c *Config) GetReportYear() int {
	if c.ReportYear > 0 {
		return c.ReportYear
	}
	return 2025
}
