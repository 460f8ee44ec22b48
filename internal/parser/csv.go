package parser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

// timestampLayouts covers the ISO timestamp variants seen in the data exports.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Reader parses the semicolon-delimited hourly CSV exports.
type Reader struct {
	log zerolog.Logger
}

// New returns a Reader that reports skipped rows through the given logger.
func New(log zerolog.Logger) *Reader {
	return &Reader{log: log}
}

// HourlyFile reads one week export: a header line followed by hourly rows of
// timestamp plus six integer Wh columns (consumption v1-v3, production v1-v3).
// Rows with fewer than seven columns are skipped and counted.
func (r *Reader) HourlyFile(path string) ([]models.HourlyReading, int, error) {
	records, err := readDelimited(path)
	if err != nil {
		return nil, 0, err
	}

	var readings []models.HourlyReading
	skipped := 0
	for i, parts := range records {
		if len(parts) < 7 {
			skipped++
			r.log.Warn().Str("file", path).Int("line", i+2).Int("columns", len(parts)).
				Msg("skipping short row")
			continue
		}

		ts, err := parseTimestamp(parts[0])
		if err != nil {
			return nil, skipped, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}

		var wh [6]int64
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseInt(strings.TrimSpace(parts[j+1]), 10, 64)
			if err != nil {
				return nil, skipped, fmt.Errorf("%s line %d: parsing Wh value %q: %w", path, i+2, parts[j+1], err)
			}
			wh[j] = v
		}

		readings = append(readings, models.HourlyReading{
			Timestamp:   ts,
			Consumption: models.PhaseWh{V1: wh[0], V2: wh[1], V3: wh[2]},
			Production:  models.PhaseWh{V1: wh[3], V2: wh[4], V3: wh[5]},
		})
	}
	return readings, skipped, nil
}

// Measurements reads the yearly export: a header line followed by hourly rows
// of timestamp, consumption kWh, production kWh and temperature, with comma
// decimal separators. Rows with fewer than four columns are skipped.
func (r *Reader) Measurements(path string) ([]models.Measurement, int, error) {
	records, err := readDelimited(path)
	if err != nil {
		return nil, 0, err
	}

	var measurements []models.Measurement
	skipped := 0
	for i, parts := range records {
		if len(parts) < 4 {
			skipped++
			r.log.Warn().Str("file", path).Int("line", i+2).Int("columns", len(parts)).
				Msg("skipping short row")
			continue
		}

		ts, err := parseTimestamp(parts[0])
		if err != nil {
			return nil, skipped, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}

		var values [3]float64
		for j := 0; j < 3; j++ {
			v, err := ParseDecimal(parts[j+1])
			if err != nil {
				return nil, skipped, fmt.Errorf("%s line %d: %w", path, i+2, err)
			}
			values[j] = v
		}

		measurements = append(measurements, models.Measurement{
			Timestamp:      ts,
			ConsumptionKWh: values[0],
			ProductionKWh:  values[1],
			TemperatureC:   values[2],
		})
	}
	return measurements, skipped, nil
}

// ParseDecimal parses a number that may use a comma as the decimal separator.
func ParseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return v, nil
}

// readDelimited reads a semicolon-delimited file and returns its data records
// with the header line removed.
func readDelimited(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// readLines reads a text file into trimmed lines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q", s)
}
