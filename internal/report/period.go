package report

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

const separator = "-----------------------------------------------------"

// FilterRange returns the measurements whose day falls inside the inclusive
// start..end date range.
func FilterRange(data []models.Measurement, start, end time.Time) []models.Measurement {
	var out []models.Measurement
	for _, m := range data {
		day := m.Day()
		if !day.Before(start) && !day.After(end) {
			out = append(out, m)
		}
	}
	return out
}

// FilterMonth returns the measurements recorded in the given calendar month.
func FilterMonth(data []models.Measurement, month time.Month) []models.Measurement {
	var out []models.Measurement
	for _, m := range data {
		if m.Timestamp.Month() == month {
			out = append(out, m)
		}
	}
	return out
}

// FilterYear returns the measurements recorded in the given year.
func FilterYear(data []models.Measurement, year int) []models.Measurement {
	var out []models.Measurement
	for _, m := range data {
		if m.Timestamp.Year() == year {
			out = append(out, m)
		}
	}
	return out
}

// RangeReport builds the report for an inclusive date range.
func RangeReport(data []models.Measurement, start, end time.Time) []string {
	lines := []string{
		separator,
		fmt.Sprintf("Report for the period %s-%s", ShortDate(start), ShortDate(end)),
	}
	return append(lines, SummaryLines(FilterRange(data, start, end))...)
}

// MonthReport builds the report for one calendar month.
func MonthReport(data []models.Measurement, month time.Month) []string {
	lines := []string{
		separator,
		fmt.Sprintf("Report for the month: %s", month.String()),
	}
	return append(lines, SummaryLines(FilterMonth(data, month))...)
}

// YearReport builds the full-year report.
func YearReport(data []models.Measurement, year int) []string {
	lines := []string{
		fmt.Sprintf("Report for the year: %d", year),
	}
	return append(lines, SummaryLines(FilterYear(data, year))...)
}

// SummaryLines builds the totals and mean temperature lines for a set of
// measurements.
func SummaryLines(rows []models.Measurement) []string {
	if len(rows) == 0 {
		return []string{"No data for the selected period."}
	}

	var totalConsumption, totalProduction float64
	temperatures := make([]float64, len(rows))
	for i, m := range rows {
		totalConsumption += m.ConsumptionKWh
		totalProduction += m.ProductionKWh
		temperatures[i] = m.TemperatureC
	}
	avgTemperature := stat.Mean(temperatures, nil)

	return []string{
		fmt.Sprintf("- Total consumption: %s kWh", Decimal(totalConsumption)),
		fmt.Sprintf("- Total production: %s kWh", Decimal(totalProduction)),
		fmt.Sprintf("- Average temperature: %s °C", Decimal(avgTemperature)),
	}
}
