package report

import (
	"fmt"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

// WeekTable builds the console table for one week of daily totals.
func WeekTable(totals []models.DailyTotal) []string {
	lines := []string{
		fmt.Sprintf("Week %d electricity consumption and production (kWh, by phase)", WeekNumber(totals)),
		"",
		"Day          Date        Consumption [kWh]               Production [kWh]",
		"            (dd.mm.yyyy)  v1      v2      v3             v1     v2     v3",
		"---------------------------------------------------------------------------",
	}
	for _, day := range totals {
		c1, c2, c3 := day.Consumption.KWh()
		p1, p2, p3 := day.Production.KWh()
		lines = append(lines, fmt.Sprintf("%-12s %-11s %6s  %6s  %6s         %6s %6s %6s",
			WeekdayName(day.Date), Date(day.Date),
			Decimal(c1), Decimal(c2), Decimal(c3),
			Decimal(p1), Decimal(p2), Decimal(p3)))
	}
	return lines
}

// SummaryReport builds the multi-week summary written to summary.txt: one
// section per week followed by the combined per-phase totals.
func SummaryReport(weeks [][]models.DailyTotal) []string {
	var lines []string
	var totalCons, totalProd models.PhaseWh

	for _, week := range weeks {
		lines = append(lines,
			fmt.Sprintf("Week %d electricity consumption and production (kWh, by phase)", WeekNumber(week)),
			"Day      Date           Consumption [kWh]            Production [kWh]",
			"           v1      v2      v3           v1     v2      v3",
			"---------------------------------------------------------------------------",
		)
		for _, day := range week {
			c1, c2, c3 := day.Consumption.KWh()
			p1, p2, p3 := day.Production.KWh()
			lines = append(lines, fmt.Sprintf("%-9s %-12s %6s %6s %6s   %6s %6s %6s",
				WeekdayName(day.Date), Date(day.Date),
				Decimal(c1), Decimal(c2), Decimal(c3),
				Decimal(p1), Decimal(p2), Decimal(p3)))
			totalCons.Add(day.Consumption)
			totalProd.Add(day.Production)
		}
		lines = append(lines, "")
	}

	c1, c2, c3 := totalCons.KWh()
	p1, p2, p3 := totalProd.KWh()
	lines = append(lines,
		"Total for all weeks (kWh):",
		fmt.Sprintf("Consumption: %s %s %s", Decimal(c1), Decimal(c2), Decimal(c3)),
		fmt.Sprintf("Production:  %s %s %s", Decimal(p1), Decimal(p2), Decimal(p3)),
	)
	return lines
}
