package report

import (
	"sort"
	"time"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

// DailyTotals sums the six phase channels of hourly readings per calendar day
// and returns the totals sorted by date. The source tag records the
// originating data file.
func DailyTotals(readings []models.HourlyReading, source string) []models.DailyTotal {
	byDay := make(map[time.Time]*models.DailyTotal)
	for _, r := range readings {
		y, m, d := r.Timestamp.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, r.Timestamp.Location())
		total, ok := byDay[day]
		if !ok {
			total = &models.DailyTotal{Date: day, Source: source}
			byDay[day] = total
		}
		total.Consumption.Add(r.Consumption)
		total.Production.Add(r.Production)
	}

	totals := make([]models.DailyTotal, 0, len(byDay))
	for _, t := range byDay {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

// WeekNumber returns the ISO week number of the first daily total, or 0 when
// there is no data.
func WeekNumber(totals []models.DailyTotal) int {
	if len(totals) == 0 {
		return 0
	}
	_, week := totals[0].Date.ISOWeek()
	return week
}
