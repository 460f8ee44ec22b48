package report

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames maps ISO weekday index (Monday=0) to the Finnish name.
var weekdayNames = [7]string{
	"Maanantai",
	"Tiistai",
	"Keskiviikko",
	"Torstai",
	"Perjantai",
	"Lauantai",
	"Sunnuntai",
}

// WeekdayName returns the Finnish weekday name for a date.
func WeekdayName(t time.Time) string {
	// time.Weekday counts Sunday=0, the table counts Monday=0
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// Decimal formats a value with two decimals and a comma separator.
func Decimal(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// Date formats a date as zero-padded dd.mm.yyyy.
func Date(t time.Time) string {
	return t.Format("02.01.2006")
}

// ShortDate formats a date as d.m.yyyy without zero padding.
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

// ClockTime formats a clock time as HH.MM with a Finnish dot separator.
func ClockTime(t time.Time) string {
	return t.Format("15.04")
}

// KWh converts watt-hours to kilowatt-hours.
func KWh(wh int64) float64 {
	return float64(wh) / 1000
}
