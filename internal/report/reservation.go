package report

import (
	"fmt"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

// ReservationDetails builds the labelled detail block for one reservation.
func ReservationDetails(r *models.Reservation) []string {
	paid := "No"
	if r.Paid {
		paid = "Yes"
	}
	return []string{
		fmt.Sprintf("Reservation number: %d", r.Number),
		fmt.Sprintf("Booker: %s", r.Booker),
		fmt.Sprintf("Date: %s", Date(r.Date)),
		fmt.Sprintf("Start time: %s", ClockTime(r.StartTime)),
		fmt.Sprintf("Number of hours: %d", r.Hours),
		fmt.Sprintf("Hourly price: %s €", Decimal(r.HourlyRate)),
		fmt.Sprintf("Total price: %s €", Decimal(r.TotalPrice())),
		fmt.Sprintf("Paid: %s", paid),
		fmt.Sprintf("Venue: %s", r.Venue),
		fmt.Sprintf("Phone: %s", r.Phone),
		fmt.Sprintf("Email: %s", r.Email),
	}
}
