package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

func TestReservationDetails(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2025-10-31")
	start, _ := time.Parse("15:04", "10:00")
	r := &models.Reservation{
		Number:     123,
		Booker:     "Anna Virtanen",
		Date:       date,
		StartTime:  start,
		Hours:      2,
		HourlyRate: 19.95,
		Paid:       true,
		Venue:      "Meeting Room A",
		Phone:      "0401234567",
		Email:      "anna.virtanen@example.com",
	}

	want := []string{
		"Reservation number: 123",
		"Booker: Anna Virtanen",
		"Date: 31.10.2025",
		"Start time: 10.00",
		"Number of hours: 2",
		"Hourly price: 19,95 €",
		"Total price: 39,90 €",
		"Paid: Yes",
		"Venue: Meeting Room A",
		"Phone: 0401234567",
		"Email: anna.virtanen@example.com",
	}
	assert.Equal(t, want, ReservationDetails(r))
}

func TestReservationDetailsUnpaid(t *testing.T) {
	r := &models.Reservation{Number: 7, Hours: 3, HourlyRate: 10}
	lines := ReservationDetails(r)
	assert.Contains(t, lines, "Paid: No")
	assert.Contains(t, lines, "Total price: 30,00 €")
}
