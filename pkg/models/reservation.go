package models

import "time"

// Reservation represents one booking row from a |-delimited reservation file.
// Field order in the file is fixed and positional.
type Reservation struct {
	Number     int       `json:"number"`
	Booker     string    `json:"booker"`
	Date       time.Time `json:"date"`       // Just the date
	StartTime  time.Time `json:"start_time"` // Clock time on a zero date
	Hours      int       `json:"hours"`
	HourlyRate float64   `json:"hourly_rate"` // Euros per hour
	Paid       bool      `json:"paid"`
	Venue      string    `json:"venue"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
}

// TotalPrice returns the reservation cost in euros.
func (r *Reservation) TotalPrice() float64 {
	return float64(r.Hours) * r.HourlyRate
}
