package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

// reservationFields is the fixed positional column count of a reservation line.
const reservationFields = 10

// ParseReservation parses one |-delimited reservation line. Columns are
// positional: number, booker, date, start time, hours, hourly rate, paid,
// venue, phone, email.
func ParseReservation(line string) (*models.Reservation, error) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < reservationFields {
		return nil, fmt.Errorf("expected %d fields, got %d", reservationFields, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	number, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parsing reservation number %q: %w", parts[0], err)
	}

	date, err := time.Parse("2006-01-02", parts[2])
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", parts[2], err)
	}

	start, err := time.Parse("15:04", parts[3])
	if err != nil {
		return nil, fmt.Errorf("parsing start time %q: %w", parts[3], err)
	}

	hours, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("parsing hours %q: %w", parts[4], err)
	}

	rate, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing hourly rate %q: %w", parts[5], err)
	}

	return &models.Reservation{
		Number:     number,
		Booker:     parts[1],
		Date:       date,
		StartTime:  start,
		Hours:      hours,
		HourlyRate: rate,
		Paid:       parts[6] == "True",
		Venue:      parts[7],
		Phone:      parts[8],
		Email:      parts[9],
	}, nil
}

// ReadReservations parses every non-empty line of a reservation file.
func ReadReservations(path string) ([]models.Reservation, error) {
	data, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	for i, line := range data {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseReservation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		reservations = append(reservations, *r)
	}
	return reservations, nil
}
