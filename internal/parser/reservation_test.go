package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureLine = "123|Anna Virtanen|2025-10-31|10:00|2|19.95|True|Meeting Room A|0401234567|anna.virtanen@example.com"

func TestParseReservation(t *testing.T) {
	r, err := ParseReservation(fixtureLine)
	require.NoError(t, err)

	assert.Equal(t, 123, r.Number)
	assert.Equal(t, "Anna Virtanen", r.Booker)
	assert.Equal(t, "2025-10-31", r.Date.Format("2006-01-02"))
	assert.Equal(t, "10:00", r.StartTime.Format("15:04"))
	assert.Equal(t, 2, r.Hours)
	assert.Equal(t, 19.95, r.HourlyRate)
	assert.True(t, r.Paid)
	assert.Equal(t, "Meeting Room A", r.Venue)
	assert.Equal(t, "0401234567", r.Phone)
	assert.Equal(t, "anna.virtanen@example.com", r.Email)
	assert.InDelta(t, 39.90, r.TotalPrice(), 1e-9)
}

func TestParseReservationUnpaid(t *testing.T) {
	r, err := ParseReservation("5|Matti Meikäläinen|2025-11-01|08:30|1|12.50|False|Sauna|0405556677|matti@example.com")
	require.NoError(t, err)
	assert.False(t, r.Paid)
}

func TestParseReservationErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "123|Anna|2025-10-31"},
		{"bad number", "abc|Anna|2025-10-31|10:00|2|19.95|True|A|1|a@b"},
		{"bad date", "123|Anna|31.10.2025|10:00|2|19.95|True|A|1|a@b"},
		{"bad time", "123|Anna|2025-10-31|25:99|2|19.95|True|A|1|a@b"},
		{"bad hours", "123|Anna|2025-10-31|10:00|two|19.95|True|A|1|a@b"},
		{"bad rate", "123|Anna|2025-10-31|10:00|2|cheap|True|A|1|a@b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReservation(tt.line)
			assert.Error(t, err)
		})
	}
}

func TestReadReservations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reservations.txt")
	data := fixtureLine + "\n\n124|Pekka Korhonen|2025-11-02|14:00|3|15.00|False|Meeting Room B|0409876543|pekka@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	reservations, err := ReadReservations(path)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, 123, reservations[0].Number)
	assert.Equal(t, 124, reservations[1].Number)
}

func TestReadReservationsMissingFile(t *testing.T) {
	_, err := ReadReservations(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
