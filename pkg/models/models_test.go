package models

import (
	"testing"
	"time"
)

func TestReservationTotalPrice(t *testing.T) {
	r := Reservation{Hours: 2, HourlyRate: 19.95}
	if got := r.TotalPrice(); got != 39.9 {
		t.Errorf("TotalPrice() = %v, want 39.9", got)
	}
}

func TestPhaseWhAdd(t *testing.T) {
	p := PhaseWh{V1: 1, V2: 2, V3: 3}
	p.Add(PhaseWh{V1: 10, V2: 20, V3: 30})
	if p != (PhaseWh{V1: 11, V2: 22, V3: 33}) {
		t.Errorf("Add result = %+v", p)
	}
}

func TestPhaseWhKWh(t *testing.T) {
	p := PhaseWh{V1: 1500, V2: 250, V3: 0}
	v1, v2, v3 := p.KWh()
	if v1 != 1.5 || v2 != 0.25 || v3 != 0 {
		t.Errorf("KWh() = %v, %v, %v", v1, v2, v3)
	}
}

func TestMeasurementDay(t *testing.T) {
	ts := time.Date(2025, 10, 13, 23, 59, 0, 0, time.UTC)
	m := Measurement{Timestamp: ts}
	want := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	if got := m.Day(); !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}
