package models

import "time"

// PhaseWh holds watt-hour values for the three electrical phase channels.
type PhaseWh struct {
	V1 int64 `json:"v1"`
	V2 int64 `json:"v2"`
	V3 int64 `json:"v3"`
}

// Add accumulates another reading into the totals.
func (p *PhaseWh) Add(o PhaseWh) {
	p.V1 += o.V1
	p.V2 += o.V2
	p.V3 += o.V3
}

// KWh returns the three channels converted to kilowatt-hours.
func (p PhaseWh) KWh() (v1, v2, v3 float64) {
	return float64(p.V1) / 1000, float64(p.V2) / 1000, float64(p.V3) / 1000
}

// HourlyReading is one hour of per-phase consumption and production in Wh.
type HourlyReading struct {
	Timestamp   time.Time `json:"timestamp"`
	Consumption PhaseWh   `json:"consumption"`
	Production  PhaseWh   `json:"production"`
}

// DailyTotal is the per-phase sum of one calendar day's hourly readings.
type DailyTotal struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"` // Midnight, date key only
	Consumption PhaseWh   `json:"consumption"`
	Production  PhaseWh   `json:"production"`
	Source      string    `json:"source"` // Originating data file
}

// Measurement is one hour of the simplified yearly dataset: single
// consumption/production values in kWh plus the outdoor temperature.
type Measurement struct {
	Timestamp      time.Time `json:"timestamp"`
	ConsumptionKWh float64   `json:"consumption_kwh"`
	ProductionKWh  float64   `json:"production_kwh"`
	TemperatureC   float64   `json:"temperature_c"`
}

// Day returns the measurement's calendar date at midnight.
func (m Measurement) Day() time.Time {
	y, mo, d := m.Timestamp.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, m.Timestamp.Location())
}
