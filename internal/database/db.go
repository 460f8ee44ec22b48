package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jlehtonen/kwhreport/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_energy (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		cons_v1 INTEGER NOT NULL,
		cons_v2 INTEGER NOT NULL,
		cons_v3 INTEGER NOT NULL,
		prod_v1 INTEGER NOT NULL,
		prod_v2 INTEGER NOT NULL,
		prod_v3 INTEGER NOT NULL,
		source TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(date, source)
	);
	CREATE INDEX IF NOT EXISTS idx_daily_energy_date ON daily_energy(date);
	CREATE INDEX IF NOT EXISTS idx_daily_energy_source ON daily_energy(source);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertDaily inserts a daily total, ignoring duplicate (date, source) rows
func (db *DB) InsertDaily(total *models.DailyTotal) error {
	query := `
	INSERT OR IGNORE INTO daily_energy
		(date, cons_v1, cons_v2, cons_v3, prod_v1, prod_v2, prod_v3, source, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	dateStr := total.Date.Format("2006-01-02")
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := db.conn.Exec(query, dateStr,
		total.Consumption.V1, total.Consumption.V2, total.Consumption.V3,
		total.Production.V1, total.Production.V2, total.Production.V3,
		total.Source, createdAt)
	if err != nil {
		return fmt.Errorf("inserting daily total: %w", err)
	}

	return nil
}

// ListDaily retrieves stored daily totals ordered by date. An empty source
// returns every row.
func (db *DB) ListDaily(source string) ([]models.DailyTotal, error) {
	query := `
	SELECT id, date, cons_v1, cons_v2, cons_v3, prod_v1, prod_v2, prod_v3, source
	FROM daily_energy
	`
	args := []any{}
	if source != "" {
		query += ` WHERE source = ?`
		args = append(args, source)
	}
	query += ` ORDER BY date`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying daily totals: %w", err)
	}
	defer rows.Close()

	var results []models.DailyTotal
	for rows.Next() {
		var total models.DailyTotal
		var dateStr string

		if err := rows.Scan(&total.ID, &dateStr,
			&total.Consumption.V1, &total.Consumption.V2, &total.Consumption.V3,
			&total.Production.V1, &total.Production.V2, &total.Production.V3,
			&total.Source); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date: %w", err)
		}
		total.Date = date

		results = append(results, total)
	}

	return results, rows.Err()
}

// Sources lists the distinct source files present in the store
func (db *DB) Sources() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT source FROM daily_energy ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// HasData checks if a daily total exists for a given date and source
func (db *DB) HasData(date time.Time, source string) (bool, error) {
	var count int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM daily_energy WHERE date = ? AND source = ?`,
		date.Format("2006-01-02"), source,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying daily total: %w", err)
	}
	return count > 0, nil
}
