package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlehtonen/kwhreport/pkg/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func total(date, source string, cons, prod models.PhaseWh) models.DailyTotal {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.DailyTotal{Date: d, Consumption: cons, Production: prod, Source: source}
}

func TestInsertAndListDaily(t *testing.T) {
	db := testDB(t)

	rows := []models.DailyTotal{
		total("2025-10-14", "week42.csv", models.PhaseWh{V1: 200, V2: 210, V3: 220}, models.PhaseWh{V1: 20, V2: 21, V3: 22}),
		total("2025-10-13", "week42.csv", models.PhaseWh{V1: 100, V2: 110, V3: 120}, models.PhaseWh{V1: 10, V2: 11, V3: 12}),
	}
	for i := range rows {
		require.NoError(t, db.InsertDaily(&rows[i]))
	}

	got, err := db.ListDaily("")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by date regardless of insert order
	assert.Equal(t, "2025-10-13", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-10-14", got[1].Date.Format("2006-01-02"))
	assert.Equal(t, models.PhaseWh{V1: 100, V2: 110, V3: 120}, got[0].Consumption)
	assert.Equal(t, models.PhaseWh{V1: 20, V2: 21, V3: 22}, got[1].Production)
	assert.Equal(t, "week42.csv", got[0].Source)
}

func TestInsertDailyIgnoresDuplicates(t *testing.T) {
	db := testDB(t)

	first := total("2025-10-13", "week42.csv", models.PhaseWh{V1: 100}, models.PhaseWh{})
	require.NoError(t, db.InsertDaily(&first))

	// Same date and source with different numbers must not replace the row
	dup := total("2025-10-13", "week42.csv", models.PhaseWh{V1: 999}, models.PhaseWh{})
	require.NoError(t, db.InsertDaily(&dup))

	got, err := db.ListDaily("week42.csv")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].Consumption.V1)
}

func TestListDailyFiltersBySource(t *testing.T) {
	db := testDB(t)

	a := total("2025-10-06", "week41.csv", models.PhaseWh{V1: 1}, models.PhaseWh{})
	b := total("2025-10-13", "week42.csv", models.PhaseWh{V1: 2}, models.PhaseWh{})
	require.NoError(t, db.InsertDaily(&a))
	require.NoError(t, db.InsertDaily(&b))

	got, err := db.ListDaily("week41.csv")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "week41.csv", got[0].Source)

	sources, err := db.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{"week41.csv", "week42.csv"}, sources)
}

func TestHasData(t *testing.T) {
	db := testDB(t)

	day := total("2025-10-13", "week42.csv", models.PhaseWh{V1: 1}, models.PhaseWh{})
	require.NoError(t, db.InsertDaily(&day))

	ok, err := db.HasData(day.Date, "week42.csv")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.HasData(day.Date, "week41.csv")
	require.NoError(t, err)
	assert.False(t, ok)
}
