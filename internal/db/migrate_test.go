package db_test

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/kesteai/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, path string) []string {
	t.Helper()
	database, err := db.Open(db.DriverSQLite, path)
	require.NoError(t, err)
	defer database.Close()

	rows, err := database.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'goose%' AND name NOT LIKE 'sqlite%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestOpen_CreatesTimetableSchema(t *testing.T) {
	names := tableNames(t, ":memory:")
	assert.Equal(t, []string{"lessons", "notice", "rooms", "student_groups", "subjects", "teachers"}, names)
}

func TestOpen_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kesteai.db")

	first := tableNames(t, path)
	second := tableNames(t, path)

	assert.Equal(t, first, second)
	assert.FileExists(t, path)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open("mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestBuilder_PlaceholderPerDriver(t *testing.T) {
	q, _, err := db.Builder(db.DriverPostgres).Select("id").From("lessons").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM lessons WHERE id = $1", q)

	q, _, err = db.Builder(db.DriverSQLite).Select("id").From("lessons").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM lessons WHERE id = ?", q)
}
