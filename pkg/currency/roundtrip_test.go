package currency_test

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/SscSPs/pricebook_svc/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// The adapter never parses decimal text, so fixed-point inputs have to reach
// it the way they reach it in production: through the engine's own CAST to a
// float column value. These tests drive a real SQL engine (in-memory SQLite)
// to exercise exactly that boundary.

// openEngine returns a handle on the test engine. An in-memory database
// lives and dies with its connection, so the pool is pinned to one.
func openEngine(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("SQLITE_URL")
	if url == "" {
		url = ":memory:"
	}
	db, err := sql.Open("sqlite", url)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())
	return db
}

// decimalCasts pairs DECIMAL(precision, scale) inputs with the canonical
// default-scale rendering the decoded Currency must produce.
var decimalCasts = []struct {
	precision uint
	scale     uint
	sent      string
	want      string
}{
	{1, 0, "1", "1.00"},
	{6, 2, "1", "1.00"},
	{6, 2, "9999.99", "9999.99"},
	{35, 6, "3950.123456", "3950.12"},
	{10, 2, "3950.123456", "3950.12"},
	{35, 6, "3950", "3950.00"},
	{4, 0, "3950", "3950.00"},
	{35, 6, "0.1", "0.10"},
	{35, 6, "0.01", "0.01"},
	{35, 6, "0.001", "0.00"},
	{35, 6, "0.0001", "0.00"},
	{35, 6, "0.00001", "0.00"},
	{35, 6, "0.000001", "0.00"},
	{35, 6, "1", "1.00"},
	{35, 6, "-100", "-100.00"},
	{35, 6, "-123.456", "-123.46"},
	{35, 6, "119996.25", "119996.25"},
	{35, 6, "1000000", "1000000.00"},
	{35, 6, "9999999.99999", "10000000.00"},
	{35, 6, "12340.56789", "12340.57"},
}

func TestEngine_ReadDecimalCast(t *testing.T) {
	db := openEngine(t)

	for _, tt := range decimalCasts {
		var c currency.Currency
		query := fmt.Sprintf("SELECT CAST('%s' AS DECIMAL(%d, %d)) AS value", tt.sent, tt.precision, tt.scale)
		require.NoError(t, db.QueryRow(query).Scan(&c), "DECIMAL(%d, %d) sent: %s", tt.precision, tt.scale, tt.sent)
		assert.Equal(t, tt.want, c.String(), "DECIMAL(%d, %d) sent: %s", tt.precision, tt.scale, tt.sent)
	}
}

func TestEngine_WriteDecimalCast(t *testing.T) {
	db := openEngine(t)

	for _, tt := range decimalCasts {
		var c currency.Currency
		query := fmt.Sprintf("SELECT CAST(? AS DECIMAL(%d, %d)) AS value", tt.precision, tt.scale)
		require.NoError(t, db.QueryRow(query, tt.sent).Scan(&c), "DECIMAL(%d, %d) sent: %s", tt.precision, tt.scale, tt.sent)
		assert.Equal(t, tt.want, c.String(), "DECIMAL(%d, %d) sent: %s", tt.precision, tt.scale, tt.sent)
	}
}

func TestEngine_NullDecimal(t *testing.T) {
	db := openEngine(t)

	var n currency.NullCurrency
	require.NoError(t, db.QueryRow("SELECT CAST(NULL AS DECIMAL) AS value").Scan(&n))
	assert.False(t, n.Valid)

	var c currency.Currency
	err := db.QueryRow("SELECT CAST(NULL AS DECIMAL) AS value").Scan(&c)
	assert.Error(t, err, "NULL into a non-nullable Currency is a schema mismatch")
}

func TestEngine_InsertSelectRoundTrip(t *testing.T) {
	db := openEngine(t)

	_, err := db.Exec(`
		CREATE TABLE prices (
			id INTEGER PRIMARY KEY,
			amount DOUBLE NOT NULL,
			discount DOUBLE
		);
	`)
	require.NoError(t, err)

	type row struct {
		id       int64
		amount   currency.Currency
		discount currency.NullCurrency
	}
	inserted := []row{
		{id: 1, amount: currency.NewFloat(0.10)},
		{id: 2, amount: currency.NewFloat(200), discount: currency.NullCurrency{Currency: currency.NewFloat(19.99), Valid: true}},
	}

	for _, r := range inserted {
		_, err := db.Exec("INSERT INTO prices (id, amount, discount) VALUES (?, ?, ?)", r.id, r.amount, r.discount)
		require.NoError(t, err)
	}

	rows, err := db.Query("SELECT id, amount, discount FROM prices ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var selected []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.id, &r.amount, &r.discount))
		selected = append(selected, r)
	}
	require.NoError(t, rows.Err())

	require.Equal(t, inserted, selected, "stored amounts must come back equal, scale included")
}
