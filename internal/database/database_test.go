package database

import (
	"testing"

	"trivia-api/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverName(t *testing.T) {
	name, err := DriverName(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "pgx", name)

	name, err = DriverName(config.DriverOracle)
	require.NoError(t, err)
	assert.Equal(t, "oracle", name)

	_, err = DriverName(config.DriverMemory)
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	pg := sqlx.NewDb(mockDB, "pgx")
	assert.Equal(t, Postgres, DialectOf(pg))
	assert.Equal(t, "RANDOM()", DialectOf(pg).RandomOrder())
	assert.Equal(t, "SELECT id FROM questions WHERE id = $1", pg.Rebind("SELECT id FROM questions WHERE id = ?"))

	ora := sqlx.NewDb(mockDB, "oracle")
	assert.Equal(t, Oracle, DialectOf(ora))
	assert.Equal(t, "DBMS_RANDOM.VALUE", DialectOf(ora).RandomOrder())
	assert.Equal(t, "SELECT id FROM questions WHERE id = :arg1", ora.Rebind("SELECT id FROM questions WHERE id = ?"))
}
