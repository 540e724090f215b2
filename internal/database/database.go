package database

import (
	"fmt"
	"time"

	"trivia-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registered as "oracle"
)

// Dialect identifies the SQL flavor spoken by a connection.
type Dialect string

const (
	Postgres Dialect = "postgres"
	Oracle   Dialect = "oracle"
)

func init() {
	// go-ora is not known to sqlx; it accepts :name placeholders bound by position.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps a configured db.driver to the database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "pgx", nil
	case config.DriverOracle:
		return "oracle", nil
	default:
		return "", fmt.Errorf("no SQL driver for %q", driver)
	}
}

// DialectOf reports the dialect of an open connection from its driver name.
func DialectOf(db *sqlx.DB) Dialect {
	if db.DriverName() == "oracle" {
		return Oracle
	}
	return Postgres
}

// RandomOrder returns the ORDER BY expression that shuffles rows.
func (d Dialect) RandomOrder() string {
	if d == Oracle {
		return "DBMS_RANDOM.VALUE"
	}
	return "RANDOM()"
}

// NewSQLXDB opens and pings a connection pool for the configured driver.
func NewSQLXDB(cfg *config.Config) (*sqlx.DB, error) {
	driverName, err := DriverName(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DB.Driver, err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}
	return db, nil
}
