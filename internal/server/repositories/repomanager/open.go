package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// sqliteParams turn on foreign keys, wait on locks instead of failing with
// SQLITE_BUSY, and store timestamps in a sortable layout.
const sqliteParams = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// SQLiteDSN appends the driver parameters the repositories rely on.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

// Open connects to the database named by dsn, applies migrations and returns
// the matching RepositoryManager. The caller owns the returned *sql.DB.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		driver string
		source string
		m      RepositoryManager
	)

	if IsPostgresDSN(dsn) {
		driver, source, m = "pgx", dsn, NewPostgresRepositoryManager()
	} else {
		driver, source, m = "sqlite", SQLiteDSN(dsn), NewSQLiteRepositoryManager()
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migrate: %w", err)
	}

	return db, m, nil
}
