package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var (
	_ domain.Database            = (*DB)(nil)
	_ domain.AccountRepository   = (*AccountRepository)(nil)
	_ domain.AnalyticsRepository = (*AnalyticsRepository)(nil)
)

// DB wraps a SQLite database and exposes the repositories backed by it.
type DB struct {
	sqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sqlDB)
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sqlDB.Close()
}

// Accounts returns the account repository.
func (d *DB) Accounts() *AccountRepository {
	return &AccountRepository{db: d.sqlDB}
}

// Analytics returns the analytics record repository.
func (d *DB) Analytics() *AnalyticsRepository {
	return &AnalyticsRepository{db: d.sqlDB}
}
