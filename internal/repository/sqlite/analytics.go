package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tbeckert/admindash/internal/domain"
)

// AnalyticsRepository implements domain.AnalyticsRepository using SQLite.
type AnalyticsRepository struct {
	db *sql.DB
}

// Create inserts a new analytics record. The ID is store-assigned and the
// date defaults to the current time; seeding supplies explicit dates.
func (r *AnalyticsRepository) Create(ctx context.Context, record *domain.AnalyticsRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO analytics_records (id, date, active_users, new_signups, sales, revenue)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Date, record.ActiveUsers, record.NewSignups,
		record.Sales, record.Revenue,
	)
	if err != nil {
		return fmt.Errorf("insert analytics record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records ordered by date descending.
func (r *AnalyticsRepository) ListRecent(ctx context.Context, limit int) ([]domain.AnalyticsRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, active_users, new_signups, sales, revenue
		 FROM analytics_records ORDER BY date DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analytics records: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalyticsRecord
	for rows.Next() {
		var rec domain.AnalyticsRecord
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.ActiveUsers, &rec.NewSignups,
			&rec.Sales, &rec.Revenue,
		); err != nil {
			return nil, fmt.Errorf("scan analytics record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
