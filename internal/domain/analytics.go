package domain

import (
	"context"
	"time"
)

// AnalyticsRecord is one time-stamped snapshot of aggregate business
// metrics. Records are immutable once stored.
type AnalyticsRecord struct {
	ID          string
	Date        time.Time
	ActiveUsers int64
	NewSignups  int64
	Sales       int64
	Revenue     float64
}

// AnalyticsRepository defines persistence operations for analytics records.
type AnalyticsRepository interface {
	Create(ctx context.Context, record *AnalyticsRecord) error
	// ListRecent returns up to limit records ordered by date descending.
	ListRecent(ctx context.Context, limit int) ([]AnalyticsRecord, error)
}
