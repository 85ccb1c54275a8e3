package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tbeckert/admindash/internal/domain"
)

const (
	// signupWindow is the trailing period counted as "new" signups.
	signupWindow = 30 * 24 * time.Hour
	// metricsRecordLimit is how many recent records feed the sales and
	// revenue totals.
	metricsRecordLimit = 30
	// chartRecordLimit is how many recent records feed the chart series.
	chartRecordLimit = 6
)

// Metrics is the derived dashboard summary.
type Metrics struct {
	TotalUsers   int64
	ActiveUsers  int64
	NewSignups   int64
	TotalSales   int64
	TotalRevenue float64
	GrowthRate   float64
}

// ChartPoint is one row of the dashboard chart series.
type ChartPoint struct {
	Period      string
	Sales       int64
	ActiveUsers int64
	Revenue     float64
}

// AnalyticsService computes read-only derived views over stored accounts
// and analytics records.
type AnalyticsService struct {
	accounts domain.AccountRepository
	records  domain.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(accounts domain.AccountRepository, records domain.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{accounts: accounts, records: records}
}

// Metrics computes the dashboard summary. The underlying reads are not
// transactional; the result is a point-in-time approximation.
func (s *AnalyticsService) Metrics(ctx context.Context) (*Metrics, error) {
	totalUsers, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}

	activeUsers, err := s.accounts.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("count active accounts: %w", err)
	}

	newSignups, err := s.accounts.CountJoinedSince(ctx, time.Now().UTC().Add(-signupWindow))
	if err != nil {
		return nil, fmt.Errorf("count new signups: %w", err)
	}

	recent, err := s.records.ListRecent(ctx, metricsRecordLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent records: %w", err)
	}

	var totalSales int64
	var totalRevenue float64
	for _, rec := range recent {
		totalSales += rec.Sales
		totalRevenue += rec.Revenue
	}

	var growthRate float64
	if totalUsers > 0 {
		growthRate = math.Round(float64(newSignups)/float64(totalUsers)*1000) / 10
	}

	return &Metrics{
		TotalUsers:   totalUsers,
		ActiveUsers:  activeUsers,
		NewSignups:   newSignups,
		TotalSales:   totalSales,
		TotalRevenue: totalRevenue,
		GrowthRate:   growthRate,
	}, nil
}

// ChartSeries returns up to six chart points in chronological order, one
// per recent analytics record. The period label is the record's short
// month name.
func (s *AnalyticsService) ChartSeries(ctx context.Context) ([]ChartPoint, error) {
	recent, err := s.records.ListRecent(ctx, chartRecordLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent records: %w", err)
	}

	// Records arrive newest first; present them oldest first.
	points := make([]ChartPoint, len(recent))
	for i, rec := range recent {
		points[len(recent)-1-i] = ChartPoint{
			Period:      rec.Date.Format("Jan"),
			Sales:       rec.Sales,
			ActiveUsers: rec.ActiveUsers,
			Revenue:     rec.Revenue,
		}
	}
	return points, nil
}

// RecordSample stores one analytics snapshot with a server-assigned
// timestamp. Value ranges are not validated.
func (s *AnalyticsService) RecordSample(ctx context.Context, activeUsers, newSignups, sales int64, revenue float64) (*domain.AnalyticsRecord, error) {
	record := &domain.AnalyticsRecord{
		ActiveUsers: activeUsers,
		NewSignups:  newSignups,
		Sales:       sales,
		Revenue:     revenue,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return record, nil
}
