package handler

import (
	"time"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/service"
)

// AccountDTO is the JSON representation of an account. The password hash
// is deliberately absent.
type AccountDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinDate string `json:"joinDate"`
}

func toAccountDTO(a *domain.Account) AccountDTO {
	return AccountDTO{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Role:     string(a.Role),
		Status:   string(a.Status),
		JoinDate: a.JoinedAt.Format(time.RFC3339),
	}
}

func toAccountDTOs(accounts []domain.Account) []AccountDTO {
	dtos := make([]AccountDTO, len(accounts))
	for i := range accounts {
		dtos[i] = toAccountDTO(&accounts[i])
	}
	return dtos
}

// AnalyticsRecordDTO is the JSON representation of an analytics record.
type AnalyticsRecordDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ActiveUsers int64   `json:"activeUsers"`
	NewSignups  int64   `json:"newSignups"`
	Sales       int64   `json:"sales"`
	Revenue     float64 `json:"revenue"`
}

func toAnalyticsRecordDTO(rec *domain.AnalyticsRecord) AnalyticsRecordDTO {
	return AnalyticsRecordDTO{
		ID:          rec.ID,
		Date:        rec.Date.Format(time.RFC3339),
		ActiveUsers: rec.ActiveUsers,
		NewSignups:  rec.NewSignups,
		Sales:       rec.Sales,
		Revenue:     rec.Revenue,
	}
}

// MetricsDTO is the JSON representation of the dashboard summary.
type MetricsDTO struct {
	TotalUsers   int64   `json:"totalUsers"`
	ActiveUsers  int64   `json:"activeUsers"`
	NewSignups   int64   `json:"newSignups"`
	TotalSales   int64   `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
	GrowthRate   float64 `json:"growthRate"`
}

func toMetricsDTO(m *service.Metrics) MetricsDTO {
	return MetricsDTO{
		TotalUsers:   m.TotalUsers,
		ActiveUsers:  m.ActiveUsers,
		NewSignups:   m.NewSignups,
		TotalSales:   m.TotalSales,
		TotalRevenue: m.TotalRevenue,
		GrowthRate:   m.GrowthRate,
	}
}

// ChartPointDTO is one row of the chart series. The field names match what
// the dashboard charts bind to.
type ChartPointDTO struct {
	Date    string  `json:"date"`
	Sales   int64   `json:"sales"`
	Users   int64   `json:"users"`
	Revenue float64 `json:"revenue"`
}

func toChartPointDTOs(points []service.ChartPoint) []ChartPointDTO {
	dtos := make([]ChartPointDTO, len(points))
	for i, p := range points {
		dtos[i] = ChartPointDTO{
			Date:    p.Period,
			Sales:   p.Sales,
			Users:   p.ActiveUsers,
			Revenue: p.Revenue,
		}
	}
	return dtos
}
