package handler

import (
	"log/slog"
	"net/http"

	"github.com/tbeckert/admindash/internal/service"
)

// AnalyticsHandler handles analytics HTTP requests.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// HandleMetrics returns the dashboard summary metrics.
// GET /api/analytics/metrics
func (h *AnalyticsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.analytics.Metrics(r.Context())
	if err != nil {
		slog.Error("compute metrics", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetricsDTO(metrics))
}

// HandleCharts returns the chart series.
// GET /api/analytics/charts
func (h *AnalyticsHandler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	points, err := h.analytics.ChartSeries(r.Context())
	if err != nil {
		slog.Error("compute chart series", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChartPointDTOs(points))
}

// HandleCreate stores one analytics snapshot.
// POST /api/analytics (admin only)
// Request: {"activeUsers":0,"newSignups":0,"sales":0,"revenue":0}
func (h *AnalyticsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveUsers int64   `json:"activeUsers"`
		NewSignups  int64   `json:"newSignups"`
		Sales       int64   `json:"sales"`
		Revenue     float64 `json:"revenue"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.analytics.RecordSample(r.Context(), req.ActiveUsers, req.NewSignups, req.Sales, req.Revenue)
	if err != nil {
		slog.Error("record analytics sample", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnalyticsRecordDTO(record))
}
