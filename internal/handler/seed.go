package handler

import (
	"log/slog"
	"net/http"

	"github.com/tbeckert/admindash/internal/service"
)

// SeedHandler handles the demo-data seeding endpoint.
type SeedHandler struct {
	seeder *service.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seeder *service.SeedService) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// HandleSeed seeds the database with demo data. Registered for both GET and
// POST so it can be triggered from a browser.
// GET|POST /api/seed
func (h *SeedHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	message, err := h.seeder.Seed(r.Context())
	if err != nil {
		slog.Error("seed database", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Seed error",
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
