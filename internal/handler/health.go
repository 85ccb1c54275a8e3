package handler

import "net/http"

// HandleHealth reports that the server is up.
// GET /api/health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}
