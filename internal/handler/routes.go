package handler

import (
	"net/http"

	"github.com/tbeckert/admindash/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, users *service.UserService, analytics *service.AnalyticsService, seeder *service.SeedService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)
	analyticsHandler := NewAnalyticsHandler(analytics)
	seedHandler := NewSeedHandler(seeder)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	mux.Handle("GET /api/users", RequireAuth(auth, RequireAdmin(auth, http.HandlerFunc(userHandler.HandleList))))
	mux.Handle("GET /api/users/{id}", RequireAuth(auth, http.HandlerFunc(userHandler.HandleGet)))
	mux.Handle("PUT /api/users/{id}", RequireAuth(auth, RequireAdmin(auth, http.HandlerFunc(userHandler.HandleUpdate))))
	mux.Handle("DELETE /api/users/{id}", RequireAuth(auth, RequireAdmin(auth, http.HandlerFunc(userHandler.HandleDelete))))

	mux.Handle("GET /api/analytics/metrics", RequireAuth(auth, http.HandlerFunc(analyticsHandler.HandleMetrics)))
	mux.Handle("GET /api/analytics/charts", RequireAuth(auth, http.HandlerFunc(analyticsHandler.HandleCharts)))
	mux.Handle("POST /api/analytics", RequireAuth(auth, RequireAdmin(auth, http.HandlerFunc(analyticsHandler.HandleCreate))))

	mux.HandleFunc("GET /api/seed", seedHandler.HandleSeed)
	mux.HandleFunc("POST /api/seed", seedHandler.HandleSeed)

	mux.HandleFunc("GET /api/health", HandleHealth)
}
