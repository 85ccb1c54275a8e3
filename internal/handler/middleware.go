package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext extracts the authenticated caller's claims from the
// request context. Returns nil if the request is unauthenticated.
func ClaimsFromContext(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*service.Claims)
	return claims
}

// RequireAuth protects routes requiring a valid token. It reads the
// Authorization header, validates the bearer token, and injects the claims
// into the request context. The claims are trusted verbatim; the account is
// not re-read from the store.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.ValidateToken(bearerToken(r))
		if err != nil {
			if errors.Is(err, domain.ErrMissingToken) {
				writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			// Invalid, malformed, and expired tokens are all 400 for
			// compatibility with the existing dashboard client.
			writeError(w, http.StatusBadRequest, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates administrative routes. It must run inside RequireAuth.
func RequireAdmin(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if err := auth.Authorize(claims, domain.RoleAdmin); err != nil {
			writeError(w, http.StatusForbidden, "Access denied. Admin only.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when absent.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// CORS allows the separately hosted dashboard SPA to call the API. The
// policy is permissive, matching the rest of the surface.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
