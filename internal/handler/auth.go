package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a registration request.
// POST /api/auth/register
// Request:  {"name":"...","email":"...","password":"...","role":"..."}
// Response: 201 {"message":"...","userId":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("register account", "error", err)
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
		"userId":  account.ID,
	})
}

// HandleLogin processes a login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"token":"...","user":{...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, account, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		slog.Error("login", "error", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]string{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
			"role":  string(account.Role),
		},
	})
}
