package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/service"
)

// UserHandler handles account management HTTP requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList returns all accounts.
// GET /api/users (admin only)
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list accounts", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountDTOs(accounts))
}

// HandleGet returns a single account.
// GET /api/users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	account, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("get account", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountDTO(account))
}

// HandleUpdate applies a partial update to an account.
// PUT /api/users/{id} (admin only)
// Request: {"name":"...","email":"...","role":"...","status":"..."} — all optional
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Role   *string `json:"role"`
		Status *string `json:"status"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := service.UpdateParams{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		params.Role = &role
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		params.Status = &status
	}

	account, err := h.users.Update(r.Context(), r.PathValue("id"), params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("update account", "error", err)
			writeServerError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, toAccountDTO(account))
}

// HandleDelete removes an account.
// DELETE /api/users/{id} (admin only)
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("delete account", "error", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
