package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/spectrumsync/backend/internal/middleware"
	"github.com/spectrumsync/backend/internal/models"
)

// Handler holds the auth HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	res, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.AuthResponse{Token: res.Token, User: res.User})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.AuthResponse{Token: res.Token, User: res.User})
}

// Me handles GET /api/auth/me. It is the one route that re-checks the token
// subject against the store, so a deleted account stops resolving.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context(), middleware.UserID(r.Context()))
	if errors.Is(err, ErrUserNotFound) {
		writeError(w, http.StatusNotFound, CodeInvalidCredentials, "user not found")
		return
	}
	if err != nil {
		log.Printf("auth: %v", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// writeAuthError maps service errors to status codes and safe messages.
// Anything unrecognized is logged server-side and reported as a generic 500.
func writeAuthError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, CodeValidation, verr.Reason)
	case errors.Is(err, ErrDuplicateAccount):
		writeError(w, http.StatusBadRequest, CodeDuplicateAccount, ErrDuplicateAccount.Error())
	case errors.Is(err, ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, CodeInvalidCredentials, ErrInvalidCredentials.Error())
	default:
		log.Printf("auth: %v", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
