// Package events implements the event CRUD resource consumed by the mobile
// client. All routes require bearer authentication; events are visible only
// to the user that created them.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spectrumsync/backend/internal/middleware"
	"github.com/spectrumsync/backend/internal/models"
)

// ErrEventNotFound is returned by Store lookups that match nothing owned by
// the requesting user.
var ErrEventNotFound = errors.New("event not found")

// Store defines the interface for event persistence.
type Store interface {
	Insert(ctx context.Context, event *models.Event) error
	ListByUser(ctx context.Context, userID string) ([]models.Event, error)
	GetOwned(ctx context.Context, id, userID string) (*models.Event, error)
	DeleteOwned(ctx context.Context, id, userID string) error
}

// Handler holds the event HTTP handlers.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create handles POST /api/events.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Location) == "" {
		writeError(w, http.StatusBadRequest, "title, date, and location are required")
		return
	}

	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Date:        strings.TrimSpace(req.Date),
		Location:    strings.TrimSpace(req.Location),
		UserID:      middleware.UserID(r.Context()),
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.Insert(r.Context(), event); err != nil {
		log.Printf("events: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// List handles GET /api/events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	evs, err := h.store.ListByUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		log.Printf("events: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, evs)
}

// Get handles GET /api/events/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.store.GetOwned(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if errors.Is(err, ErrEventNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		log.Printf("events: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /api/events/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteOwned(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if errors.Is(err, ErrEventNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		log.Printf("events: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "event deleted"})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
