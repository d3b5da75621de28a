package events

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrumsync/backend/internal/middleware"
	"github.com/spectrumsync/backend/internal/models"
)

// fakeStore keeps events in a slice; scoping behaves like the Mongo store.
type fakeStore struct {
	events []models.Event
	err    error
}

func (f *fakeStore) Insert(ctx context.Context, event *models.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeStore) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Event{}
	for _, ev := range f.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeStore) GetOwned(ctx context.Context, id, userID string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, ev := range f.events {
		if ev.ID == id && ev.UserID == userID {
			cp := ev
			return &cp, nil
		}
	}
	return nil, ErrEventNotFound
}

func (f *fakeStore) DeleteOwned(ctx context.Context, id, userID string) error {
	if f.err != nil {
		return f.err
	}
	for i, ev := range f.events {
		if ev.ID == id && ev.UserID == userID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

func newTestRouter(store Store) http.Handler {
	h := NewHandler(store)
	r := chi.NewRouter()
	r.Post("/api/events", h.Create)
	r.Get("/api/events", h.List)
	r.Get("/api/events/{id}", h.Get)
	r.Delete("/api/events/{id}", h.Delete)
	return r
}

func doAs(t *testing.T, router http.Handler, userID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListEvents(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	rec := doAs(t, router, "user-1", http.MethodPost, "/api/events", models.CreateEventRequest{
		Title: "Dentist", Date: "2026-09-01", Location: "Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)

	rec = doAs(t, router, "user-1", http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCreateEventValidation(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	rec := doAs(t, router, "user-1", http.MethodPost, "/api/events", models.CreateEventRequest{
		Title: "Dentist",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventsAreScopedToOwner(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	rec := doAs(t, router, "user-1", http.MethodPost, "/api/events", models.CreateEventRequest{
		Title: "Dentist", Date: "2026-09-01", Location: "Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Another user sees an empty list and 404s on direct access.
	rec = doAs(t, router, "user-2", http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doAs(t, router, "user-2", http.MethodGet, "/api/events/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doAs(t, router, "user-2", http.MethodDelete, "/api/events/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The owner can still fetch and delete it.
	rec = doAs(t, router, "user-1", http.MethodGet, "/api/events/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doAs(t, router, "user-1", http.MethodDelete, "/api/events/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.events)
}

func TestEventStoreErrorIsNotLeaked(t *testing.T) {
	router := newTestRouter(&fakeStore{err: assert.AnError})

	rec := doAs(t, router, "user-1", http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
