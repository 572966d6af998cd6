package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"buxmate-backend/internal/api/http/middleware"
	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/service"
)

type EventHandler struct {
	events     service.EventService
	roster     service.RosterService
	activities service.ActivityService
}

func NewEventHandler(events service.EventService, roster service.RosterService, activities service.ActivityService) *EventHandler {
	return &EventHandler{events: events, roster: roster, activities: activities}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return int32(id), nil
}

type eventRequest struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timezone    string    `json:"timezone"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Date:        req.Date,
		Timezone:    req.Timezone,
	}
	if err := h.events.CreateEvent(r.Context(), user.ID, event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	event, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetEventBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event := &domain.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Timezone:    req.Timezone,
	}
	if err := h.events.UpdateEvent(r.Context(), user.ID, event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	events, err := h.events.ListMyEvents(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// Guests handles GET /events/{id}/guests: the host-facing roster.
func (h *EventHandler) Guests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.roster.Project(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *EventHandler) CostSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.activities.CostSummary(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
