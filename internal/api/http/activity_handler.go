package http

import (
	"net/http"
	"time"

	"buxmate-backend/internal/api/http/middleware"
	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/service"
)

type ActivityHandler struct {
	activities service.ActivityService
}

func NewActivityHandler(activities service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

type activityRequest struct {
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	CostCents       int32     `json:"cost_cents"`
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	eventID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req activityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity := &domain.Activity{
		EventID:         eventID,
		Title:           req.Title,
		Location:        req.Location,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		CostCents:       req.CostCents,
	}
	if err := h.activities.AddActivity(r.Context(), user.ID, activity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, err := pathID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req activityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity := &domain.Activity{
		ID:              activityID,
		Title:           req.Title,
		Location:        req.Location,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		CostCents:       req.CostCents,
	}
	if err := h.activities.UpdateActivity(r.Context(), user.ID, activity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, err := pathID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.activities.DeleteActivity(r.Context(), user.ID, activityID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	activities, err := h.activities.ListActivities(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

type assignmentRequest struct {
	InvitationID int32 `json:"invitation_id"`
}

func (h *ActivityHandler) Assign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, err := pathID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req assignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.activities.AssignGuest(r.Context(), user.ID, activityID, req.InvitationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ActivityHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, err := pathID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}
	invitationID, err := pathID(r, "invitationID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.activities.UnassignGuest(r.Context(), user.ID, activityID, invitationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
