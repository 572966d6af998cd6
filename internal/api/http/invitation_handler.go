package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"buxmate-backend/internal/api/http/middleware"
	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/service"
)

type InvitationHandler struct {
	invitations service.InvitationService
}

func NewInvitationHandler(invitations service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

type issueInvitationRequest struct {
	GuestName   string `json:"guest_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ExpiryDays  *int   `json:"expiry_days,omitempty"`
}

// Issue handles POST /events/{id}/invitations (host only).
func (h *InvitationHandler) Issue(w http.ResponseWriter, r *http.Request) {
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

	var req issueInvitationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	inv, err := h.invitations.Issue(r.Context(), user.ID, eventID, service.IssueInvitationInput{
		GuestName:   req.GuestName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ExpiryDays:  req.ExpiryDays,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

type invitationView struct {
	Invitation *domain.Invitation   `json:"invitation"`
	Event      *domain.EventSummary `json:"event"`
}

// Get handles GET /invitations/{token}. Public: the token is the credential.
func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	inv, event, err := h.invitations.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "invitation not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invitationView{Invitation: inv, Event: event})
}

type respondRequest struct {
	Response string `json:"response"`
}

// Respond handles POST /invitations/{token}/respond. Public.
func (h *InvitationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req respondRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	inv, err := h.invitations.Respond(r.Context(), token, domain.InvitationStatus(req.Response))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "invitation not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}
