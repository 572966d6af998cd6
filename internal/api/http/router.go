package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"buxmate-backend/internal/api/http/middleware"
)

// NewRouter wires all handlers. Invitation token routes stay public: the
// token itself is the recipient's credential. Everything else requires a
// verified session.
func NewRouter(
	authMW *middleware.AuthMiddleware,
	events *EventHandler,
	invitations *InvitationHandler,
	activities *ActivityHandler,
	users *UserHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public invitation endpoints
	api.HandleFunc("/invitations/{token}", invitations.Get).Methods(http.MethodGet)
	api.HandleFunc("/invitations/{token}/respond", invitations.Respond).Methods(http.MethodPost)

	// Health
	api.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Authenticated endpoints
	authed := api.NewRoute().Subrouter()
	authed.Use(authMW.Require)

	authed.HandleFunc("/events", events.Create).Methods(http.MethodPost)
	authed.HandleFunc("/events", events.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/events/slug/{slug}", events.GetBySlug).Methods(http.MethodGet)
	authed.HandleFunc("/events/{id}", events.Get).Methods(http.MethodGet)
	authed.HandleFunc("/events/{id}", events.Update).Methods(http.MethodPut)
	authed.HandleFunc("/events/{id}/guests", events.Guests).Methods(http.MethodGet)
	authed.HandleFunc("/events/{id}/cost-summary", events.CostSummary).Methods(http.MethodGet)
	authed.HandleFunc("/events/{id}/invitations", invitations.Issue).Methods(http.MethodPost)

	authed.HandleFunc("/events/{id}/activities", activities.Create).Methods(http.MethodPost)
	authed.HandleFunc("/events/{id}/activities", activities.List).Methods(http.MethodGet)
	authed.HandleFunc("/activities/{activityID}", activities.Update).Methods(http.MethodPut)
	authed.HandleFunc("/activities/{activityID}", activities.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/activities/{activityID}/assignments", activities.Assign).Methods(http.MethodPost)
	authed.HandleFunc("/activities/{activityID}/assignments/{invitationID}", activities.Unassign).Methods(http.MethodDelete)

	authed.HandleFunc("/me", users.Me).Methods(http.MethodGet)
	authed.HandleFunc("/me", users.UpdateMe).Methods(http.MethodPut)
	authed.HandleFunc("/me/phone/request-code", users.RequestPhoneCode).Methods(http.MethodPost)
	authed.HandleFunc("/me/phone/verify", users.VerifyPhone).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", users.Notifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", users.MarkNotificationRead).Methods(http.MethodPost)

	return r
}
