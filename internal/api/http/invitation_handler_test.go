package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/service"
)

type mockInvitationService struct {
	mock.Mock
}

func (m *mockInvitationService) Issue(ctx context.Context, hostID, eventID int32, input service.IssueInvitationInput) (*domain.Invitation, error) {
	args := m.Called(ctx, hostID, eventID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *mockInvitationService) GetByToken(ctx context.Context, token string) (*domain.Invitation, *domain.EventSummary, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Invitation), args.Get(1).(*domain.EventSummary), args.Error(2)
}

func (m *mockInvitationService) Respond(ctx context.Context, token string, response domain.InvitationStatus) (*domain.Invitation, error) {
	args := m.Called(ctx, token, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func invitationTestRouter(svc service.InvitationService) *mux.Router {
	handler := NewInvitationHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/invitations/{token}", handler.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/invitations/{token}/respond", handler.Respond).Methods(http.MethodPost)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestInvitationHandler_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(mockInvitationService)
		inv := &domain.Invitation{ID: 1, EventID: 7, InviteToken: "abc123", Status: domain.InvitationStatusPending}
		summary := &domain.EventSummary{ID: 7, Title: "Ski Weekend", Slug: "ski-weekend"}
		svc.On("GetByToken", mock.Anything, "abc123").Return(inv, summary, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invitations/abc123", nil)
		invitationTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
	})

	t.Run("UnknownTokenIs404WithMessage", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("GetByToken", mock.Anything, "abc123").Return(nil, nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invitations/abc123", nil)
		invitationTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "invitation not found", env.Message)
	})
}

func TestInvitationHandler_Respond(t *testing.T) {
	post := func(router *mux.Router, token, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/invitations/"+token+"/respond", bytes.NewBufferString(body))
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Accepted", func(t *testing.T) {
		svc := new(mockInvitationService)
		respondedAt := time.Now()
		inv := &domain.Invitation{ID: 1, EventID: 7, InviteToken: "abc123", Status: domain.InvitationStatusAccepted, RespondedAt: &respondedAt}
		svc.On("Respond", mock.Anything, "abc123", domain.InvitationStatusAccepted).Return(inv, nil)

		rec := post(invitationTestRouter(svc), "abc123", `{"response":"ACCEPTED"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
	})

	t.Run("ExpiredIs410", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("Respond", mock.Anything, "abc123", domain.InvitationStatusAccepted).Return(nil, domain.ErrInvitationExpired)

		rec := post(invitationTestRouter(svc), "abc123", `{"response":"ACCEPTED"}`)

		assert.Equal(t, http.StatusGone, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "invitation has expired", env.Message)
	})

	t.Run("AlreadyRespondedIs409", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("Respond", mock.Anything, "abc123", domain.InvitationStatusDeclined).Return(nil, domain.ErrAlreadyResponded)

		rec := post(invitationTestRouter(svc), "abc123", `{"response":"DECLINED"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InvalidResponseIs400", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("Respond", mock.Anything, "abc123", domain.InvitationStatus("MAYBE")).Return(nil, domain.ErrInvalidResponse)

		rec := post(invitationTestRouter(svc), "abc123", `{"response":"MAYBE"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "response must be ACCEPTED or DECLINED", env.Message)
	})

	t.Run("UnknownTokenIs404", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("Respond", mock.Anything, "missing", domain.InvitationStatusAccepted).Return(nil, domain.ErrNotFound)

		rec := post(invitationTestRouter(svc), "missing", `{"response":"ACCEPTED"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "invitation not found", env.Message)
	})

	t.Run("MalformedBodyIs400", func(t *testing.T) {
		svc := new(mockInvitationService)

		rec := post(invitationTestRouter(svc), "abc123", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StorageFailureIs503", func(t *testing.T) {
		svc := new(mockInvitationService)
		svc.On("Respond", mock.Anything, "abc123", domain.InvitationStatusAccepted).Return(nil, domain.ErrStorage)

		rec := post(invitationTestRouter(svc), "abc123", `{"response":"ACCEPTED"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
