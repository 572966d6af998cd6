package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"buxmate-backend/internal/domain"
)

// MockInvitationRepo
type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvitationRepo) GetByID(ctx context.Context, id int32) (*domain.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) UpdateStatusIfPending(ctx context.Context, id int32, status domain.InvitationStatus, respondedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, status, respondedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockInvitationRepo) ListExpiringPending(ctx context.Context, now, cutoff time.Time) ([]domain.Invitation, error) {
	args := m.Called(ctx, now, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) ListByHost(ctx context.Context, hostID int32) ([]domain.Event, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByAuthSubject(ctx context.Context, subject string) (*domain.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockActivityRepo) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) Update(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockActivityRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockActivityRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Activity, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) AssignInvitation(ctx context.Context, activityID, invitationID int32) error {
	args := m.Called(ctx, activityID, invitationID)
	return args.Error(0)
}
func (m *MockActivityRepo) UnassignInvitation(ctx context.Context, activityID, invitationID int32) error {
	args := m.Called(ctx, activityID, invitationID)
	return args.Error(0)
}
func (m *MockActivityRepo) ListRefsForInvitation(ctx context.Context, invitationID int32) ([]domain.ActivityRef, error) {
	args := m.Called(ctx, invitationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityRef), args.Error(1)
}
func (m *MockActivityRepo) CountAssignments(ctx context.Context, activityID int32) (int32, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockVerificationRepo
type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Create(ctx context.Context, v *domain.PhoneVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVerificationRepo) GetByID(ctx context.Context, id string) (*domain.PhoneVerification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhoneVerification), args.Error(1)
}
func (m *MockVerificationRepo) IncrementAttempts(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVerificationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVerificationRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, guestName, eventTitle, inviteLink string) error {
	args := m.Called(ctx, email, guestName, eventTitle, inviteLink)
	return args.Error(0)
}
func (m *MockEmailService) SendInvitationReminder(ctx context.Context, email, guestName, eventTitle, inviteLink string) error {
	args := m.Called(ctx, email, guestName, eventTitle, inviteLink)
	return args.Error(0)
}
func (m *MockEmailService) SendGuestResponseNotification(ctx context.Context, hostEmail, guestName, eventTitle string, response domain.InvitationStatus) error {
	args := m.Called(ctx, hostEmail, guestName, eventTitle, response)
	return args.Error(0)
}
func (m *MockEmailService) SendVerificationCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

// MockTokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
