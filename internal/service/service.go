package service

import (
	"context"

	"buxmate-backend/internal/domain"
)

// IssueInvitationInput carries what the host typed when inviting a guest.
// Email is matched against registered accounts; when one exists the
// invitation is linked to it, otherwise the contact fields stand alone.
type IssueInvitationInput struct {
	GuestName   string
	Email       string
	PhoneNumber string
	ExpiryDays  *int // nil = use the configured default
}

type InvitationService interface {
	Issue(ctx context.Context, hostID, eventID int32, input IssueInvitationInput) (*domain.Invitation, error)
	// GetByToken resolves an invitation for an unauthenticated recipient,
	// together with the summary of the event it belongs to.
	GetByToken(ctx context.Context, token string) (*domain.Invitation, *domain.EventSummary, error)
	// Respond applies the PENDING -> ACCEPTED/DECLINED transition. Expired
	// invitations and terminal invitations are rejected, never overwritten.
	Respond(ctx context.Context, token string, response domain.InvitationStatus) (*domain.Invitation, error)
}

type RosterService interface {
	// Project derives the host-facing guest list for an event, invitations
	// in creation order.
	Project(ctx context.Context, hostID, eventID int32) ([]domain.GuestRosterEntry, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, hostID int32, event *domain.Event) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, hostID int32, event *domain.Event) error
	ListMyEvents(ctx context.Context, hostID int32) ([]domain.Event, error)
}

type ActivityService interface {
	AddActivity(ctx context.Context, hostID int32, activity *domain.Activity) error
	UpdateActivity(ctx context.Context, hostID int32, activity *domain.Activity) error
	DeleteActivity(ctx context.Context, hostID, activityID int32) error
	ListActivities(ctx context.Context, eventID int32) ([]domain.Activity, error)
	AssignGuest(ctx context.Context, hostID, activityID, invitationID int32) error
	UnassignGuest(ctx context.Context, hostID, activityID, invitationID int32) error
	CostSummary(ctx context.Context, hostID, eventID int32) (*domain.CostSummary, error)
}

type UserService interface {
	// EnsureUser upserts the local row for an identity-provider principal.
	EnsureUser(ctx context.Context, subject, email string) (*domain.User, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) (*domain.User, error)
}

type VerificationService interface {
	RequestCode(ctx context.Context, userID int32, phoneNumber string) (string, error) // returns verification id
	VerifyCode(ctx context.Context, userID int32, verificationID, code string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, guestName, eventTitle, inviteLink string) error
	SendInvitationReminder(ctx context.Context, email, guestName, eventTitle, inviteLink string) error
	SendGuestResponseNotification(ctx context.Context, hostEmail, guestName, eventTitle string, response domain.InvitationStatus) error
	SendVerificationCode(ctx context.Context, email, code string) error
}
