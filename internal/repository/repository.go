package repository

import (
	"context"
	"errors"
	"time"

	"buxmate-backend/internal/domain"
)

// ErrTokenCollision reports a unique violation on the invite token column.
// Callers may regenerate the token and retry; a duplicate recipient is
// reported as domain.ErrDuplicateInvitation instead.
var ErrTokenCollision = errors.New("invite token collision")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByAuthSubject(ctx context.Context, subject string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	ListByHost(ctx context.Context, hostID int32) ([]domain.Event, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id int32) (*domain.Invitation, error)
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	// ListByEvent returns invitations in creation order.
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error)
	// UpdateStatusIfPending transitions the invitation out of PENDING in one
	// conditional write. It returns false when the row was absent or no
	// longer PENDING; under two concurrent responders exactly one sees true.
	UpdateStatusIfPending(ctx context.Context, id int32, status domain.InvitationStatus, respondedAt time.Time) (bool, error)
	// ListExpiringPending returns PENDING invitations whose deadline falls
	// between now and cutoff, for reminder sending.
	ListExpiringPending(ctx context.Context, now, cutoff time.Time) ([]domain.Invitation, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id int32) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id int32) error
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Activity, error)

	// Guest assignment
	AssignInvitation(ctx context.Context, activityID, invitationID int32) error
	UnassignInvitation(ctx context.Context, activityID, invitationID int32) error
	ListRefsForInvitation(ctx context.Context, invitationID int32) ([]domain.ActivityRef, error)
	CountAssignments(ctx context.Context, activityID int32) (int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type VerificationRepository interface {
	Create(ctx context.Context, v *domain.PhoneVerification) error
	GetByID(ctx context.Context, id string) (*domain.PhoneVerification, error)
	IncrementAttempts(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
