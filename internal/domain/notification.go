package domain

import "time"

type NotificationType string

const (
	NotificationGuestResponded    NotificationType = "GUEST_RESPONDED"
	NotificationInvitationExpired NotificationType = "INVITATION_EXPIRED"
)

type Notification struct {
	ID        int32            `json:"id"`
	UserID    int32            `json:"user_id"`
	EventID   int32            `json:"event_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedOn time.Time        `json:"created_on"`
}
