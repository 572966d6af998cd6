package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined InvitationStatus = "DECLINED"
)

// ValidResponse reports whether s is a status a recipient may respond with.
// PENDING is the initial state only, never a response.
func ValidResponse(s InvitationStatus) bool {
	return s == InvitationStatusAccepted || s == InvitationStatusDeclined
}

type Invitation struct {
	ID          int32            `json:"id"`
	EventID     int32            `json:"event_id"`
	InviteToken string           `json:"invite_token"`
	RecipientID *int32           `json:"recipient_id,omitempty"`
	GuestName   string           `json:"guest_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number"`
	Status      InvitationStatus `json:"status"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	RespondedAt *time.Time       `json:"responded_at,omitempty"`
	CreatedOn   time.Time        `json:"created_on"`
}

// Expired reports whether the invitation deadline has passed. An invitation
// without a deadline never expires.
func (i *Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// Terminal reports whether the invitation has left PENDING. Terminal
// invitations accept no further responses.
func (i *Invitation) Terminal() bool {
	return i.Status != InvitationStatusPending
}
