package domain

import "time"

type IdentityKind string

const (
	IdentityRegistered  IdentityKind = "REGISTERED"
	IdentityContactOnly IdentityKind = "CONTACT_ONLY"
)

// GuestIdentity is the tagged identity of an invitee. A registered identity
// carries the linked user; a contact-only identity carries whatever the host
// typed on the invitation.
type GuestIdentity struct {
	Kind IdentityKind
	User *User

	// Contact-only fallback fields.
	Name  string
	Email string
	Phone string
}

func RegisteredIdentity(u *User) GuestIdentity {
	return GuestIdentity{Kind: IdentityRegistered, User: u}
}

func ContactIdentity(name, email, phone string) GuestIdentity {
	return GuestIdentity{Kind: IdentityContactOnly, Name: name, Email: email, Phone: phone}
}

// DisplayName resolves with registered fields taking precedence over the
// invitation's fallback fields.
func (g GuestIdentity) DisplayName() string {
	if g.Kind == IdentityRegistered && g.User != nil && g.User.Name != "" {
		return g.User.Name
	}
	return g.Name
}

func (g GuestIdentity) DisplayEmail() string {
	if g.Kind == IdentityRegistered && g.User != nil && g.User.Email != "" {
		return g.User.Email
	}
	return g.Email
}

func (g GuestIdentity) DisplayPhone() string {
	if g.Kind == IdentityRegistered && g.User != nil && g.User.PhoneNumber != "" {
		return g.User.PhoneNumber
	}
	return g.Phone
}

// GuestRosterEntry is the host-facing projection of one invitation. It is
// derived, never persisted.
type GuestRosterEntry struct {
	InvitationID int32            `json:"invitation_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	PhoneNumber  string           `json:"phone_number"`
	Status       InvitationStatus `json:"status"`
	RespondedAt  *time.Time       `json:"responded_at,omitempty"`
	InvitedOn    time.Time        `json:"invited_on"`
	Activities   []ActivityRef    `json:"activities"`
}
