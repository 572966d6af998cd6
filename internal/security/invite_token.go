package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const inviteTokenBytes = 32

// InviteTokenGenerator produces opaque invitation tokens. Tokens are the sole
// lookup key handed to unauthenticated recipients, so they must be
// unguessable; global uniqueness is enforced by the database index.
type InviteTokenGenerator interface {
	Generate() (string, error)
}

type inviteTokenGenerator struct{}

func NewInviteTokenGenerator() InviteTokenGenerator {
	return inviteTokenGenerator{}
}

func (inviteTokenGenerator) Generate() (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
