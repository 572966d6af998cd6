package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"buxmate-backend/internal/security"
)

// Principal is the pre-validated identity handed to the rest of the backend.
// Credential handling lives with the external identity provider; this package
// only verifies tokens it issued.
type Principal struct {
	Subject string
	Email   string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// firebaseVerifier verifies Firebase ID tokens via the Admin SDK.
type firebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (Verifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}
	email, _ := decoded.Claims["email"].(string)
	return &Principal{Subject: decoded.UID, Email: email}, nil
}

// jwtVerifier validates locally signed HS256 session tokens. Used for
// development and tests where no identity provider is reachable.
type jwtVerifier struct {
	tokens security.TokenManager
}

func NewJWTVerifier(tokens security.TokenManager) Verifier {
	return &jwtVerifier{tokens: tokens}
}

func (v *jwtVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &Principal{Subject: claims.Subject, Email: claims.Email}, nil
}
