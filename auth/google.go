package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/plateformprojob/backend/config"
)

// GoogleAuthService verifies Google SSO ID tokens against the configured OAuth client
type GoogleAuthService struct {
	clientID string
}

// GoogleIdentity is the subset of Google ID token claims used to provision accounts
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID: cfg.GoogleClientID,
	}
}

// VerifyIDToken validates a Google ID token and extracts the identity claims.
// Tokens without a verified email are rejected since the email is the account key.
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if s.clientID == "" {
		return nil, errors.New("Google Client ID not configured")
	}

	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &GoogleIdentity{Subject: payload.Subject}

	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}

	if identity.Email == "" {
		return nil, errors.New("email not found in token")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email not verified by Google")
	}

	return identity, nil
}
