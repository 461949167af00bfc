package gotrue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-api/internal/ports/auth"
)

var (
	ErrTokenEmpty       = errors.New("token is empty")
	ErrCredentialsEmpty = errors.New("email and password are required")
)

// Verifier implementa auth.AuthVerifier y auth.CredentialsVerifier sobre GoTrue.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.User(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("gotrue verify failed: %w", err)
	}
	return claims, nil
}

func (v *Verifier) SignIn(ctx context.Context, creds auth.Credentials) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return auth.Claims{}, ErrCredentialsEmpty
	}

	claims, err := v.client.PasswordGrant(ctx, creds)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("gotrue sign in failed: %w", err)
	}
	return claims, nil
}
