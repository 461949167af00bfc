package gotrue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-api/internal/platform/httpclient"
	"pet-api/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("gotrue client not configured")
	ErrUnauthorized  = errors.New("gotrue unauthorized")
	ErrUpstream      = errors.New("gotrue upstream error")
)

const (
	tokenPath = "/auth/v1/token?grant_type=password"
	userPath  = "/auth/v1/user"
)

// Config del cliente GoTrue (Supabase Auth).
type Config struct {
	BaseURL string
	APIKey  string // se manda en el header "apikey"
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

// PasswordGrant intercambia email/password por una sesión y devuelve los claims del usuario.
func (c *Client) PasswordGrant(ctx context.Context, creds auth.Credentials) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}

	var out tokenResponse
	err := c.http.DoJSON(ctx, http.MethodPost, tokenPath, c.headers(""), creds, &out)
	if err != nil {
		return auth.Claims{}, mapErr(err)
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing access_token", ErrUpstream)
	}
	return toClaims(out.User)
}

// User trae el usuario dueño del access token.
func (c *Client) User(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}

	var out userResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, userPath, c.headers(token), nil, &out); err != nil {
		return auth.Claims{}, mapErr(err)
	}
	return toClaims(out)
}

func (c *Client) headers(token string) map[string]string {
	h := map[string]string{"apikey": c.apiKey}
	if token != "" {
		h["Authorization"] = "Bearer " + token
	}
	return h
}

// GoTrue responde 400 (invalid_grant) para credenciales inválidas.
func mapErr(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		default:
			return fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func toClaims(u userResponse) (auth.Claims, error) {
	id := strings.TrimSpace(u.ID)
	if id == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user id", ErrUpstream)
	}
	return auth.Claims{
		UserID: id,
		Email:  strings.TrimSpace(u.Email),
		Role:   strings.TrimSpace(u.Role),
	}, nil
}
