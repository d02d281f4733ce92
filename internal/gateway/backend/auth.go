package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
	"shipfront/internal/logx"
)

// The two token-issuance endpoints do not share the JSON convention used by
// every other call. The customer backend speaks the OAuth2 password flow
// (form-encoded /token); the driver backend takes JSON credentials on /login.
// Both shapes are inherited from the backend and preserved here as two named
// operations rather than unified.

// TokenResponse is the payload of a successful token issuance.
type TokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Driver      *domain.Profile `json:"driver,omitempty"`
}

// PasswordToken obtains a bearer token from the form-encoded /token endpoint
// and binds the resulting session. The email doubles as the OAuth2 username.
func (c *Client) PasswordToken(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("backend: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("token request failed", logx.Err(err))
		return nil, fmt.Errorf("backend: POST /token: %w", apperr.Network)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read token response: %w", apperr.Network)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := detailFrom(raw)
		if detail == "" {
			detail = "Login failed. Please check your credentials."
		}
		return nil, apperr.WithDetail(apperr.Validation, detail)
	}

	tok, err := decode[TokenResponse](Result{Body: raw}, nil)
	if err != nil {
		return nil, err
	}
	if err := c.BindSession(tok.AccessToken, nil); err != nil {
		return nil, err
	}
	return &tok, nil
}

// CredentialsLogin signs a driver in via the JSON /login endpoint and binds
// the session together with the returned driver profile. Like PasswordToken
// it bypasses Request: a 401 here means wrong credentials, not an expired
// session, so the rejection surfaces on the form without touching any stored
// session.
func (c *Client) CredentialsLogin(ctx context.Context, email, password string) (*TokenResponse, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("backend: encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("backend: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("login request failed", logx.Err(err))
		return nil, fmt.Errorf("backend: POST /login: %w", apperr.Network)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read login response: %w", apperr.Network)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := detailFrom(raw)
		if detail == "" {
			detail = "Login failed. Please check your credentials."
		}
		return nil, apperr.WithDetail(apperr.Validation, detail)
	}

	tok, err := decode[TokenResponse](Result{Body: raw}, nil)
	if err != nil {
		return nil, err
	}
	if err := c.BindSession(tok.AccessToken, tok.Driver); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Registration is the payload accepted by the /register endpoint.
type Registration struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Register creates an account. It issues no token; callers decide whether to
// follow up with a login.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	_, err := c.Request(ctx, http.MethodPost, "/register", reg)
	return err
}

// Logout destroys the local session. The backend holds no server-side session
// state for the portals, so no network call is involved.
func (c *Client) Logout() error {
	c.invalidated.Store(false)
	return c.sessions.Clear()
}
