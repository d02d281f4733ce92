package handlers

import (
	"context"

	"shipfront/internal/gateway/backend"
)

// authGateway covers the bootstrap operations that bypass the shared JSON
// request path. Implemented by *backend.Client.
type authGateway interface {
	PasswordToken(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	CredentialsLogin(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	Register(ctx context.Context, reg backend.Registration) error
	Logout() error
}
