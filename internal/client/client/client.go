package client

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/api"
)

// Client is the account service as seen by the CLI. Methods return the
// server's confirmation message on success.
type Client interface {
	Close() error
	CreateAccount(ctx context.Context, email, name, password, confirmation string) (string, error)
	ConfirmAccount(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	RequestCode(ctx context.Context, email string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateToken(ctx context.Context, token string) (string, error)
	UpdatePassword(ctx context.Context, token, password, confirmation string) (string, error)
	Ping(ctx context.Context) error
}
