package grpc

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeAccounts returns err from every call and records the arguments.
type fakeAccounts struct {
	err      error
	identity *services.Identity
	calls    []string
	args     [][]string
}

func (f *fakeAccounts) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeAccounts) Register(ctx context.Context, email, name, password string) error {
	f.record("Register", email, name, password)
	return f.err
}

func (f *fakeAccounts) ConfirmAccount(ctx context.Context, token string) error {
	f.record("ConfirmAccount", token)
	return f.err
}

func (f *fakeAccounts) Login(ctx context.Context, email, password string) (*services.Identity, error) {
	f.record("Login", email, password)
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func (f *fakeAccounts) RequestConfirmationCode(ctx context.Context, email string) error {
	f.record("RequestConfirmationCode", email)
	return f.err
}

func (f *fakeAccounts) ForgotPassword(ctx context.Context, email string) error {
	f.record("ForgotPassword", email)
	return f.err
}

func (f *fakeAccounts) ValidateToken(ctx context.Context, token string) error {
	f.record("ValidateToken", token)
	return f.err
}

func (f *fakeAccounts) ResetPassword(ctx context.Context, token, password string) error {
	f.record("ResetPassword", token, password)
	return f.err
}
