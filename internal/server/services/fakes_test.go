package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/notify"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/tokens"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memStore backs both fake repositories. It ignores the DBTX it is bound to,
// so transactions only matter for the *sql.DB handed to the service.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	tokens   map[string]*models.VerificationToken

	getByEmailErr    error
	createAccountErr error
	updateErr        error
	createTokenErr   error
	findTokenErr     error
	deleteTokenErr   error
	deleteExpiredErr error

	// beforeUpdate, when set, runs once just before the next account write.
	beforeUpdate func()
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]*models.Account{},
		tokens:   map[string]*models.VerificationToken{},
	}
}

func (s *memStore) accountByEmail(email string) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Email == email {
			c := *a
			return &c
		}
	}
	return nil
}

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func (s *memStore) tokensOf(accountID string) []*models.VerificationToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.VerificationToken
	for _, t := range s.tokens {
		if t.AccountID == accountID {
			c := *t
			out = append(out, &c)
		}
	}
	return out
}

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createAccountErr != nil {
		return nil, r.s.createAccountErr
	}
	for _, x := range r.s.accounts {
		if x.Email == a.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	c := *a
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.accounts[c.ID] = &c
	out := c
	return &out, nil
}

func (r memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if r.s.getByEmailErr != nil {
		return nil, r.s.getByEmailErr
	}
	if a := r.s.accountByEmail(email); a != nil {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (r memAccounts) MarkConfirmed(ctx context.Context, id string) error {
	return r.update(id, func(a *models.Account) { a.Confirmed = true })
}

func (r memAccounts) SetPasswordHash(ctx context.Context, id, hash string) error {
	return r.update(id, func(a *models.Account) { a.PasswordHash = hash })
}

func (r memAccounts) update(id string, apply func(*models.Account)) error {
	// beforeUpdate runs outside the lock so it can drive another operation.
	if hook := r.s.beforeUpdate; hook != nil {
		r.s.beforeUpdate = nil
		hook()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.updateErr != nil {
		return r.s.updateErr
	}
	stored, ok := r.s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	apply(stored)
	stored.UpdatedAt = time.Now()
	return nil
}

type memTokens struct{ s *memStore }

func (r memTokens) Create(ctx context.Context, t *models.VerificationToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createTokenErr != nil {
		return r.s.createTokenErr
	}
	if _, ok := r.s.tokens[t.Hash]; ok {
		return common.ErrorAlreadyExists
	}
	c := *t
	c.Value = ""
	c.CreatedAt = time.Now()
	r.s.tokens[c.Hash] = &c
	return nil
}

func (r memTokens) Find(ctx context.Context, hash string) (*models.VerificationToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.findTokenErr != nil {
		return nil, r.s.findTokenErr
	}
	t, ok := r.s.tokens[hash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r memTokens) Delete(ctx context.Context, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.deleteTokenErr != nil {
		return r.s.deleteTokenErr
	}
	if _, ok := r.s.tokens[hash]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.tokens, hash)
	return nil
}

func (r memTokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.deleteExpiredErr != nil {
		return 0, r.s.deleteExpiredErr
	}
	var n int64
	for h, t := range r.s.tokens {
		if t.IsExpired(now) {
			delete(r.s.tokens, h)
			n++
		}
	}
	return n, nil
}

type memRepoManager struct{ s *memStore }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Accounts(db dbx.DBTX) accounts.Repository    { return memAccounts{m.s} }
func (m *memRepoManager) Tokens(db dbx.DBTX) tokens.Repository        { return memTokens{m.s} }

// recordingNotifier keeps every message; err is returned from each call.
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (r *recordingNotifier) Notify(ctx context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func (r *recordingNotifier) last(t *testing.T) notify.Message {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.msgs, "no message was sent")
	return r.msgs[len(r.msgs)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		BcryptCost:            bcrypt.MinCost,
		TokenBytes:            16,
		TokenValidityDuration: 10 * time.Minute,
	}
}

func newTestAccountService(t *testing.T, db *sql.DB, store *memStore) (*AccountService, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	return NewAccountService(db, &memRepoManager{s: store}, n, testConfig(), nopLogger{}), n
}
