// Package services contains server-side business logic. This file implements
// AccountService, which drives the account lifecycle: registration, e-mail
// confirmation, login and password reset through single-use tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/notify"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Identity describes an account that passed Login.
type Identity struct {
	AccountID string
	Email     string
	Name      string
}

// AccountService implements the account workflow on top of the account and
// token repositories. Domain failures are returned as the common.ErrAccount*
// and common.ErrTokenNotFound sentinels; every other failure is logged and
// reported as common.ErrorInternal.
type AccountService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.Hasher
	tokens        auth.TokenGenerator
	notifier      notify.Notifier
	tokenValidity time.Duration
	logger        logging.Logger
	now           func() time.Time
}

// NewAccountService constructs an AccountService using repositories and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, n notify.Notifier, cfg *config.Config, l logging.Logger) *AccountService {
	return &AccountService{
		db:            db,
		repomanager:   m,
		hasher:        auth.NewBcryptHasher(cfg.BcryptCost),
		tokens:        auth.NewRandomTokenGenerator(cfg.TokenBytes),
		notifier:      n,
		tokenValidity: cfg.TokenValidityDuration,
		logger:        l.With("module", "account_service"),
		now:           time.Now,
	}
}

// NormalizeEmail is applied to every address before it reaches the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unconfirmed account and sends it a confirmation code.
func (s *AccountService) Register(ctx context.Context, email, name, password string) error {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	_, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	switch {
	case err == nil:
		return common.ErrAccountExists
	case !errors.Is(err, common.ErrorNotFound):
		return s.internal(ctx, "error searching account", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrPasswordTooLong) {
			return err
		}
		return s.internal(ctx, "error hashing password", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	var token *models.VerificationToken
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Accounts(tx).Create(ctx, account)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrAccountExists
			}
			return fmt.Errorf("error creating account: %w", err)
		}
		account = created
		token, err = s.issueToken(ctx, tx, account.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrAccountExists) {
			return common.ErrAccountExists
		}
		return s.internal(ctx, "error registering account", err)
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID, "email", account.Email)
	s.notify(ctx, notify.KindConfirmAccount, account, token)
	return nil
}

// ConfirmAccount consumes a confirmation code and activates its account.
func (s *AccountService) ConfirmAccount(ctx context.Context, tokenValue string) error {
	token, err := s.findLiveToken(ctx, tokenValue)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).MarkConfirmed(ctx, token.AccountID); err != nil {
			return fmt.Errorf("error updating account: %w", err)
		}
		return s.consumeToken(ctx, tx, token)
	})
	if err != nil {
		if errors.Is(err, common.ErrTokenNotFound) {
			return err
		}
		return s.internal(ctx, "error confirming account", err)
	}

	s.logger.Info(ctx, "account confirmed", "account_id", token.AccountID)
	return nil
}

// Login checks the credentials of a confirmed account. An unconfirmed account
// is sent a fresh confirmation code and refused with ErrAccountNotConfirmed.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Identity, error) {
	account, err := s.findAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	if !account.Confirmed {
		token, err := s.issueToken(ctx, s.db, account.ID)
		if err != nil {
			return nil, s.internal(ctx, "error issuing token", err)
		}
		s.notify(ctx, notify.KindConfirmAccount, account, token)
		return nil, common.ErrAccountNotConfirmed
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, s.internal(ctx, "error verifying password", err)
	}
	if !ok {
		s.logger.Info(ctx, "login refused", "account_id", account.ID)
		return nil, common.ErrInvalidPassword
	}

	return &Identity{AccountID: account.ID, Email: account.Email, Name: account.Name}, nil
}

// RequestConfirmationCode sends a new confirmation code to an unconfirmed account.
func (s *AccountService) RequestConfirmationCode(ctx context.Context, email string) error {
	account, err := s.findAccount(ctx, email)
	if err != nil {
		return err
	}
	if account.Confirmed {
		return common.ErrAccountAlreadyConfirmed
	}

	token, err := s.issueToken(ctx, s.db, account.ID)
	if err != nil {
		return s.internal(ctx, "error issuing token", err)
	}
	s.notify(ctx, notify.KindConfirmAccount, account, token)
	return nil
}

// ForgotPassword sends a password reset code, confirmed or not.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.findAccount(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.issueToken(ctx, s.db, account.ID)
	if err != nil {
		return s.internal(ctx, "error issuing token", err)
	}
	s.notify(ctx, notify.KindPasswordReset, account, token)
	return nil
}

// ValidateToken reports whether tokenValue is live without consuming it.
func (s *AccountService) ValidateToken(ctx context.Context, tokenValue string) error {
	_, err := s.findLiveToken(ctx, tokenValue)
	return err
}

// ResetPassword consumes a code and replaces its owner's password.
func (s *AccountService) ResetPassword(ctx context.Context, tokenValue, password string) error {
	token, err := s.findLiveToken(ctx, tokenValue)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrPasswordTooLong) {
			return err
		}
		return s.internal(ctx, "error hashing password", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).SetPasswordHash(ctx, token.AccountID, hash); err != nil {
			return fmt.Errorf("error updating account: %w", err)
		}
		return s.consumeToken(ctx, tx, token)
	})
	if err != nil {
		if errors.Is(err, common.ErrTokenNotFound) {
			return err
		}
		return s.internal(ctx, "error resetting password", err)
	}

	s.logger.Info(ctx, "password reset", "account_id", token.AccountID)
	return nil
}

// --- helpers below ---

func (s *AccountService) findAccount(ctx context.Context, email string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, s.internal(ctx, "error searching account", err)
	}
	return account, nil
}

// findLiveToken treats expired tokens exactly like missing ones.
func (s *AccountService) findLiveToken(ctx context.Context, value string) (*models.VerificationToken, error) {
	if value == "" {
		return nil, common.ErrTokenNotFound
	}
	token, err := s.repomanager.Tokens(s.db).Find(ctx, auth.HashToken(value))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenNotFound
		}
		return nil, s.internal(ctx, "error searching token", err)
	}
	if token.IsExpired(s.now()) {
		return nil, common.ErrTokenNotFound
	}
	return token, nil
}

// consumeToken deletes token; losing a race against another consumer
// surfaces as ErrTokenNotFound and rolls the caller's transaction back.
func (s *AccountService) consumeToken(ctx context.Context, tx dbx.DBTX, token *models.VerificationToken) error {
	if err := s.repomanager.Tokens(tx).Delete(ctx, token.Hash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrTokenNotFound
		}
		return fmt.Errorf("error deleting token: %w", err)
	}
	return nil
}

func (s *AccountService) issueToken(ctx context.Context, db dbx.DBTX, accountID string) (*models.VerificationToken, error) {
	value, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}
	token := &models.VerificationToken{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Value:     value,
		Hash:      auth.HashToken(value),
		ExpiresAt: s.now().Add(s.tokenValidity),
	}
	if err := s.repomanager.Tokens(db).Create(ctx, token); err != nil {
		return nil, fmt.Errorf("error creating token: %w", err)
	}
	return token, nil
}

// notify never fails the caller; the state change is already committed.
func (s *AccountService) notify(ctx context.Context, kind notify.Kind, account *models.Account, token *models.VerificationToken) {
	err := s.notifier.Notify(ctx, notify.Message{
		Address: account.Email,
		Kind:    kind,
		Payload: notify.Payload{Name: account.Name, Token: token.Value},
	})
	if err != nil {
		s.logger.Warn(ctx, "notification not sent", "kind", kind.String(), "account_id", account.ID, "error", err)
	}
}

func (s *AccountService) internal(ctx context.Context, msg string, err error) error {
	s.logger.Error(ctx, msg, "error", err)
	return common.ErrorInternal
}
