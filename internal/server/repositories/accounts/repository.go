// Package accounts provides the PostgreSQL-backed account store.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository persists accounts. Lookups return common.ErrorNotFound when no
// row matches; Create returns common.ErrorAlreadyExists when the e-mail is taken.
// Writes after Create are column-targeted so concurrent confirmation and
// password reset never overwrite each other.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	MarkConfirmed(ctx context.Context, id string) error
	SetPasswordHash(ctx context.Context, id, hash string) error
}
