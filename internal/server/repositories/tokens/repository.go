// Package tokens provides a PostgreSQL-backed store for single-use
// verification tokens. Tokens are addressed by the SHA-256 digest of their
// value; the plaintext value is never persisted.
package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.VerificationToken) error
	Find(ctx context.Context, hash string) (*models.VerificationToken, error)
	Delete(ctx context.Context, hash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
