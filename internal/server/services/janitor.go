package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
)

// TokenJanitor periodically removes expired verification tokens.
type TokenJanitor struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	interval    time.Duration
	logger      logging.Logger
	now         func() time.Time
}

func NewTokenJanitor(db *sql.DB, m repomanager.RepositoryManager, interval time.Duration, l logging.Logger) *TokenJanitor {
	return &TokenJanitor{
		db:          db,
		repomanager: m,
		interval:    interval,
		logger:      l.With("module", "token_janitor"),
		now:         time.Now,
	}
}

// Purge deletes every token expired at the current time.
func (j *TokenJanitor) Purge(ctx context.Context) (int64, error) {
	n, err := j.repomanager.Tokens(j.db).DeleteExpired(ctx, j.now())
	if err != nil {
		return 0, err
	}
	metrics.RecordTokensPurged(n)
	if n > 0 {
		j.logger.Info(ctx, "expired tokens purged", "count", n)
	}
	return n, nil
}

// Run purges once immediately and then every interval until ctx is done.
// A non-positive interval disables the janitor.
func (j *TokenJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info(ctx, "token janitor disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if _, err := j.Purge(ctx); err != nil && ctx.Err() == nil {
			j.logger.Error(ctx, "error purging expired tokens", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
