package tokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ        = `(?s)^\s*INSERT\s+INTO\s+verification_tokens\s*\(id,\s*account_id,\s*token_hash,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`
	findQ          = `(?s)^\s*SELECT\s+id,\s*account_id,\s*token_hash,\s*expires_at,\s*created_at\s+FROM\s+verification_tokens\s+WHERE\s+token_hash\s*=\s*\$1\s*$`
	deleteQ        = `(?s)^\s*DELETE\s+FROM\s+verification_tokens\s+WHERE\s+token_hash\s*=\s*\$1\s*$`
	deleteExpiredQ = `(?s)^\s*DELETE\s+FROM\s+verification_tokens\s+WHERE\s+expires_at\s*<=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	exp := time.Now().Add(10 * time.Minute)
	created := time.Now()

	mock.ExpectQuery(insertQ).
		WithArgs("t1", "a1", "hash", exp).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	tok := &models.VerificationToken{ID: "t1", AccountID: "a1", Hash: "hash", ExpiresAt: exp}
	require.NoError(t, repo.Create(context.Background(), tok))
	assert.Equal(t, created, tok.CreatedAt)
}

func TestCreate_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	exp := time.Now()

	mock.ExpectQuery(insertQ).
		WithArgs("t1", "a1", "hash", exp).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectQuery(insertQ).
		WithArgs("t1", "a1", "hash", exp).
		WillReturnError(errors.New("boom"))

	tok := &models.VerificationToken{ID: "t1", AccountID: "a1", Hash: "hash", ExpiresAt: exp}
	require.ErrorIs(t, repo.Create(context.Background(), tok), common.ErrorAlreadyExists)
	require.ErrorContains(t, repo.Create(context.Background(), tok), "db error: boom")
}

func TestFind(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	exp := time.Now().Add(time.Minute)
	created := time.Now()

	mock.ExpectQuery(findQ).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "token_hash", "expires_at", "created_at"}).
			AddRow("t1", "a1", "hash", exp, created))
	mock.ExpectQuery(findQ).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(findQ).WithArgs("broken").WillReturnError(errors.New("boom"))

	got, err := repo.Find(context.Background(), "hash")
	require.NoError(t, err)
	assert.Equal(t, &models.VerificationToken{ID: "t1", AccountID: "a1", Hash: "hash", ExpiresAt: exp, CreatedAt: created}, got)

	_, err = repo.Find(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Find(context.Background(), "broken")
	require.ErrorContains(t, err, "db error: boom")
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQ).WithArgs("hash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteQ).WithArgs("hash").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteQ).WithArgs("hash").WillReturnError(errors.New("boom"))

	require.NoError(t, repo.Delete(context.Background(), "hash"))
	require.ErrorIs(t, repo.Delete(context.Background(), "hash"), common.ErrorNotFound, "second delete loses")
	require.ErrorContains(t, repo.Delete(context.Background(), "hash"), "db error: boom")
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectExec(deleteExpiredQ).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(deleteExpiredQ).WithArgs(now).WillReturnError(errors.New("boom"))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.DeleteExpired(context.Background(), now)
	require.ErrorContains(t, err, "db error: boom")
}
