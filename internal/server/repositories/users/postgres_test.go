package users

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*variant,\s*commitment\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at\s*$`
	selectQuery = `(?s)^SELECT\s+username,\s*commitment,\s*created_at\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func testCommitment() zkp.DLPair {
	return zkp.DLPair{First: big.NewInt(180020373440730202), Second: big.NewInt(138713557362284185)}
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	data, err := zkp.MarshalCommitment(testCommitment())
	require.NoError(t, err)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("alice", int64(zkp.VariantDiscreteLog), data).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), &models.User{UserName: "alice", Commitment: testCommitment()})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", Commitment: testCommitment()})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", Commitment: testCommitment()})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestPostgresCreate_IncompleteCommitment(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", Commitment: zkp.DLPair{}})
	require.ErrorIs(t, err, zkp.ErrInvalidEncoding)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetUserByName_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	data, err := zkp.MarshalCommitment(testCommitment())
	require.NoError(t, err)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "commitment", "created_at"}).AddRow("alice", data, created))

	got, err := repo.GetUserByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, zkp.VariantDiscreteLog, got.Variant())

	pair, ok := got.Commitment.(zkp.DLPair)
	require.True(t, ok)
	assert.Equal(t, 0, pair.First.Cmp(testCommitment().First))
	assert.Equal(t, 0, pair.Second.Cmp(testCommitment().Second))
}

func TestPostgresGetUserByName_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByName(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresGetUserByName_CorruptCommitment(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "commitment", "created_at"}).AddRow("alice", []byte{0xff}, time.Now()))

	_, err := repo.GetUserByName(context.Background(), "alice")
	require.ErrorIs(t, err, zkp.ErrInvalidEncoding)
}

func TestPostgresGetUserByName_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).WithArgs("alice").WillReturnError(errors.New("db err"))

	_, err := repo.GetUserByName(context.Background(), "alice")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db err`), err.Error())
}
