package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/dbx"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

const uniqueViolation = "23505"

// PostgresRepository persists users in the users table. The commitment is
// stored in its CBOR form next to a variant column for filtering.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	commitment, err := zkp.MarshalCommitment(user.Commitment)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (username, variant, commitment)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.UserName, int16(user.Variant()), commitment).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByName(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT username, commitment, created_at FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	var commitment []byte
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&user.UserName, &commitment, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Commitment, err = zkp.UnmarshalCommitment(commitment)
	if err != nil {
		return nil, fmt.Errorf("stored commitment for %q: %w", userName, err)
	}

	return user, nil
}
