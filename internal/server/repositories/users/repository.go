// Package users stores registered credentials. Entries are write-once: a
// second registration under the same name fails with
// common.ErrorAlreadyExists.
package users

import (
	"context"

	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByName(ctx context.Context, userName string) (*models.User, error)
}
