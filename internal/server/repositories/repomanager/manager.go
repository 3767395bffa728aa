// Package repomanager hands out repository implementations bound to a
// database handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/platonfloria/chaum-pedersen-auth/internal/dbx"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
