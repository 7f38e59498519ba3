// Package repomanager vends repository implementations for the configured
// database and applies the embedded schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/posts"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/users"
)

// RepositoryManager binds repositories to a DBTX, so the same code runs
// against the pool, a scoped connection or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
}
