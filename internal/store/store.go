// Package store opens the local SQLite database, applies migrations and
// hands out the repository set the services work with.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danunant/bbank/internal/migrations"
	"github.com/danunant/bbank/internal/repositories/accounts"
	"github.com/danunant/bbank/internal/repositories/transactions"
	"github.com/danunant/bbank/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the three persistence interfaces backing the bank:
// credential store, account ledger store and transaction log store.
type Repositories struct {
	Users        users.Repository
	Accounts     accounts.Repository
	Transactions transactions.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, migrates it and returns
// the handle plus the repository set. The single connection limit keeps
// writes serialized, which matches the single-writer model of this client.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Users:        users.NewSQLiteRepository(db),
		Accounts:     accounts.NewSQLiteRepository(db),
		Transactions: transactions.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
