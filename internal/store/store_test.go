package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndReturnsRepos(t *testing.T) {
	ctx := context.Background()

	db, repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NotNil(t, repos)
	require.NotNil(t, repos.Users)
	require.NotNil(t, repos.Accounts)
	require.NotNil(t, repos.Transactions)

	for _, table := range []string{"users", "accounts", "transactions"} {
		var name string
		err := db.QueryRow(`select name from sqlite_master where type='table' and name=?`, table).Scan(&name)
		require.NoError(t, err, "expected table %s to exist", table)
		assert.Equal(t, table, name)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, _, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// A second run must be a no-op, not an error.
	require.NoError(t, RunMigrations(ctx, db))
}
