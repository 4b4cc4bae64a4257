package seed

import (
	"context"
	"testing"

	"github.com/danunant/bbank/internal/cryptox"
	"github.com/danunant/bbank/internal/logging"
	"github.com/danunant/bbank/internal/models"
	"github.com/danunant/bbank/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepos(t *testing.T) *store.Repositories {
	t.Helper()
	db, repos, err := store.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos
}

func TestApply_SeedsEmptyDatabase(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	applied, err := Apply(ctx, repos, logging.NewDiscardLogger())
	require.NoError(t, err)
	assert.True(t, applied)

	alice, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", alice.DisplayName)
	assert.True(t, cryptox.VerifyPIN([]byte("1234"), alice.PINHash, alice.Salt),
		"demo PIN must verify against the stored material")

	accts, err := repos.Accounts.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, accts, 3)
	assert.Equal(t, models.AccountTypeCredit, accts[2].Type)
	assert.Negative(t, accts[2].BalanceSatang)

	txns, err := repos.Transactions.ListForAccounts(ctx, []string{"A1", "A2", "A3"})
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

func TestApply_SkipsNonEmptyDatabase(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	applied, err := Apply(ctx, repos, logging.NewDiscardLogger())
	require.NoError(t, err)
	require.True(t, applied)

	// Second run must leave everything alone.
	applied, err = Apply(ctx, repos, logging.NewDiscardLogger())
	require.NoError(t, err)
	assert.False(t, applied)

	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
