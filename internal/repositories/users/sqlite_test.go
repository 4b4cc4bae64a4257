package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id           TEXT PRIMARY KEY,
  username     TEXT NOT NULL COLLATE NOCASE UNIQUE,
  display_name TEXT NOT NULL,
  pin_hash     BLOB NOT NULL,
  salt         BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func newUser(id, username string) *models.User {
	return &models.User{
		ID:          id,
		Username:    username,
		DisplayName: "Display " + username,
		PINHash:     []byte("hash-" + id),
		Salt:        []byte("salt-" + id),
	}
}

func TestCreateAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := newUser("U1", "alice")
	require.NoError(t, r.Create(ctx, u))

	got, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = r.GetByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestGetByUsername_CaseInsensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("U1", "Alice")))

	got, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "U1", got.ID)
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.GetByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = r.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCreate_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("U1", "alice")))

	err := r.Create(ctx, newUser("U2", "ALICE"))
	assert.True(t, errors.Is(err, common.ErrorUsernameTaken))
}

func TestExistsAndCount(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	exists, err := r.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, r.Create(ctx, newUser("U1", "alice")))

	exists, err = r.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
