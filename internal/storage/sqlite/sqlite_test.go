package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "dashboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSQLite_GetMissingKey(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Get(context.Background(), storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestSQLite_SetOverwritesWholeValue(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, storage.KeyEmployees, `[{"id":"1"}]`))
	require.NoError(t, db.Set(ctx, storage.KeyEmployees, `[]`))

	got, err := db.Get(ctx, storage.KeyEmployees)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, storage.KeyAuthToken, "token"))
	require.NoError(t, db.Delete(ctx, storage.KeyAuthToken))
	require.NoError(t, db.Delete(ctx, storage.KeyAuthToken))

	_, err := db.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestSQLite_ValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")
	ctx := context.Background()

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, storage.KeyAuthToken, "mock-jwt-token-123456"))
	require.NoError(t, db.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token-123456", got)
}
