package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Clear(context.Background()))
	return store, db
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	user := models.User{ID: "u1", Username: "ava", Password: "pw123", ImageURL: "https://img/ava.png"}
	require.NoError(t, store.Save(ctx, user))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, user, *got)
}

func TestSaveOverwritesSingleSlot(t *testing.T) {
	ctx := context.Background()
	store, db := setupStore(t)

	require.NoError(t, store.Save(ctx, models.User{ID: "u1", Username: "ava"}))
	require.NoError(t, store.Save(ctx, models.User{ID: "u2", Username: "tom"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "u2", got.ID)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&rows))
	require.Equal(t, 1, rows)
}

func TestLoadAbsent(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLoadMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	store, db := setupStore(t)

	_, err := db.Exec(`INSERT INTO session (key, value) VALUES (?, ?)`, "user", []byte("{not json"))
	require.NoError(t, err)

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	require.NoError(t, store.Save(ctx, models.User{ID: "u1"}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
