package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trainlog/trainlog/internal/repository"
)

func storedKeys(ctx context.Context, db *DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func TestKVRepository_GetMissing(t *testing.T) {
	repo := NewKVRepository(NewTestDB(t))

	value, ok, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, value)
}

func TestKVRepository_SetGetReplace(t *testing.T) {
	repo := NewKVRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "training_sessions", `[]`))
	value, ok, err := repo.Get(ctx, "training_sessions")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, value)

	require.NoError(t, repo.Set(ctx, "training_sessions", `{"version":1,"sessions":[]}`))
	value, _, err = repo.Get(ctx, "training_sessions")
	require.NoError(t, err)
	require.Equal(t, `{"version":1,"sessions":[]}`, value)

	keys, err := storedKeys(ctx, repo.db)
	require.NoError(t, err)
	require.Equal(t, []string{"training_sessions"}, keys)
}

func TestKVRepository_Remove(t *testing.T) {
	repo := NewKVRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))
	require.NoError(t, repo.Remove(ctx, "a"))
	require.NoError(t, repo.Remove(ctx, "never-set"))

	_, ok, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)

	keys, err := storedKeys(ctx, repo.db)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, keys)
}

func TestKVRepository_ClosedDatabase(t *testing.T) {
	db := NewTestDB(t)
	repo := NewKVRepository(db)
	require.NoError(t, db.Close())

	ctx := context.Background()
	_, _, err := repo.Get(ctx, "k")
	require.Error(t, err)
	require.Error(t, repo.Set(ctx, "k", "v"))
	require.Error(t, repo.Remove(ctx, "k"))
}

func TestKVRepository_RejectsEmptyKey(t *testing.T) {
	repo := NewKVRepository(NewTestDB(t))

	err := repo.Set(context.Background(), "", "value")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}
