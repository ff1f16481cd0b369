package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func implementations(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"sqlite": newSQLite(t),
		"memory": NewMemoryRepository(),
	}
}

func TestRepository_SetAndGet(t *testing.T) {
	for name, r := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Set(ctx, "token", "a.b.c"))

			v, ok, err := r.Get(ctx, "token")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "a.b.c", v)
		})
	}
}

func TestRepository_GetMissing(t *testing.T) {
	for name, r := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := r.Get(context.Background(), "absent")
			require.NoError(t, err)
			require.False(t, ok)
			require.Empty(t, v)
		})
	}
}

func TestRepository_SetOverwrites(t *testing.T) {
	for name, r := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Set(ctx, "k", "old"))
			require.NoError(t, r.Set(ctx, "k", "new"))

			v, _, err := r.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, "new", v)
		})
	}
}

func TestRepository_SetManyListClear(t *testing.T) {
	for name, r := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.SetMany(ctx, map[string]string{"token": "t", "user": `{"id":1}`}))

			m, err := r.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"token": "t", "user": `{"id":1}`}, m)

			require.NoError(t, r.Clear(ctx))
			m, err = r.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, m)

			// clearing an empty store is fine
			require.NoError(t, r.Clear(ctx))
		})
	}
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	for name, r := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Set(ctx, "x", "1"))
			require.NoError(t, r.Delete(ctx, "x"))
			require.NoError(t, r.Delete(ctx, "x"))

			_, ok, err := r.Get(ctx, "x")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "k", "v"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	m["k"] = "mutated"

	v, _, _ := r.Get(ctx, "k")
	require.Equal(t, "v", v)
}
