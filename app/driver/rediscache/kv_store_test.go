package rediscache

import (
	"context"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-service/app/utils/logger"
)

func newTestStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)

	return NewKVStoreWithClient(client, log), server
}

func TestKVStore_GetSet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Missing key is not an error
	value, err := store.Get(ctx, "kratos:session_token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.Set(ctx, "kratos:session_token", "tok-1"))

	value, err = store.Get(ctx, "kratos:session_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", value)
}

func TestKVStore_PurgeNamespace(t *testing.T) {
	store, server := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "kratos:session_token", "tok-1"))
	require.NoError(t, store.Set(ctx, "kratos:flow:abc", "pending"))
	require.NoError(t, store.Set(ctx, "kratos:flow:def", "pending"))
	require.NoError(t, store.Set(ctx, "signals:latest", "keep-me"))

	removed, err := store.PurgeNamespace(ctx, "kratos:")

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.False(t, server.Exists("kratos:session_token"))
	assert.False(t, server.Exists("kratos:flow:abc"))
	assert.True(t, server.Exists("signals:latest"), "keys outside the namespace survive")
}

func TestKVStore_PurgeNamespaceIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "kratos:session_token", "tok-1"))

	removed, err := store.PurgeNamespace(ctx, "kratos:")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// Second purge finds nothing and still succeeds
	removed, err = store.PurgeNamespace(ctx, "kratos:")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestKVStore_PurgeEmptyNamespaceRejected(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.PurgeNamespace(context.Background(), "")
	assert.Error(t, err)
}

func TestKVStore_PurgeManyKeys(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// More keys than one SCAN batch returns
	for i := 0; i < 250; i++ {
		require.NoError(t, store.Set(ctx, "kratos:entry:"+string(rune('a'+i%26))+string(rune('0'+i/26)), "x"))
	}

	removed, err := store.PurgeNamespace(ctx, "kratos:")
	require.NoError(t, err)
	assert.Equal(t, 250, removed)
}
