package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

func newTestStore(t *testing.T, prefix string) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := NewClient(Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client, prefix), mr
}

func TestSessionStoreGetSet(t *testing.T) {
	store, mr := newTestStore(t, "")
	ctx := context.Background()
	key := entities.NewSessionKey(entities.PlatformTelegram, 42)

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "Q1"))
	require.NoError(t, store.Set(ctx, key, "Q2"))

	q, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Q2", q)

	// Same key layout as the records written by earlier deployments.
	raw, err := mr.Get("telegram_42")
	require.NoError(t, err)
	assert.Equal(t, "Q2", raw)
	assert.Zero(t, mr.TTL("telegram_42"))
}

func TestSessionStorePrefix(t *testing.T) {
	store, mr := newTestStore(t, "quiz:")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, entities.NewSessionKey(entities.PlatformVK, 7), "Q"))

	assert.True(t, mr.Exists("quiz:vk_7"))
}

func TestSessionStoreUnavailable(t *testing.T) {
	store, mr := newTestStore(t, "")
	ctx := context.Background()
	key := entities.NewSessionKey(entities.PlatformVK, 1)

	require.NoError(t, store.Ping(ctx))
	mr.Close()

	_, _, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)

	err = store.Set(ctx, key, "Q")
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), service.ErrStoreUnavailable)
}
