package redisstore

import (
	"context"
	"testing"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/session"
	"logistics-backoffice/internal/domain/user"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_SaveGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := &session.Session{
		ID:       "abc",
		UserID:   7,
		Username: "ivan",
		Role:     user.RoleManager,
	}
	require.NoError(t, store.Save(ctx, sess, time.Hour))
	assert.True(t, mr.Exists("session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "ivan", got.Username)
	assert.Equal(t, user.RoleManager, got.Role)
}

func TestRedisStore_Expired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &session.Session{ID: "gone", UserID: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &session.Session{ID: "bye", UserID: 1}, time.Minute))
	require.NoError(t, store.Delete(ctx, "bye"))

	_, err := store.Get(ctx, "bye")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.NoError(t, store.Health(ctx))
}

func TestRedisStore_DeleteByUser(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &session.Session{ID: "s1", UserID: 7}, time.Minute))
	require.NoError(t, store.Save(ctx, &session.Session{ID: "s2", UserID: 7}, time.Hour))
	require.NoError(t, store.Save(ctx, &session.Session{ID: "other", UserID: 8}, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("user_sessions:7"))

	require.NoError(t, store.DeleteByUser(ctx, 7))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.False(t, mr.Exists("user_sessions:7"))

	got, err := store.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.UserID)

	assert.NoError(t, store.DeleteByUser(ctx, 42))
}
