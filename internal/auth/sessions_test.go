package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, time.Hour)
}

func TestSessionAddAndContains(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	live, err := store.Contains(ctx, accountID, "s1")
	require.NoError(t, err)
	assert.False(t, live, "unknown session must not be live")

	require.NoError(t, store.Add(ctx, accountID, "s1"))

	live, err = store.Contains(ctx, accountID, "s1")
	require.NoError(t, err)
	assert.True(t, live)
}

func TestSessionRemoveKeepsOthers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	require.NoError(t, store.Add(ctx, accountID, "device-a"))
	require.NoError(t, store.Add(ctx, accountID, "device-b"))

	require.NoError(t, store.Remove(ctx, accountID, "device-a"))

	live, err := store.Contains(ctx, accountID, "device-a")
	require.NoError(t, err)
	assert.False(t, live, "removed session must be revoked")

	live, err = store.Contains(ctx, accountID, "device-b")
	require.NoError(t, err)
	assert.True(t, live, "other sessions must keep working")
}

func TestSessionRemoveAbsentIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	require.NoError(t, store.Add(ctx, accountID, "s1"))
	require.NoError(t, store.Remove(ctx, accountID, "never-issued"))

	live, err := store.Contains(ctx, accountID, "s1")
	require.NoError(t, err)
	assert.True(t, live)
}

func TestSessionRevokeAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	accountID := uuid.New()
	other := uuid.New()

	require.NoError(t, store.Add(ctx, accountID, "s1"))
	require.NoError(t, store.Add(ctx, accountID, "s2"))
	require.NoError(t, store.Add(ctx, other, "s3"))

	require.NoError(t, store.RevokeAll(ctx, accountID))

	for _, sid := range []string{"s1", "s2"} {
		live, err := store.Contains(ctx, accountID, sid)
		require.NoError(t, err)
		assert.False(t, live)
	}

	live, err := store.Contains(ctx, other, "s3")
	require.NoError(t, err)
	assert.True(t, live, "revocation is per account")
}

func TestSessionsIsolatedPerAccount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	a := uuid.New()
	b := uuid.New()

	require.NoError(t, store.Add(ctx, a, "shared-id"))

	live, err := store.Contains(ctx, b, "shared-id")
	require.NoError(t, err)
	assert.False(t, live, "session ids are scoped to the issuing account")
}
