package session

import (
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestStore(expires time.Duration) *MemoryStore {
	return NewMemoryStore(log.NewNullLogger(), &c.SessionConfig{
		CookieName:      "test_session",
		TokenLength:     64,
		ExpiresDuration: expires,
	})
}

func TestMemoryStoreAttachAndGet(t *testing.T) {
	store := newTestStore(time.Hour)
	user := &operation.User{ID: 1, Username: "alice"}

	token, err := store.Attach(user)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	record, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, user, record.User)
}

func TestMemoryStoreTokenLengthFollowsConfig(t *testing.T) {
	store := NewMemoryStore(log.NewNullLogger(), &c.SessionConfig{
		CookieName:      "test_session",
		TokenLength:     32,
		ExpiresDuration: time.Hour,
	})
	token, err := store.Attach(&operation.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	assert.Len(t, token, 32)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := newTestStore(time.Hour)
	user := &operation.User{ID: 1, Username: "alice"}

	first, err := store.Attach(user)
	require.NoError(t, err)
	second, err := store.Attach(user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMemoryStoreGetUnknownToken(t *testing.T) {
	store := newTestStore(time.Hour)
	record, ok := store.Get("no-such-token")
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestMemoryStoreExpiredSession(t *testing.T) {
	store := newTestStore(-time.Minute)
	token, err := store.Attach(&operation.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	record, ok := store.Get(token)
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := newTestStore(time.Hour)
	token, err := store.Attach(&operation.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(token))
	_, ok := store.Get(token)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Destroy(token), ErrSessionNotFound)
}

func TestMemoryStoreSnapshotIsStale(t *testing.T) {
	store := newTestStore(time.Hour)
	user := &operation.User{ID: 1, Username: "alice", IsAdmin: true}
	token, err := store.Attach(user)
	require.NoError(t, err)

	record, ok := store.Get(token)
	require.True(t, ok)
	assert.True(t, record.User.IsAdmin)
}

func TestMemoryStoreRemoveExpired(t *testing.T) {
	store := newTestStore(time.Hour)
	fresh, err := store.Attach(&operation.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	store.lock.Lock()
	store.sessions["stale"] = &SessionRecord{
		User:      &operation.User{ID: 2, Username: "bob"},
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	store.lock.Unlock()

	store.removeExpired()

	_, ok := store.Get(fresh)
	assert.True(t, ok)
	_, ok = store.Get("stale")
	assert.False(t, ok)
}
