package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-gatekeeper/models"
)

func liveSession(token, username, role string) models.Session {
	return models.Session{
		Token:     token,
		Payload:   models.SessionPayload{Username: username, Role: role},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestMemorySessionStore_SetAndGet(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	session := liveSession("tok-1", "alice", "admin")
	require.NoError(t, s.Set(ctx, session))

	got, err := s.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, session.Payload, got.Payload)
}

func TestMemorySessionStore_GetMissing(t *testing.T) {
	s := NewMemorySessionStore()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_GetExpired(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	expired := models.Session{
		Token:     "tok-old",
		Payload:   models.SessionPayload{Username: "alice"},
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, s.Set(ctx, expired))

	_, err := s.Get(ctx, "tok-old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_SetReplacesExisting(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, liveSession("tok-1", "alice", "")))
	require.NoError(t, s.Set(ctx, liveSession("tok-1", "alice", "admin")))

	got, err := s.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Payload.Role)
}

func TestMemorySessionStore_Destroy(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, liveSession("tok-1", "alice", "")))
	require.NoError(t, s.Destroy(ctx, "tok-1"))

	_, err := s.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// destroying an absent token is not an error
	assert.NoError(t, s.Destroy(ctx, "tok-1"))
}

func TestMemorySessionStore_DeleteExpired(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, liveSession("tok-live", "alice", "")))
	require.NoError(t, s.Set(ctx, models.Session{
		Token:     "tok-dead",
		Payload:   models.SessionPayload{Username: "bob"},
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	removed, err := s.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = s.Get(ctx, "tok-live")
	assert.NoError(t, err)
}

func TestMemorySessionStore_ConcurrentAccess(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session := liveSession("tok-shared", "alice", "")
			_ = s.Set(ctx, session)
			_, _ = s.Get(ctx, "tok-shared")
			_, _ = s.DeleteExpired(ctx)
		}(i)
	}
	wg.Wait()

	_, err := s.Get(ctx, "tok-shared")
	assert.NoError(t, err)
}
