package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"VibeFinance/internal/domain/models"
	"VibeFinance/internal/repository"
	"VibeFinance/pkg/cache"

	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T, ttl time.Duration) *repository.CacheSessionStore {
	t.Helper()
	mc := cache.NewMemoryCache(cache.WithMemoryCleanup(time.Hour))
	t.Cleanup(func() { _ = mc.Close() })
	return repository.NewCacheSessionStore(mc, ttl)
}

func TestSessionStoreUnknownIDGetsDefault(t *testing.T) {
	store := newMemoryStore(t, time.Hour)

	st, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	require.Equal(t, models.DefaultTicker, st.SelectedTicker)

	st, err = store.Load(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, models.DefaultTicker, st.SelectedTicker)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := newMemoryStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", models.SessionState{SelectedTicker: "MSFT"}))
	require.NoError(t, store.Save(ctx, "s2", models.SessionState{SelectedTicker: "TSLA"}))

	st, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "MSFT", st.SelectedTicker)

	st, err = store.Load(ctx, "s2")
	require.NoError(t, err)
	require.Equal(t, "TSLA", st.SelectedTicker)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := newMemoryStore(t, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", models.SessionState{SelectedTicker: "MSFT"}))
	time.Sleep(40 * time.Millisecond)

	st, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, models.DefaultTicker, st.SelectedTicker)
}

func TestSessionStoreRejectsEmptyID(t *testing.T) {
	store := newMemoryStore(t, time.Hour)
	require.Error(t, store.Save(context.Background(), "", models.NewSessionState()))
}

type brokenCache struct{ cache.Service }

func (brokenCache) Get(context.Context, string, interface{}) error { return errors.New("redis down") }

func TestSessionStoreBackendErrorStillReturnsDefault(t *testing.T) {
	store := repository.NewCacheSessionStore(brokenCache{}, time.Hour)

	st, err := store.Load(context.Background(), "s1")
	require.ErrorContains(t, err, "redis down")
	require.Equal(t, models.DefaultTicker, st.SelectedTicker)
}
