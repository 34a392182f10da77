package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/pkg/cache"
)

const sessionKeyPrefix = "session"

// CacheSessionStore keeps SessionState in a cache.Service (memory or Redis).
// Every Save refreshes the TTL, so idle sessions expire.
type CacheSessionStore struct {
	cache cache.Service
	ttl   time.Duration
}

var _ domrepo.SessionStore = (*CacheSessionStore)(nil)

func NewCacheSessionStore(c cache.Service, ttl time.Duration) *CacheSessionStore {
	return &CacheSessionStore{cache: c, ttl: ttl}
}

func (s *CacheSessionStore) Load(ctx context.Context, id string) (models.SessionState, error) {
	if id == "" {
		return models.NewSessionState(), nil
	}

	var st models.SessionState
	if err := s.cache.Get(ctx, sessionKey(id), &st); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return models.NewSessionState(), nil
		}
		return models.NewSessionState(), fmt.Errorf("load session: %w", err)
	}
	if st.SelectedTicker == "" {
		st.SelectedTicker = models.DefaultTicker
	}
	return st, nil
}

func (s *CacheSessionStore) Save(ctx context.Context, id string, state models.SessionState) error {
	if id == "" {
		return fmt.Errorf("save session: empty id")
	}
	if err := s.cache.Set(ctx, sessionKey(id), state, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return cache.GenerateKey(sessionKeyPrefix, id)
}
