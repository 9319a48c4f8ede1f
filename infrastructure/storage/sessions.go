// ABOUTME: Session storage on top of the configured cache backend
// ABOUTME: Stores sessions as JSON under "session:<id>" with a TTL matching their expiry

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mdpreview-api/core/domain"
	"mdpreview-api/core/interfaces"
)

const sessionKeyPrefix = "session:"

// CacheSessionStorage implements interfaces.SessionStorage using a Cache
type CacheSessionStorage struct {
	cache interfaces.Cache
}

// NewCacheSessionStorage creates session storage backed by cache
func NewCacheSessionStorage(cache interfaces.Cache) *CacheSessionStorage {
	return &CacheSessionStorage{cache: cache}
}

// Save persists a session. Sessions without ExpiresAt are stored without a
// TTL; sessions already past it are removed instead.
func (s *CacheSessionStorage) Save(ctx context.Context, session *domain.Session) error {
	var ttl time.Duration
	if session.ExpiresAt != nil {
		ttl = time.Until(*session.ExpiresAt)
		if ttl <= 0 {
			return s.Delete(ctx, session.ID)
		}
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.cache.Set(ctx, sessionKeyPrefix+session.ID, data, ttl)
}

// Get retrieves a session by ID, or nil when it is not stored
func (s *CacheSessionStorage) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

// Delete removes a session
func (s *CacheSessionStorage) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}
