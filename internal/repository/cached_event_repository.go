package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/pkg/logger"
)

const eventCacheTTL = 5 * time.Minute

// CachedEventRepository wraps an EventRepository with redis cache-aside
// for whole-document reads by id. Saves and deletes invalidate the entry.
// A nil client disables caching entirely.
type CachedEventRepository struct {
	inner EventRepository
	rdb   *redis.Client
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(inner EventRepository, rdb *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{inner: inner, rdb: rdb}
}

// cachedEvent carries the version next to the document because Version
// is excluded from the document's own JSON form.
type cachedEvent struct {
	Doc     *domain.Event `json:"doc"`
	Version int64         `json:"version"`
}

func eventCacheKey(id string) string {
	return "event:" + id
}

// Create inserts through to storage; nothing to cache until first read
func (r *CachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.inner.Create(ctx, event)
}

// GetByID serves from cache when possible, falling back to storage.
// Cache failures are logged and treated as misses.
func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if r.rdb == nil {
		return r.inner.GetByID(ctx, id)
	}

	key := eventCacheKey(id)
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached cachedEvent
		if err := json.Unmarshal(raw, &cached); err == nil && cached.Doc != nil {
			cached.Doc.Version = cached.Version
			return cached.Doc, nil
		}
		// Corrupt entry, drop it and fall through.
		r.rdb.Del(ctx, key)
	}

	event, err := r.inner.GetByID(ctx, id)
	if err != nil || event == nil {
		return event, err
	}

	raw, err = json.Marshal(cachedEvent{Doc: event, Version: event.Version})
	if err == nil {
		if err := r.rdb.Set(ctx, key, raw, eventCacheTTL).Err(); err != nil {
			logger.Get().Warnw("event cache set failed", "event_id", id, "error", err)
		}
	}
	return event, nil
}

// Save persists through to storage and invalidates the cached document
func (r *CachedEventRepository) Save(ctx context.Context, event *domain.Event) error {
	if err := r.inner.Save(ctx, event); err != nil {
		return err
	}
	r.invalidate(ctx, event.ID)
	return nil
}

// Delete removes from storage and invalidates the cached document
func (r *CachedEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// ListAll always hits storage; list results are not cached
func (r *CachedEventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return r.inner.ListAll(ctx)
}

// ListNearby always hits storage
func (r *CachedEventRepository) ListNearby(ctx context.Context, lon, lat float64, limit int) ([]*domain.Event, error) {
	return r.inner.ListNearby(ctx, lon, lat, limit)
}

func (r *CachedEventRepository) invalidate(ctx context.Context, id string) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, eventCacheKey(id)).Err(); err != nil {
		logger.Get().Warnw("event cache invalidation failed", "event_id", id, "error", err)
	}
}
