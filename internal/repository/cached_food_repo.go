package repository

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/metrics"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// CatalogCacheKey holds the serialized catalog in redis.
const CatalogCacheKey = "catalog:foods:v1"

// CachedFoodRepo is a read-through redis cache in front of a FoodRepository.
// Only the full listing is cached; single lookups always hit the inner
// repository so joins see the current catalog. Redis errors are logged and
// the inner repository is used instead.
type CachedFoodRepo struct {
	inner FoodRepository
	redis *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

var _ FoodRepository = (*CachedFoodRepo)(nil)

func NewCachedFoodRepo(inner FoodRepository, client *redis.Client, ttl time.Duration, baseLog *logger.Logger) *CachedFoodRepo {
	return &CachedFoodRepo{
		inner: inner,
		redis: client,
		ttl:   ttl,
		log:   baseLog.With("repo", "CachedFoodRepo"),
	}
}

func (r *CachedFoodRepo) List(ctx context.Context) ([]models.Food, error) {
	raw, err := r.redis.Get(ctx, CatalogCacheKey).Bytes()
	switch {
	case err == nil:
		var foods []models.Food
		if err := json.Unmarshal(raw, &foods); err == nil {
			metrics.RecordCacheLookup("hit")
			return foods, nil
		}
		metrics.RecordCacheLookup("error")
		r.log.Warn("discarding undecodable catalog cache entry", "key", CatalogCacheKey)
	case errors.Is(err, redis.Nil):
		metrics.RecordCacheLookup("miss")
	default:
		metrics.RecordCacheLookup("error")
		r.log.Warn("catalog cache read failed", "key", CatalogCacheKey, "error", err)
	}

	foods, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(foods); err == nil {
		if err := r.redis.Set(ctx, CatalogCacheKey, payload, r.ttl).Err(); err != nil {
			r.log.Warn("catalog cache write failed", "key", CatalogCacheKey, "error", err)
		}
	}
	return foods, nil
}

func (r *CachedFoodRepo) Get(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	return r.inner.Get(ctx, id)
}

// Invalidate drops the cached catalog so the next List reloads it.
func (r *CachedFoodRepo) Invalidate(ctx context.Context) error {
	return r.redis.Del(ctx, CatalogCacheKey).Err()
}
