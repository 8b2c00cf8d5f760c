package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const categoriesCacheKey = "inventory:categories"

// invalidateCategories drops the cached category list after any product
// mutation. Best-effort: cache trouble must never fail a write path, and a
// nil client (unit tests) is a no-op.
func invalidateCategories(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, categoriesCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
