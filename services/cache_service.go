package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

const gamesListCacheKey = "games:list"

// CacheService wraps redis for the catalog cache. Cache failures are never
// fatal: a broken cache degrades to database reads.
type CacheService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	})

	return &CacheService{
		logger: logger,
		cfg:    cfg,
		client: redisClient,
	}
}

// GetGamesList returns the cached catalog list, if present.
func (c *CacheService) GetGamesList(ctx context.Context) ([]tables.Game, bool) {
	data, err := c.client.Get(ctx, gamesListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Games cache read failed", gecho.Field("error", err))
		}
		return nil, false
	}

	var games []tables.Game
	if err := json.Unmarshal(data, &games); err != nil {
		c.logger.Warn("Games cache entry is corrupt, dropping it", gecho.Field("error", err))
		c.InvalidateGamesList(ctx)
		return nil, false
	}

	return games, true
}

func (c *CacheService) SetGamesList(ctx context.Context, games []tables.Game) {
	data, err := json.Marshal(games)
	if err != nil {
		c.logger.Warn("Failed to marshal games for cache", gecho.Field("error", err))
		return
	}

	if err := c.client.Set(ctx, gamesListCacheKey, data, c.cfg.Redis.CacheTTL).Err(); err != nil {
		c.logger.Warn("Games cache write failed", gecho.Field("error", err))
	}
}

func (c *CacheService) InvalidateGamesList(ctx context.Context) {
	if err := c.client.Del(ctx, gamesListCacheKey).Err(); err != nil {
		c.logger.Warn("Games cache invalidation failed", gecho.Field("error", err))
	}
}

// Health pings redis; used by the health endpoints.
func (c *CacheService) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
