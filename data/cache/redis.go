package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("not found in cache")

// RedisCache keeps catalog search results per query.
type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) createSearchKey(query string) string {
	return fmt.Sprintf("catalog:search:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (r *RedisCache) GetSearchResults(ctx context.Context, query string) ([]model.CatalogCandidate, error) {
	op := "RedisCache.GetSearchResults"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSearchKey(query)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return nil, err
	}

	var candidates []model.CatalogCandidate
	if err = json.Unmarshal([]byte(res), &candidates); err != nil {
		slog.Error("error while unmarshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return nil, errors.New("unmarshalling error")
	}

	return candidates, nil
}

func (r *RedisCache) SetSearchResults(ctx context.Context, query string, candidates []model.CatalogCandidate) error {
	op := "RedisCache.SetSearchResults"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSearchKey(query)

	jsonData, err := json.Marshal(candidates)
	if err != nil {
		slog.Error("error while marshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("marshalling error")
	}

	if err = r.redis.Set(ctx, key, jsonData, r.cfg.Litres.CacheTTL).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}
