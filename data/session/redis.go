package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

// RedisSession stores sessions as JSON so they survive restarts.
// Same-chat updates are expected to be serialised by the caller.
type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func (r *RedisSession) createSessionKey(chatID int64) string {
	return fmt.Sprintf("chatID:%d:session", chatID)
}

func (r *RedisSession) Get(ctx context.Context, chatID int64) (model.Session, error) {
	chatSession, err := r.getSession(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Session{}, nil
		}
		return model.Session{}, err
	}
	return chatSession, nil
}

func (r *RedisSession) Update(ctx context.Context, chatID int64, fn func(s *model.Session)) (model.Session, error) {
	chatSession, err := r.Get(ctx, chatID)
	if err != nil {
		return model.Session{}, err
	}

	fn(&chatSession)

	if err = r.setSession(ctx, chatID, chatSession); err != nil {
		return model.Session{}, err
	}
	return chatSession, nil
}

func (r *RedisSession) setSession(ctx context.Context, chatID int64, chatSession model.Session) error {
	op := "RedisSession.setSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start setSession", slog.String("rqID", rqID), slog.String("op", op), slog.Any("session", chatSession))

	sessionJson, err := json.Marshal(chatSession)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("can't marshall session")
	}

	err = r.redis.Set(ctx, r.createSessionKey(chatID), sessionJson, r.cfg.SessionExpiration).Err()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}

func (r *RedisSession) getSession(ctx context.Context, chatID int64) (model.Session, error) {
	op := "RedisSession.getSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSessionKey(chatID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Debug("session not found in redis", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
			return model.Session{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.Session{}, err
	}

	chatSession := model.Session{}

	err = json.Unmarshal([]byte(res), &chatSession)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.Session{}, errors.New("can't unmarshall session")
	}

	return chatSession, nil
}
