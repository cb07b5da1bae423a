package middleware

import (
	"log/slog"
	"sync"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/utils"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"
)

type chatLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func (l *chatLimiter) get(chatID int64) *rate.Limiter {
	limiter, ok := l.limiters.Load(chatID)
	if !ok {
		limiter, _ = l.limiters.LoadOrStore(chatID, rate.NewLimiter(l.rate, l.burst))
	}
	return limiter.(*rate.Limiter)
}

// RateLimit drops updates of a chat that exceeds cfg.PerSecond with bursts up to cfg.Burst.
// onLimited is called for a dropped update when set. A non positive rate disables the limit.
func RateLimit(cfg config.RateLimit, onLimited tele.HandlerFunc) tele.MiddlewareFunc {
	limiter := &chatLimiter{rate: rate.Limit(cfg.PerSecond), burst: max(cfg.Burst, 1)}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil || cfg.PerSecond <= 0 {
				return next(c)
			}

			if !limiter.get(chat.ID).Allow() {
				slog.Warn(
					"rate limit",
					slog.String("op", "middleware.RateLimit"),
					slog.String("rqID", utils.GetRequestIDFromCtx(utils.CreateCtxWithRqID(c))),
					slog.Int64("chatID", chat.ID),
				)
				if onLimited != nil {
					return onLimited(c)
				}
				return nil
			}

			return next(c)
		}
	}
}
