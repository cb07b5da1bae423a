package middleware

import (
	"log/slog"
	"time"

	"book_tracker_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

// Logger assigns a request id to the update and logs its receipt and handling time.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			op := "middleware.Logger"
			ctx := utils.CreateCtxWithRqID(c)
			rqID := utils.GetRequestIDFromCtx(ctx)

			attrs := []any{
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int("updateID", c.Update().ID),
				slog.String("kind", updateKind(c.Update())),
			}
			if chat := c.Chat(); chat != nil {
				attrs = append(attrs, slog.Int64("chatID", chat.ID))
			}
			if cb := c.Callback(); cb != nil {
				attrs = append(attrs, slog.String("data", cb.Data))
			}

			slog.Info("update received", attrs...)

			start := time.Now()
			err := next(c)

			attrs = append(attrs, slog.Duration("duration", time.Since(start)))
			if err != nil {
				slog.Error("update handled with error", append(attrs, slog.String("err", err.Error()))...)
				return err
			}
			slog.Debug("update handled", attrs...)
			return nil
		}
	}
}

func updateKind(upd tele.Update) string {
	switch {
	case upd.Callback != nil:
		return "callback"
	case upd.Message != nil:
		return "message"
	default:
		return "other"
	}
}
