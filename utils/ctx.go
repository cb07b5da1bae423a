package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const (
	requestIDKey ctxKey = "rqID"
	teleRqIDKey  string = "rqID"
)

// CreateCtxWithRqID returns a context carrying the request id of the telebot update.
// The id is generated once per update and kept in the telebot context.
func CreateCtxWithRqID(c tele.Context) context.Context {
	rqID, ok := c.Get(teleRqIDKey).(string)
	if !ok || rqID == "" {
		rqID = uuid.NewString()
		c.Set(teleRqIDKey, rqID)
	}
	return WithRequestID(context.Background(), rqID)
}

func WithRequestID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, rqID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
