package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// ChatLock handles updates of one chat one at a time. Different chats are not blocked.
func ChatLock() tele.MiddlewareFunc {
	var locks sync.Map

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return next(c)
			}

			mu, _ := locks.LoadOrStore(chat.ID, &sync.Mutex{})
			mu.(*sync.Mutex).Lock()
			defer mu.(*sync.Mutex).Unlock()

			return next(c)
		}
	}
}
