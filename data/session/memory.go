package session

import (
	"context"
	"log/slog"
	"sync"

	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"
)

type memoryEntry struct {
	mu      sync.Mutex
	session model.Session
}

// MemorySession keeps sessions for the whole process lifetime. Sessions are created on first
// access and never evicted.
type MemorySession struct {
	mu      sync.RWMutex
	entries map[int64]*memoryEntry
}

func NewMemorySession() *MemorySession {
	return &MemorySession{entries: make(map[int64]*memoryEntry)}
}

func (m *MemorySession) entry(chatID int64) *memoryEntry {
	m.mu.RLock()
	e, ok := m.entries[chatID]
	m.mu.RUnlock()
	if ok {
		return e
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok = m.entries[chatID]; ok {
		return e
	}
	e = &memoryEntry{}
	m.entries[chatID] = e
	return e
}

// Get returns a copy of the chat session, creating an idle one if absent.
func (m *MemorySession) Get(ctx context.Context, chatID int64) (model.Session, error) {
	e := m.entry(chatID)
	e.mu.Lock()
	defer e.mu.Unlock()

	slog.Debug("MemorySession.Get", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.Int64("chatID", chatID))

	return copySession(e.session), nil
}

// Update applies fn to the chat session under the chat lock and returns the result.
func (m *MemorySession) Update(ctx context.Context, chatID int64, fn func(s *model.Session)) (model.Session, error) {
	e := m.entry(chatID)
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.session)

	slog.Debug(
		"MemorySession.Update",
		slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
		slog.Int64("chatID", chatID),
		slog.String("state", e.session.State.String()),
	)

	return copySession(e.session), nil
}

// Len returns the number of known chats.
func (m *MemorySession) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func copySession(s model.Session) model.Session {
	res := s
	if s.SearchResults != nil {
		res.SearchResults = make([]model.CatalogCandidate, len(s.SearchResults))
		copy(res.SearchResults, s.SearchResults)
	}
	if s.StatusFilter != nil {
		status := *s.StatusFilter
		res.StatusFilter = &status
	}
	if s.BookIDForChange != nil {
		id := *s.BookIDForChange
		res.BookIDForChange = &id
	}
	return res
}
