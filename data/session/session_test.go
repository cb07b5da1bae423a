package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type store interface {
	Get(ctx context.Context, chatID int64) (model.Session, error)
	Update(ctx context.Context, chatID int64, fn func(s *model.Session)) (model.Session, error)
}

type sessionSuite struct {
	suite.Suite

	newStore func() store
	store    store
}

func (s *sessionSuite) SetupTest() {
	s.store = s.newStore()
}

func TestMemorySessionSuite(t *testing.T) {
	suite.Run(t, &sessionSuite{newStore: func() store { return NewMemorySession() }})
}

func TestRedisSessionSuite(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{SessionExpiration: time.Hour}

	suite.Run(t, &sessionSuite{newStore: func() store {
		mr.FlushAll()
		return NewRedisSession(cfg, client)
	}})
}

func (s *sessionSuite) Test_Get_FreshSessionDefaults() {
	ctx := context.Background()

	for _, chatID := range []int64{1, -100, 987654321} {
		res, err := s.store.Get(ctx, chatID)

		assert.Nil(s.T(), err)
		assert.Equal(s.T(), model.StateIdle, res.State)
		assert.Equal(s.T(), 0, res.CurrentPage)
		assert.Nil(s.T(), res.StatusFilter)
		assert.Nil(s.T(), res.BookIDForChange)
		assert.Empty(s.T(), res.SearchResults)
	}
}

func (s *sessionSuite) Test_Update_PersistsFields() {
	ctx := context.Background()
	var chatID int64 = 5
	status := model.StatusRead
	pages := 120

	_, err := s.store.Update(ctx, chatID, func(sess *model.Session) {
		sess.State = model.StateAwaitingRating
		sess.SearchResults = []model.CatalogCandidate{{Title: "t", Author: "a", TotalPages: &pages}}
		sess.SetStatusFilter(&status)
		sess.SetBookIDForChange(11)
		sess.IncrementPage()
	})
	require.NoError(s.T(), err)

	res, err := s.store.Get(ctx, chatID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), model.StateAwaitingRating, res.State)
	assert.Equal(s.T(), 1, res.CurrentPage)
	require.NotNil(s.T(), res.StatusFilter)
	assert.Equal(s.T(), model.StatusRead, *res.StatusFilter)
	require.NotNil(s.T(), res.BookIDForChange)
	assert.Equal(s.T(), int64(11), *res.BookIDForChange)
	require.Len(s.T(), res.SearchResults, 1)
	assert.Equal(s.T(), 120, *res.SearchResults[0].TotalPages)

	other, err := s.store.Get(ctx, chatID+1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.Session{}, other)
}

func (s *sessionSuite) Test_Update_DecrementFloorsAtZero() {
	ctx := context.Background()

	res, err := s.store.Update(ctx, 1, (*model.Session).DecrementPage)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 0, res.CurrentPage)
}

func (s *sessionSuite) Test_Update_ClearSearchResults() {
	ctx := context.Background()

	_, err := s.store.Update(ctx, 1, func(sess *model.Session) {
		sess.SearchResults = []model.CatalogCandidate{{Title: "t"}}
	})
	require.NoError(s.T(), err)

	res, err := s.store.Update(ctx, 1, (*model.Session).ClearSearchResults)

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), res.SearchResults)
}

func TestMemorySession_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySession()
	_, err := store.Update(ctx, 1, func(s *model.Session) {
		s.SearchResults = []model.CatalogCandidate{{Title: "original"}}
		s.SetBookIDForChange(3)
	})
	require.NoError(t, err)

	res, err := store.Get(ctx, 1)
	require.NoError(t, err)
	res.SearchResults[0].Title = "changed"
	*res.BookIDForChange = 99

	again, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", again.SearchResults[0].Title)
	assert.Equal(t, int64(3), *again.BookIDForChange)
}

func TestMemorySession_ConcurrentChats(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySession()

	const chats = 20
	const increments = 50

	var wg sync.WaitGroup
	for chatID := int64(0); chatID < chats; chatID++ {
		for i := 0; i < increments; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				_, _ = store.Update(ctx, id, (*model.Session).IncrementPage)
			}(chatID)
		}
	}
	wg.Wait()

	assert.Equal(t, chats, store.Len())
	for chatID := int64(0); chatID < chats; chatID++ {
		res, err := store.Get(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, increments, res.CurrentPage)
	}
}
