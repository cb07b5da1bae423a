package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/controllers/mocks"
	"book_tracker_tgbot/internal/converter/responses"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/model/tg/tgCallback"
	"book_tracker_tgbot/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errDb = errors.New("db is down")

type dialogueErrorsSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	service  *mocks.MockBookService
	session  *mocks.MockSession
	phrases  *mocks.MockPhraseProvider
	ctrl     *DialogueController
	ev       Event
	ctx      context.Context
}

func TestDialogueErrorsSuite(t *testing.T) {
	suite.Run(t, new(dialogueErrorsSuite))
}

func (s *dialogueErrorsSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
	s.ev = Event{ChatID: testChatID, MessageID: testMessageID, User: model.User{TelegramID: testChatID}}
	s.ctx = context.Background()
}

func (s *dialogueErrorsSuite) SetupTest() {
	s.service = mocks.NewMockBookService(s.mockCtrl)
	s.session = mocks.NewMockSession(s.mockCtrl)
	s.phrases = mocks.NewMockPhraseProvider(s.mockCtrl)

	cfg := &config.Config{BooksPerPage: 10, HandlerTimeout: time.Second}
	s.ctrl = NewDialogueController(cfg, s.service, s.session, s.phrases)
}

// applySession runs the update function against the given session like a real store does.
func applySession(chatSession model.Session) func(ctx context.Context, chatID int64, fn func(*model.Session)) (model.Session, error) {
	return func(_ context.Context, _ int64, fn func(*model.Session)) (model.Session, error) {
		fn(&chatSession)
		return chatSession, nil
	}
}

func (s *dialogueErrorsSuite) Test_Start_SessionError() {
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).Return(model.Session{}, errDb)

	_, err := s.ctrl.HandleText(s.ctx, Event{ChatID: testChatID, Text: "/start"})

	assert.ErrorIs(s.T(), err, errDb)
}

func (s *dialogueErrorsSuite) Test_Start_UsesPhrase() {
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).DoAndReturn(applySession(model.Session{State: model.StateAwaitingRating}))
	s.phrases.EXPECT().Next().Return("Добро пожаловать!")

	res, err := s.ctrl.HandleText(s.ctx, Event{ChatID: testChatID, Text: "/start"})

	s.Require().NoError(err)
	assert.Equal(s.T(), responses.Welcome("Добро пожаловать!"), res.Messages[0])
}

func (s *dialogueErrorsSuite) Test_ShowBooks_RepositoryError() {
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).DoAndReturn(applySession(model.Session{}))
	s.service.EXPECT().GetUserBooks(gomock.Any(), testChatID).Return(nil, errDb)

	_, err := s.ctrl.HandleCallback(s.ctx, Event{ChatID: testChatID, User: s.ev.User, Data: tgCallback.ShowBooks})

	assert.ErrorIs(s.T(), err, errDb)
}

func (s *dialogueErrorsSuite) Test_SelectBook_AddError() {
	candidate := model.CatalogCandidate{Title: "Солярис"}
	stored := model.Session{State: model.StateAwaitingTitle, SearchResults: []model.CatalogCandidate{candidate}}
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(*model.Session)) (model.Session, error) {
			fn(&stored)
			return stored, nil
		})
	s.service.EXPECT().AddBook(gomock.Any(), s.ev.User, candidate).Return(model.Book{}, errDb)

	res, err := s.ctrl.HandleCallback(s.ctx, Event{ChatID: testChatID, MessageID: testMessageID, User: s.ev.User, Data: tgCallback.SelectBookData(0)})

	assert.ErrorIs(s.T(), err, errDb)
	assert.Zero(s.T(), res.DeleteMessageID)
	// the failed save keeps the results for another try
	assert.Equal(s.T(), []model.CatalogCandidate{candidate}, stored.SearchResults)
	assert.Equal(s.T(), model.StateIdle, stored.State)
}

func (s *dialogueErrorsSuite) Test_SetStatus_BookVanished() {
	bookID := int64(9)
	s.session.EXPECT().Get(gomock.Any(), testChatID).Return(model.Session{BookIDForChange: &bookID}, nil)
	s.service.EXPECT().UpdateStatus(gomock.Any(), testChatID, bookID, model.StatusDropped).Return(model.Book{}, service.ErrNotFound)

	var after model.Session
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(*model.Session)) (model.Session, error) {
			after = model.Session{State: model.StateAwaitingPage, BookIDForChange: &bookID}
			fn(&after)
			return after, nil
		})

	res, err := s.ctrl.HandleCallback(s.ctx, Event{ChatID: testChatID, User: s.ev.User, Data: tgCallback.SetStatusData(model.StatusDropped)})

	s.Require().NoError(err)
	assert.Equal(s.T(), responses.BookNotFound().Text, res.Messages[0].Text)
	assert.Equal(s.T(), model.StateIdle, after.State)
	assert.Nil(s.T(), after.BookIDForChange)
}

func (s *dialogueErrorsSuite) Test_UpdatePage_ServiceError() {
	bookID := int64(3)
	s.session.EXPECT().Get(gomock.Any(), testChatID).Return(model.Session{State: model.StateAwaitingPage, BookIDForChange: &bookID}, nil)
	s.service.EXPECT().UpdatePage(gomock.Any(), testChatID, bookID, 15).Return(model.Book{}, errDb)
	s.session.EXPECT().Update(gomock.Any(), testChatID, gomock.Any()).DoAndReturn(applySession(model.Session{}))

	_, err := s.ctrl.HandleText(s.ctx, Event{ChatID: testChatID, User: s.ev.User, Text: "15"})

	assert.ErrorIs(s.T(), err, errDb)
}

func (s *dialogueErrorsSuite) Test_HandlerGetsDeadline() {
	s.service.EXPECT().GetStatistics(gomock.Any(), testChatID).
		DoAndReturn(func(ctx context.Context, _ int64) (model.Statistics, error) {
			_, ok := ctx.Deadline()
			assert.True(s.T(), ok)
			return model.Statistics{}, nil
		})

	_, err := s.ctrl.HandleCallback(s.ctx, Event{ChatID: testChatID, User: s.ev.User, Data: tgCallback.ShowStats})

	s.Require().NoError(err)
}
