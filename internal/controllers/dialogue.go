package controllers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/converter/responses"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/model/tg/tgCallback"
	"book_tracker_tgbot/internal/service"
	"book_tracker_tgbot/utils"
)

type BookService interface {
	SearchBooks(ctx context.Context, query string) []model.CatalogCandidate
	AddBook(ctx context.Context, user model.User, candidate model.CatalogCandidate) (model.Book, error)
	GetUserBooks(ctx context.Context, telegramID int64) ([]model.Book, error)
	GetUserBook(ctx context.Context, telegramID, bookID int64) (model.Book, error)
	UpdatePage(ctx context.Context, telegramID, bookID int64, page int) (model.Book, error)
	UpdateRating(ctx context.Context, telegramID, bookID int64, rating int) (model.Book, error)
	UpdateStatus(ctx context.Context, telegramID, bookID int64, status model.BookStatus) (model.Book, error)
	DeleteBook(ctx context.Context, telegramID, bookID int64) (model.Book, error)
	GetStatistics(ctx context.Context, telegramID int64) (model.Statistics, error)
}

type Session interface {
	Get(ctx context.Context, chatID int64) (model.Session, error)
	Update(ctx context.Context, chatID int64, fn func(s *model.Session)) (model.Session, error)
}

type PhraseProvider interface {
	Next() string
}

// Event is one inbound update: a text message or a button press.
type Event struct {
	ChatID int64
	// MessageID is the message carrying the pressed button
	MessageID int
	User      model.User
	Text      string
	Data      string
}

type callbackHandler func(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error)

type DialogueController struct {
	cfg      *config.Config
	service  BookService
	session  Session
	phrases  PhraseProvider
	handlers map[tgCallback.Kind]callbackHandler
}

func NewDialogueController(cfg *config.Config, bookService BookService, session Session, phrases PhraseProvider) *DialogueController {
	ctrl := &DialogueController{
		cfg:     cfg,
		service: bookService,
		session: session,
		phrases: phrases,
	}

	ctrl.handlers = map[tgCallback.Kind]callbackHandler{
		tgCallback.KindAddBook:           ctrl.addBook,
		tgCallback.KindCancelAddedBook:   ctrl.cancelAddedBook,
		tgCallback.KindShowBooks:         ctrl.showBooks,
		tgCallback.KindSelectBook:        ctrl.selectBook,
		tgCallback.KindNextPage:          ctrl.nextPage,
		tgCallback.KindPrevPage:          ctrl.prevPage,
		tgCallback.KindChangeFilter:      ctrl.changeFilter,
		tgCallback.KindFilterStatusClear: ctrl.filterStatusClear,
		tgCallback.KindFilterByStatus:    ctrl.filterByStatus,
		tgCallback.KindManageBook:        ctrl.manageBook,
		tgCallback.KindChangeStatus:      ctrl.changeStatus,
		tgCallback.KindUpdatePage:        ctrl.updatePage,
		tgCallback.KindRateBook:          ctrl.rateBook,
		tgCallback.KindDeleteBook:        ctrl.deleteBook,
		tgCallback.KindSetStatus:         ctrl.setStatus,
		tgCallback.KindCancelUpdateBook:  ctrl.cancelUpdateBook,
		tgCallback.KindShowStats:         ctrl.showStats,
	}

	return ctrl
}

func (ctrl *DialogueController) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctrl.cfg.HandlerTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, ctrl.cfg.HandlerTimeout)
}

func reply(messages ...model.OutMessage) model.Reply {
	return model.Reply{Messages: messages}
}

// HandleText processes a text message according to the chat state.
func (ctrl *DialogueController) HandleText(ctx context.Context, ev Event) (model.Reply, error) {
	op := "DialogueController.HandleText"
	ctx, cancel := ctrl.withTimeout(ctx)
	defer cancel()

	text := strings.TrimSpace(ev.Text)

	if strings.HasPrefix(text, "/") {
		return ctrl.handleCommand(ctx, ev, text)
	}

	chatSession, err := ctrl.session.Get(ctx, ev.ChatID)
	if err != nil {
		return model.Reply{}, err
	}

	slog.Debug(
		"text received",
		slog.String("op", op),
		slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
		slog.Int64("chatID", ev.ChatID),
		slog.String("state", chatSession.State.String()),
	)

	switch chatSession.State {
	case model.StateAwaitingTitle:
		return ctrl.processTitle(ctx, ev, text)
	case model.StateAwaitingPage:
		return ctrl.processPage(ctx, ev, chatSession, text)
	case model.StateAwaitingRating:
		return ctrl.processRating(ctx, ev, chatSession, text)
	default:
		return reply(responses.UnknownCommand()), nil
	}
}

func (ctrl *DialogueController) handleCommand(ctx context.Context, ev Event, text string) (model.Reply, error) {
	command, _, _ := strings.Cut(strings.Fields(text)[0], "@")

	switch command {
	case "/start":
		_, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
			s.State = model.StateIdle
		})
		if err != nil {
			return model.Reply{}, err
		}
		return reply(responses.Welcome(ctrl.phrases.Next())), nil
	case "/help":
		return reply(responses.Help()), nil
	case "/books":
		return ctrl.showBooks(ctx, ev, tgCallback.Command{Kind: tgCallback.KindShowBooks})
	case "/stats":
		return ctrl.showStats(ctx, ev, tgCallback.Command{Kind: tgCallback.KindShowStats})
	default:
		return reply(responses.UnknownCommand()), nil
	}
}

func (ctrl *DialogueController) processTitle(ctx context.Context, ev Event, title string) (model.Reply, error) {
	op := "DialogueController.processTitle"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if title == "" {
		return reply(responses.EnterTitle()), nil
	}

	candidates := ctrl.service.SearchBooks(ctx, title)

	_, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.State = model.StateIdle
		if len(candidates) > 0 {
			s.SearchResults = candidates
		}
	})
	if err != nil {
		return model.Reply{}, err
	}

	if len(candidates) == 0 {
		slog.Info("books not found", slog.String("op", op), slog.String("rqID", rqID), slog.String("title", title))
		return reply(responses.NothingFound()), nil
	}

	return reply(responses.SearchResults(candidates)), nil
}

func (ctrl *DialogueController) processPage(ctx context.Context, ev Event, chatSession model.Session, text string) (model.Reply, error) {
	page, err := strconv.Atoi(text)
	if err != nil || page <= 0 || page > model.MaxPage {
		return reply(responses.InvalidPage()), nil
	}

	if chatSession.BookIDForChange == nil {
		if err = ctrl.finishEdit(ctx, ev.ChatID); err != nil {
			return model.Reply{}, err
		}
		return reply(responses.NoBookSelected()), nil
	}

	book, err := ctrl.service.UpdatePage(ctx, ev.User.TelegramID, *chatSession.BookIDForChange, page)
	if finishErr := ctrl.finishEdit(ctx, ev.ChatID); finishErr != nil {
		return model.Reply{}, finishErr
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return reply(responses.BookNotFound()), nil
		}
		return model.Reply{}, err
	}

	return reply(responses.PageUpdated(book), responses.BookMenu(book)), nil
}

func (ctrl *DialogueController) processRating(ctx context.Context, ev Event, chatSession model.Session, text string) (model.Reply, error) {
	rating, err := strconv.Atoi(text)
	if err != nil || rating < model.MinRating || rating > model.MaxRating {
		return reply(responses.InvalidRating()), nil
	}

	if chatSession.BookIDForChange == nil {
		if err = ctrl.finishEdit(ctx, ev.ChatID); err != nil {
			return model.Reply{}, err
		}
		return reply(responses.NoBookSelected()), nil
	}

	book, err := ctrl.service.UpdateRating(ctx, ev.User.TelegramID, *chatSession.BookIDForChange, rating)
	if finishErr := ctrl.finishEdit(ctx, ev.ChatID); finishErr != nil {
		return model.Reply{}, finishErr
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return reply(responses.BookNotFound()), nil
		}
		return model.Reply{}, err
	}

	return reply(responses.RatingUpdated(book), responses.BookMenu(book)), nil
}

// finishEdit clears the edit target and returns the chat to idle.
func (ctrl *DialogueController) finishEdit(ctx context.Context, chatID int64) error {
	_, err := ctrl.session.Update(ctx, chatID, func(s *model.Session) {
		s.State = model.StateIdle
		s.ClearBookIDForChange()
	})
	return err
}

// HandleCallback processes a button press. The pressed message is marked for deletion
// when its payload has one of the removable prefixes.
func (ctrl *DialogueController) HandleCallback(ctx context.Context, ev Event) (model.Reply, error) {
	op := "DialogueController.HandleCallback"
	ctx, cancel := ctrl.withTimeout(ctx)
	defer cancel()

	cmd := tgCallback.Parse(ev.Data)

	var (
		res model.Reply
		err error
	)

	handler, ok := ctrl.handlers[cmd.Kind]
	if !ok {
		slog.Warn("unknown callback", slog.String("op", op), slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("data", cmd.Raw))
		res = reply(responses.UnknownAction())
	} else {
		res, err = handler(ctx, ev, cmd)
		if err != nil {
			return model.Reply{}, err
		}
	}

	if tgCallback.DeletesSourceMessage(ev.Data) {
		res.DeleteMessageID = ev.MessageID
	}

	return res, nil
}

func (ctrl *DialogueController) addBook(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	_, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.State = model.StateAwaitingTitle
	})
	if err != nil {
		return model.Reply{}, err
	}
	return reply(responses.EnterTitle()), nil
}

func (ctrl *DialogueController) cancelAddedBook(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	_, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.ClearSearchResults()
		s.State = model.StateIdle
	})
	if err != nil {
		return model.Reply{}, err
	}
	return reply(responses.AddingCancelled()), nil
}

func (ctrl *DialogueController) showBooks(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	chatSession, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.ClearBookIDForChange()
		s.State = model.StateIdle
	})
	if err != nil {
		return model.Reply{}, err
	}

	list, err := ctrl.bookList(ctx, ev, chatSession)
	if err != nil {
		return model.Reply{}, err
	}
	return reply(list), nil
}

func (ctrl *DialogueController) bookList(ctx context.Context, ev Event, chatSession model.Session) (model.OutMessage, error) {
	books, err := ctrl.service.GetUserBooks(ctx, ev.User.TelegramID)
	if err != nil {
		return model.OutMessage{}, err
	}
	return responses.BookList(books, chatSession.StatusFilter, chatSession.CurrentPage, ctrl.cfg.BooksPerPage), nil
}

// selectBook adds the cached search result with the pressed index. The catalog is not queried again.
func (ctrl *DialogueController) selectBook(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	op := "DialogueController.selectBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var (
		candidate model.CatalogCandidate
		found     bool
	)

	chatSession, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.State = model.StateIdle
		if cmd.Index >= 0 && cmd.Index < len(s.SearchResults) {
			candidate = s.SearchResults[cmd.Index]
			found = true
		}
	})
	if err != nil {
		return model.Reply{}, err
	}

	if !found {
		slog.Warn("selected book index is out of cached results", slog.String("op", op), slog.String("rqID", rqID), slog.Int("index", cmd.Index))
		return reply(responses.BookNotFoundByIndex()), nil
	}

	confirmation := responses.BookAdded(candidate.Title)
	_, err = ctrl.service.AddBook(ctx, ev.User, candidate)
	if err != nil {
		if !errors.Is(err, service.ErrAlreadyExists) {
			return model.Reply{}, err
		}
		confirmation = responses.BookAlreadyExists(candidate.Title)
	}

	// results stay cached until the book is stored
	chatSession, err = ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.ClearSearchResults()
	})
	if err != nil {
		return model.Reply{}, err
	}

	list, err := ctrl.bookList(ctx, ev, chatSession)
	if err != nil {
		return model.Reply{}, err
	}
	return reply(confirmation, list), nil
}

func (ctrl *DialogueController) nextPage(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	return ctrl.updateListView(ctx, ev, func(s *model.Session) {
		s.IncrementPage()
	})
}

func (ctrl *DialogueController) prevPage(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	return ctrl.updateListView(ctx, ev, func(s *model.Session) {
		s.DecrementPage()
	})
}

func (ctrl *DialogueController) filterStatusClear(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	return ctrl.updateListView(ctx, ev, func(s *model.Session) {
		s.SetStatusFilter(nil)
		s.SetCurrentPage(0)
	})
}

func (ctrl *DialogueController) filterByStatus(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	status := cmd.Status
	return ctrl.updateListView(ctx, ev, func(s *model.Session) {
		s.SetStatusFilter(&status)
		s.SetCurrentPage(0)
	})
}

func (ctrl *DialogueController) updateListView(ctx context.Context, ev Event, fn func(s *model.Session)) (model.Reply, error) {
	chatSession, err := ctrl.session.Update(ctx, ev.ChatID, fn)
	if err != nil {
		return model.Reply{}, err
	}

	list, err := ctrl.bookList(ctx, ev, chatSession)
	if err != nil {
		return model.Reply{}, err
	}
	return reply(list), nil
}

func (ctrl *DialogueController) changeFilter(_ context.Context, _ Event, _ tgCallback.Command) (model.Reply, error) {
	return reply(responses.FilterMenu()), nil
}

// targetBook checks the book belongs to the user and makes it the edit target with the given state.
// A nil message result means the book was found.
func (ctrl *DialogueController) targetBook(ctx context.Context, ev Event, bookID int64, state model.SessionState) (model.Book, *model.OutMessage, error) {
	book, err := ctrl.service.GetUserBook(ctx, ev.User.TelegramID, bookID)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			return model.Book{}, nil, err
		}
		if err = ctrl.finishEdit(ctx, ev.ChatID); err != nil {
			return model.Book{}, nil, err
		}
		notFound := responses.BookNotFound()
		return model.Book{}, &notFound, nil
	}

	_, err = ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		s.SetBookIDForChange(book.ID)
		s.State = state
	})
	if err != nil {
		return model.Book{}, nil, err
	}
	return book, nil, nil
}

func (ctrl *DialogueController) manageBook(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	book, notFound, err := ctrl.targetBook(ctx, ev, cmd.BookID, model.StateIdle)
	if err != nil {
		return model.Reply{}, err
	}
	if notFound != nil {
		return reply(*notFound), nil
	}
	return reply(responses.BookMenu(book)), nil
}

func (ctrl *DialogueController) changeStatus(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	_, notFound, err := ctrl.targetBook(ctx, ev, cmd.BookID, model.StateIdle)
	if err != nil {
		return model.Reply{}, err
	}
	if notFound != nil {
		return reply(*notFound), nil
	}
	return reply(responses.StatusMenu()), nil
}

func (ctrl *DialogueController) updatePage(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	_, notFound, err := ctrl.targetBook(ctx, ev, cmd.BookID, model.StateAwaitingPage)
	if err != nil {
		return model.Reply{}, err
	}
	if notFound != nil {
		return reply(*notFound), nil
	}
	return reply(responses.EnterPage()), nil
}

func (ctrl *DialogueController) rateBook(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	_, notFound, err := ctrl.targetBook(ctx, ev, cmd.BookID, model.StateAwaitingRating)
	if err != nil {
		return model.Reply{}, err
	}
	if notFound != nil {
		return reply(*notFound), nil
	}
	return reply(responses.EnterRating()), nil
}

func (ctrl *DialogueController) deleteBook(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	op := "DialogueController.deleteBook"

	book, err := ctrl.service.DeleteBook(ctx, ev.User.TelegramID, cmd.BookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return reply(responses.BookNotFound()), nil
		}
		return model.Reply{}, err
	}

	_, err = ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		if s.BookIDForChange != nil && *s.BookIDForChange == book.ID {
			s.ClearBookIDForChange()
		}
	})
	if err != nil {
		return model.Reply{}, err
	}

	slog.Info("book deleted", slog.String("op", op), slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.Int64("bookID", book.ID))
	return reply(responses.BookDeleted(book.Title)), nil
}

func (ctrl *DialogueController) setStatus(ctx context.Context, ev Event, cmd tgCallback.Command) (model.Reply, error) {
	if !cmd.Status.Valid() {
		return reply(responses.UnknownStatus(cmd.Param)), nil
	}

	chatSession, err := ctrl.session.Get(ctx, ev.ChatID)
	if err != nil {
		return model.Reply{}, err
	}
	if chatSession.BookIDForChange == nil {
		return reply(responses.NoBookSelected()), nil
	}

	book, err := ctrl.service.UpdateStatus(ctx, ev.User.TelegramID, *chatSession.BookIDForChange, cmd.Status)
	if finishErr := ctrl.finishEdit(ctx, ev.ChatID); finishErr != nil {
		return model.Reply{}, finishErr
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return reply(responses.BookNotFound()), nil
		}
		return model.Reply{}, err
	}

	return reply(responses.StatusUpdated(book), responses.BookMenu(book)), nil
}

// cancelUpdateBook drops the pending edit and shows the book again, or the list when no book is targeted.
func (ctrl *DialogueController) cancelUpdateBook(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	var target *int64

	chatSession, err := ctrl.session.Update(ctx, ev.ChatID, func(s *model.Session) {
		target = s.BookIDForChange
		s.ClearBookIDForChange()
		s.State = model.StateIdle
	})
	if err != nil {
		return model.Reply{}, err
	}

	if target != nil {
		book, err := ctrl.service.GetUserBook(ctx, ev.User.TelegramID, *target)
		if err == nil {
			return reply(responses.BookMenu(book)), nil
		}
		if !errors.Is(err, service.ErrNotFound) {
			return model.Reply{}, err
		}
	}

	list, err := ctrl.bookList(ctx, ev, chatSession)
	if err != nil {
		return model.Reply{}, err
	}
	return reply(list), nil
}

func (ctrl *DialogueController) showStats(ctx context.Context, ev Event, _ tgCallback.Command) (model.Reply, error) {
	stats, err := ctrl.service.GetStatistics(ctx, ev.User.TelegramID)
	if err != nil {
		return model.Reply{}, err
	}
	return reply(responses.Statistics(stats)), nil
}
