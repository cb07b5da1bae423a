package bookTrackerService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/data/cache"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/repository"
	"book_tracker_tgbot/internal/service"
	"book_tracker_tgbot/utils"

	"github.com/google/uuid"
)

type Cache interface {
	GetSearchResults(ctx context.Context, query string) ([]model.CatalogCandidate, error)
	SetSearchResults(ctx context.Context, query string, candidates []model.CatalogCandidate) error
}

type BooksParser interface {
	SearchBooks(ctx context.Context, query string) []model.CatalogCandidate
}

type Repository interface {
	FindByID(ctx context.Context, id int64) (model.Book, error)
	FindByOwnerAndTitle(ctx context.Context, userID uuid.UUID, title string) (model.Book, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Book, error)
	Save(ctx context.Context, book model.Book) (int64, error)
	Update(ctx context.Context, book model.Book) error
	DeleteByID(ctx context.Context, id int64) error
	FindUserByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
	SaveUser(ctx context.Context, user model.User) (model.User, error)
}

type BookTrackerService struct {
	cfg         *config.Config
	repo        Repository
	cache       Cache
	booksParser BooksParser
	now         func() time.Time
}

// New creates the service. cache may be nil when no redis is configured.
func New(cfg *config.Config, repo Repository, cache Cache, booksParser BooksParser) *BookTrackerService {
	return &BookTrackerService{
		cfg:         cfg,
		repo:        repo,
		cache:       cache,
		booksParser: booksParser,
		now:         time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (s *BookTrackerService) WithClock(now func() time.Time) *BookTrackerService {
	s.now = now
	return s
}

func (s *BookTrackerService) today() time.Time {
	now := s.now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// SearchBooks never fails: catalog problems end up as an empty list.
func (s *BookTrackerService) SearchBooks(ctx context.Context, query string) []model.CatalogCandidate {
	op := "BookTrackerService.SearchBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if s.cache != nil {
		candidates, err := s.cache.GetSearchResults(ctx, query)
		if err == nil {
			slog.Debug("search results from cache", slog.String("op", op), slog.String("rqID", rqID), slog.Int("count", len(candidates)))
			return s.limit(candidates)
		}
		if !errors.Is(err, cache.ErrNotFound) {
			slog.Warn("failed to read search cache", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		}
	}

	candidates := s.limit(s.booksParser.SearchBooks(ctx, query))

	if s.cache != nil && len(candidates) > 0 {
		if err := s.cache.SetSearchResults(context.WithoutCancel(ctx), query, candidates); err != nil {
			slog.Warn("failed to store search results", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		}
	}

	return candidates
}

func (s *BookTrackerService) limit(candidates []model.CatalogCandidate) []model.CatalogCandidate {
	if candidates == nil {
		return make([]model.CatalogCandidate, 0)
	}
	if maxResults := s.cfg.Litres.MaxResults; maxResults > 0 && len(candidates) > maxResults {
		return candidates[:maxResults]
	}
	return candidates
}

// AddBook stores the candidate as a planned book of the user, creating the user on first use.
// A title the user already has is not stored twice: the existing book is returned with
// service.ErrAlreadyExists.
func (s *BookTrackerService) AddBook(ctx context.Context, tgUser model.User, candidate model.CatalogCandidate) (model.Book, error) {
	op := "BookTrackerService.AddBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	user, err := s.ensureUser(ctx, tgUser)
	if err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		Title:      candidate.Title,
		Author:     candidate.Author,
		Status:     model.StatusPlanned,
		UserID:     user.ID,
		AddedDate:  s.today(),
		TotalPages: candidate.TotalPages,
	}

	id, err := s.repo.Save(ctx, book)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			existing, findErr := s.repo.FindByOwnerAndTitle(ctx, user.ID, book.Title)
			if findErr != nil {
				return model.Book{}, fmt.Errorf("find existing book: %w", findErr)
			}
			return existing, service.ErrAlreadyExists
		}
		slog.Error("failed to save book", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Book{}, err
	}

	book.ID = id
	slog.Info("book added", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("bookID", id), slog.Int64("telegramID", user.TelegramID))
	return book, nil
}

func (s *BookTrackerService) ensureUser(ctx context.Context, tgUser model.User) (model.User, error) {
	user, err := s.repo.FindUserByTelegramID(ctx, tgUser.TelegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNoRows) {
		return model.User{}, err
	}

	tgUser.ID = uuid.New()
	return s.repo.SaveUser(ctx, tgUser)
}

// GetUserBooks returns all books of the telegram user in repository order.
func (s *BookTrackerService) GetUserBooks(ctx context.Context, telegramID int64) ([]model.Book, error) {
	user, err := s.repo.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return make([]model.Book, 0), nil
		}
		return nil, err
	}

	return s.repo.FindByOwner(ctx, user.ID)
}

// GetUserBook returns service.ErrNotFound for missing books and for books of other users.
func (s *BookTrackerService) GetUserBook(ctx context.Context, telegramID, bookID int64) (model.Book, error) {
	op := "BookTrackerService.GetUserBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	user, err := s.repo.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return model.Book{}, service.ErrNotFound
		}
		return model.Book{}, err
	}

	book, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return model.Book{}, service.ErrNotFound
		}
		return model.Book{}, err
	}

	if book.UserID != user.ID {
		slog.Warn("book of another user requested", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("bookID", bookID), slog.Int64("telegramID", telegramID))
		return model.Book{}, service.ErrNotFound
	}

	return book, nil
}

func (s *BookTrackerService) UpdatePage(ctx context.Context, telegramID, bookID int64, page int) (model.Book, error) {
	if page <= 0 || page > model.MaxPage {
		return model.Book{}, service.ErrInvalidInput
	}

	return s.updateBook(ctx, telegramID, bookID, func(b *model.Book) {
		b.ApplyPage(page, s.today())
	})
}

func (s *BookTrackerService) UpdateRating(ctx context.Context, telegramID, bookID int64, rating int) (model.Book, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return model.Book{}, service.ErrInvalidInput
	}

	return s.updateBook(ctx, telegramID, bookID, func(b *model.Book) {
		b.Rating = &rating
	})
}

func (s *BookTrackerService) UpdateStatus(ctx context.Context, telegramID, bookID int64, status model.BookStatus) (model.Book, error) {
	if !status.Valid() {
		return model.Book{}, service.ErrInvalidInput
	}

	return s.updateBook(ctx, telegramID, bookID, func(b *model.Book) {
		b.ApplyStatus(status, s.today())
	})
}

func (s *BookTrackerService) updateBook(ctx context.Context, telegramID, bookID int64, apply func(b *model.Book)) (model.Book, error) {
	op := "BookTrackerService.updateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book, err := s.GetUserBook(ctx, telegramID, bookID)
	if err != nil {
		return model.Book{}, err
	}

	apply(&book)

	if err = s.repo.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return model.Book{}, service.ErrNotFound
		}
		slog.Error("failed to update book", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("bookID", bookID))
		return model.Book{}, err
	}

	return book, nil
}

func (s *BookTrackerService) DeleteBook(ctx context.Context, telegramID, bookID int64) (model.Book, error) {
	book, err := s.GetUserBook(ctx, telegramID, bookID)
	if err != nil {
		return model.Book{}, err
	}

	if err = s.repo.DeleteByID(ctx, bookID); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// GetStatistics counts books finished today, this month and this year. Pages of a finished
// book are its total pages, or the last stored page when the total is unknown.
func (s *BookTrackerService) GetStatistics(ctx context.Context, telegramID int64) (model.Statistics, error) {
	books, err := s.GetUserBooks(ctx, telegramID)
	if err != nil {
		return model.Statistics{}, err
	}

	today := s.today()
	var stats model.Statistics

	for _, b := range books {
		if b.FinishDate == nil {
			continue
		}

		pages := 0
		switch {
		case b.TotalPages != nil:
			pages = *b.TotalPages
		case b.CurrentPage != nil:
			pages = *b.CurrentPage
		}

		finished := b.FinishDate.In(today.Location())
		if finished.Year() != today.Year() {
			continue
		}
		stats.YearBooks++
		stats.YearPages += pages

		if pages > stats.BiggestBookPages {
			stats.BiggestBookPages = pages
			stats.BiggestBookTitle = b.Title
		}

		if finished.Month() != today.Month() {
			continue
		}
		stats.MonthBooks++
		stats.MonthPages += pages

		if finished.Day() == today.Day() {
			stats.TodayBooks++
			stats.TodayPages += pages
		}
	}

	return stats, nil
}
