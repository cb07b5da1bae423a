package repository

import (
	"context"
	"sync"
	"time"

	"book_tracker_tgbot/internal/model"

	"github.com/google/uuid"
)

// Memory is a process local repository used with STORAGE=memory. Books keep insertion order.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	books  []model.Book
	users  map[int64]model.User
	now    func() time.Time
}

func NewMemoryRepo() *Memory {
	return &Memory{users: make(map[int64]model.User), now: time.Now}
}

func (r *Memory) FindAll(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Book, len(r.books))
	copy(res, r.books)
	return res, nil
}

func (r *Memory) FindByID(_ context.Context, id int64) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(id); idx >= 0 {
		return r.books[idx], nil
	}
	return model.Book{}, ErrNoRows
}

func (r *Memory) FindByOwnerAndTitle(_ context.Context, userID uuid.UUID, title string) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.UserID == userID && b.Title == title {
			return b, nil
		}
	}
	return model.Book{}, ErrNoRows
}

func (r *Memory) FindByOwner(_ context.Context, userID uuid.UUID) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Book, 0)
	for _, b := range r.books {
		if b.UserID == userID {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r *Memory) Save(_ context.Context, book model.Book) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.UserID == book.UserID && b.Title == book.Title {
			return 0, ErrAlreadyExists
		}
	}

	r.nextID++
	book.ID = r.nextID
	book.ModifiedAt = r.now()
	r.books = append(r.books, book)
	return book.ID, nil
}

func (r *Memory) Update(_ context.Context, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(book.ID)
	if idx < 0 {
		return ErrNoRows
	}
	book.ModifiedAt = r.now()
	r.books[idx] = book
	return nil
}

func (r *Memory) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(id); idx >= 0 {
		r.books = append(r.books[:idx], r.books[idx+1:]...)
	}
	return nil
}

func (r *Memory) FindUserByTelegramID(_ context.Context, telegramID int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[telegramID]; ok {
		return user, nil
	}
	return model.User{}, ErrNoRows
}

func (r *Memory) SaveUser(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[user.TelegramID]; ok {
		user.ID = existing.ID
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.ModifiedAt = r.now()
	r.users[user.TelegramID] = user
	return user, nil
}

func (r *Memory) indexOf(id int64) int {
	for i, b := range r.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
