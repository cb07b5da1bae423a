package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookColumns = `id, title, author, status, user_id, added_date, start_date, finish_date,
	current_page, rating, total_pages, modified_at`

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) FindAll(ctx context.Context) (books []model.Book, err error) {
	op := "Postgres.FindAll"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	books = make([]model.Book, 0)
	if err = r.db.SelectContext(ctx, &books, query); err != nil {
		slog.Error("Failed to select books", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return nil, err
	}
	return books, nil
}

func (r *Postgres) FindByID(ctx context.Context, id int64) (book model.Book, err error) {
	op := "Postgres.FindByID"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	err = r.db.GetContext(ctx, &book, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("No book with id", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("id", id))
			return model.Book{}, ErrNoRows
		}
		slog.Error("Failed to get book by id", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("id", id))
		return model.Book{}, err
	}
	return book, nil
}

func (r *Postgres) FindByOwnerAndTitle(ctx context.Context, userID uuid.UUID, title string) (book model.Book, err error) {
	op := "Postgres.FindByOwnerAndTitle"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 AND title = $2`

	err = r.db.GetContext(ctx, &book, query, userID, title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, ErrNoRows
		}
		slog.Error(
			"Failed to get book by owner and title",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("userID", userID.String()),
			slog.String("title", title),
		)
		return model.Book{}, err
	}
	return book, nil
}

func (r *Postgres) FindByOwner(ctx context.Context, userID uuid.UUID) (books []model.Book, err error) {
	op := "Postgres.FindByOwner"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 ORDER BY id`

	books = make([]model.Book, 0)
	if err = r.db.SelectContext(ctx, &books, query, userID); err != nil {
		slog.Error("Failed to select books of user", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("userID", userID.String()))
		return nil, err
	}
	return books, nil
}

// Save inserts a new book. A book with the same title for the same owner is left untouched and
// ErrAlreadyExists is returned.
func (r *Postgres) Save(ctx context.Context, book model.Book) (id int64, err error) {
	op := "Postgres.Save"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO books (title, author, status, user_id, added_date, start_date, finish_date, current_page, rating, total_pages, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (user_id, title) DO NOTHING
		RETURNING id`

	err = r.db.QueryRowxContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Status,
		book.UserID,
		book.AddedDate,
		book.StartDate,
		book.FinishDate,
		book.CurrentPage,
		book.Rating,
		book.TotalPages,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Info("Book already exists", slog.String("op", op), slog.String("rqID", rqID), slog.String("title", book.Title))
			return 0, ErrAlreadyExists
		}
		slog.Error("Failed to insert book", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("title", book.Title))
		return 0, err
	}

	slog.Info("Book inserted", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("id", id))
	return id, nil
}

func (r *Postgres) Update(ctx context.Context, book model.Book) error {
	op := "Postgres.Update"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `UPDATE books SET status = $1, start_date = $2, finish_date = $3, current_page = $4, rating = $5,
		total_pages = $6, modified_at = now() WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query, book.Status, book.StartDate, book.FinishDate, book.CurrentPage, book.Rating, book.TotalPages, book.ID)
	if err != nil {
		slog.Error("Failed to update book", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("id", book.ID))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *Postgres) DeleteByID(ctx context.Context, id int64) error {
	op := "Postgres.DeleteByID"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `DELETE FROM books WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Error("Failed to delete book", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("id", id))
		return err
	}

	slog.Info("Book deleted", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("id", id))
	return nil
}

func (r *Postgres) FindUserByTelegramID(ctx context.Context, telegramID int64) (user model.User, err error) {
	op := "Postgres.FindUserByTelegramID"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT id, telegram_id, username, first_name, last_name, modified_at FROM users WHERE telegram_id = $1`

	err = r.db.GetContext(ctx, &user, query, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNoRows
		}
		slog.Error("Failed to get user", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("telegramID", telegramID))
		return model.User{}, err
	}
	return user, nil
}

// SaveUser inserts the user or refreshes the names of an existing one and returns the stored row.
func (r *Postgres) SaveUser(ctx context.Context, user model.User) (saved model.User, err error) {
	op := "Postgres.SaveUser"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO users (id, telegram_id, username, first_name, last_name, modified_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (telegram_id) DO UPDATE
		SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, modified_at = now()
		RETURNING id, telegram_id, username, first_name, last_name, modified_at`

	err = r.db.QueryRowxContext(ctx, query, user.ID, user.TelegramID, user.Username, user.FirstName, user.LastName).StructScan(&saved)
	if err != nil {
		slog.Error("Failed to upsert user", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Int64("telegramID", user.TelegramID))
		return model.User{}, err
	}

	slog.Info("User upserted", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("telegramID", user.TelegramID))
	return saved, nil
}
