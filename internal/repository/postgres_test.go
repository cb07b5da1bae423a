package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"book_tracker_tgbot/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

var bookColumnNames = []string{
	"id", "title", "author", "status", "user_id", "added_date", "start_date", "finish_date",
	"current_page", "rating", "total_pages", "modified_at",
}

type postgresRepoSuite struct {
	suite.Suite

	mock sqlmock.Sqlmock
	repo *Postgres
}

func TestPostgresRepoSuite(t *testing.T) {
	suite.Run(t, new(postgresRepoSuite))
}

func (s *postgresRepoSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.mock = mock
	s.repo = NewPostgresRepo(sqlx.NewDb(db, "sqlmock"))
}

func (s *postgresRepoSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *postgresRepoSuite) Test_FindByID_Success() {
	userID := uuid.New()
	added := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookColumnNames).
		AddRow(int64(3), "Солярис", "Станислав Лем", "READING", userID.String(), added, added, nil, int64(42), nil, int64(300), modified)

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	book, err := s.repo.FindByID(context.Background(), 3)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), int64(3), book.ID)
	assert.Equal(s.T(), "Солярис", book.Title)
	assert.Equal(s.T(), model.StatusReading, book.Status)
	assert.Equal(s.T(), userID, book.UserID)
	assert.Equal(s.T(), 42, *book.CurrentPage)
	assert.Equal(s.T(), 300, *book.TotalPages)
	assert.Nil(s.T(), book.Rating)
	assert.Nil(s.T(), book.FinishDate)
}

func (s *postgresRepoSuite) Test_FindByID_NoRows() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	_, err := s.repo.FindByID(context.Background(), 3)

	assert.ErrorIs(s.T(), err, ErrNoRows)
}

func (s *postgresRepoSuite) Test_FindByOwner_Empty() {
	userID := uuid.New()

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE user_id = $1 ORDER BY id")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	books, err := s.repo.FindByOwner(context.Background(), userID)

	assert.Nil(s.T(), err)
	assert.NotNil(s.T(), books)
	assert.Empty(s.T(), books)
}

func (s *postgresRepoSuite) Test_Save_Success() {
	book := model.Book{Title: "Солярис", Author: "Станислав Лем", Status: model.StatusPlanned, UserID: uuid.New(), AddedDate: time.Now()}

	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO books")).
		WithArgs(append([]driver.Value{book.Title, book.Author, "PLANNED"}, anyArgs(7)...)...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := s.repo.Save(context.Background(), book)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), int64(9), id)
}

func (s *postgresRepoSuite) Test_Save_AlreadyExists() {
	book := model.Book{Title: "Солярис", Status: model.StatusPlanned, UserID: uuid.New(), AddedDate: time.Now()}

	s.mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, title) DO NOTHING")).
		WithArgs(anyArgs(10)...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.repo.Save(context.Background(), book)

	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *postgresRepoSuite) Test_Save_DbErr() {
	expectedErr := errors.New("connection reset")

	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO books")).
		WithArgs(anyArgs(10)...).
		WillReturnError(expectedErr)

	_, err := s.repo.Save(context.Background(), model.Book{Title: "x"})

	assert.ErrorIs(s.T(), err, expectedErr)
}

func (s *postgresRepoSuite) Test_Update_Success() {
	page := 10
	book := model.Book{ID: 4, Status: model.StatusReading, CurrentPage: &page}

	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE books SET")).
		WithArgs("READING", nil, nil, int64(10), nil, nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.repo.Update(context.Background(), book)

	assert.Nil(s.T(), err)
}

func (s *postgresRepoSuite) Test_Update_NotFound() {
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE books SET")).
		WithArgs(anyArgs(7)...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.repo.Update(context.Background(), model.Book{ID: 4})

	assert.ErrorIs(s.T(), err, ErrNoRows)
}

func (s *postgresRepoSuite) Test_DeleteByID_Success() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM books WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.repo.DeleteByID(context.Background(), 4)

	assert.Nil(s.T(), err)
}

func (s *postgresRepoSuite) Test_FindUserByTelegramID_NoRows() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE telegram_id = $1")).
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "telegram_id", "username", "first_name", "last_name", "modified_at"}))

	_, err := s.repo.FindUserByTelegramID(context.Background(), 77)

	assert.ErrorIs(s.T(), err, ErrNoRows)
}

func (s *postgresRepoSuite) Test_SaveUser_Success() {
	user := model.User{ID: uuid.New(), TelegramID: 77, Username: "reader", FirstName: "Анна"}
	modified := time.Now()

	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.TelegramID, user.Username, user.FirstName, user.LastName).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "telegram_id", "username", "first_name", "last_name", "modified_at"}).
				AddRow(user.ID.String(), int64(77), "reader", "Анна", "", modified),
		)

	saved, err := s.repo.SaveUser(context.Background(), user)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), user.ID, saved.ID)
	assert.Equal(s.T(), int64(77), saved.TelegramID)
	assert.Equal(s.T(), "Анна", saved.FirstName)
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}
