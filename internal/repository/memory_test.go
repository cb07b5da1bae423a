package repository

import (
	"context"
	"testing"

	"book_tracker_tgbot/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	owner := uuid.New()

	id1, err := repo.Save(ctx, model.Book{Title: "Пикник на обочине", UserID: owner, Status: model.StatusPlanned})
	require.NoError(t, err)
	id2, err := repo.Save(ctx, model.Book{Title: "Трудно быть богом", UserID: owner, Status: model.StatusPlanned})
	require.NoError(t, err)
	_, err = repo.Save(ctx, model.Book{Title: "Дюна", UserID: uuid.New(), Status: model.StatusPlanned})
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)

	books, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Пикник на обочине", books[0].Title)
	assert.Equal(t, "Трудно быть богом", books[1].Title)

	book, err := repo.FindByOwnerAndTitle(ctx, owner, "Трудно быть богом")
	require.NoError(t, err)
	assert.Equal(t, id2, book.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemory_SaveDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	owner := uuid.New()

	_, err := repo.Save(ctx, model.Book{Title: "Солярис", UserID: owner})
	require.NoError(t, err)

	_, err = repo.Save(ctx, model.Book{Title: "Солярис", UserID: owner})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// same title for another reader is fine
	_, err = repo.Save(ctx, model.Book{Title: "Солярис", UserID: uuid.New()})
	assert.NoError(t, err)
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	id, err := repo.Save(ctx, model.Book{Title: "Солярис", UserID: uuid.New(), Status: model.StatusPlanned})
	require.NoError(t, err)

	book, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	book.Status = model.StatusDropped
	require.NoError(t, repo.Update(ctx, book))

	book, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDropped, book.Status)

	require.NoError(t, repo.DeleteByID(ctx, id))

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrNoRows)

	assert.ErrorIs(t, repo.Update(ctx, book), ErrNoRows)
	assert.NoError(t, repo.DeleteByID(ctx, id))
}

func TestMemory_SaveUserKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.FindUserByTelegramID(ctx, 10)
	assert.ErrorIs(t, err, ErrNoRows)

	first, err := repo.SaveUser(ctx, model.User{TelegramID: 10, FirstName: "Анна"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := repo.SaveUser(ctx, model.User{ID: uuid.New(), TelegramID: 10, FirstName: "Аня"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindUserByTelegramID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Аня", found.FirstName)
}
