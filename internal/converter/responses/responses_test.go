package responses

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/model/tg/tgCallback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBooks(n int) []model.Book {
	books := make([]model.Book, 0, n)
	for i := 0; i < n; i++ {
		status := model.StatusPlanned
		if i%3 == 0 {
			status = model.StatusReading
		}
		books = append(books, model.Book{
			ID:     int64(i + 1),
			Title:  fmt.Sprintf("Книга %d", i),
			Author: "Автор",
			Status: status,
		})
	}
	return books
}

func bookButtonIDs(msg model.OutMessage) []string {
	res := make([]string, 0)
	for _, row := range msg.Keyboard {
		for _, btn := range row {
			if strings.HasPrefix(btn.Data, tgCallback.ManageBook+":") {
				res = append(res, btn.Data)
			}
		}
	}
	return res
}

func hasButton(msg model.OutMessage, data string) bool {
	for _, row := range msg.Keyboard {
		for _, btn := range row {
			if btn.Data == data {
				return true
			}
		}
	}
	return false
}

func TestBookList_FirstPageOfTwentyFive(t *testing.T) {
	books := makeBooks(25)

	msg := BookList(books, nil, 0, 10)

	ids := bookButtonIDs(msg)
	require.Len(t, ids, 10)
	assert.Equal(t, tgCallback.ManageBookData(1), ids[0])
	assert.Equal(t, tgCallback.ManageBookData(10), ids[9])
	assert.True(t, hasButton(msg, tgCallback.NextPage))
	assert.False(t, hasButton(msg, tgCallback.PrevPage))

	// two fixed rows close the keyboard
	last := msg.Keyboard[len(msg.Keyboard)-2:]
	assert.Equal(t, tgCallback.ChangeFilter, last[0][0].Data)
	assert.Equal(t, tgCallback.AddBook, last[1][0].Data)
}

func TestBookList_LastPageOfTwentyFive(t *testing.T) {
	books := makeBooks(25)

	msg := BookList(books, nil, 2, 10)

	ids := bookButtonIDs(msg)
	require.Len(t, ids, 5)
	assert.Equal(t, tgCallback.ManageBookData(21), ids[0])
	assert.Equal(t, tgCallback.ManageBookData(25), ids[4])
	assert.True(t, hasButton(msg, tgCallback.PrevPage))
	assert.False(t, hasButton(msg, tgCallback.NextPage))
	assert.Contains(t, msg.Text, "Книга 23 - Автор - Запланировано")
	assert.Contains(t, msg.Text, "Книга 24 - Автор - Читаю")
}

func TestBookList_HugePage(t *testing.T) {
	books := makeBooks(25)

	for _, page := range []int{3, 1000, math.MaxInt32, math.MaxInt} {
		msg := BookList(books, nil, page, 10)

		assert.Empty(t, bookButtonIDs(msg))
		assert.Contains(t, msg.Text, emptyListPlaceholder)
		assert.True(t, hasButton(msg, tgCallback.PrevPage))
		assert.False(t, hasButton(msg, tgCallback.NextPage))
	}
}

func TestBookList_Filter(t *testing.T) {
	books := makeBooks(25)
	reading := model.StatusReading

	msg := BookList(books, &reading, 0, 10)

	assert.Contains(t, msg.Text, "(Читаю)")
	ids := bookButtonIDs(msg)
	require.Len(t, ids, 9)
	for _, b := range FilterBooks(books, &reading) {
		assert.Equal(t, model.StatusReading, b.Status)
	}
	assert.False(t, hasButton(msg, tgCallback.NextPage))

	assert.Len(t, bookButtonIDs(BookList(books, nil, 0, 100)), 25)
}

func TestBookList_EmptyHasNoPaginationRow(t *testing.T) {
	msg := BookList(nil, nil, 0, 10)

	assert.Contains(t, msg.Text, emptyListPlaceholder)
	require.Len(t, msg.Keyboard, 2)
}

func TestBookList_EscapesHTML(t *testing.T) {
	books := []model.Book{{ID: 1, Title: "<b>Тег</b> & co", Author: "A", Status: model.StatusRead}}

	msg := BookList(books, nil, 0, 10)

	assert.Contains(t, msg.Text, "&lt;b&gt;Тег&lt;/b&gt; &amp; co")
	assert.Equal(t, "<b>Тег</b> & co", msg.Keyboard[0][0].Text)
}

func TestPageOfBooks(t *testing.T) {
	books := makeBooks(25)

	assert.Len(t, PageOfBooks(books, 0, 10), 10)
	assert.Len(t, PageOfBooks(books, 2, 10), 5)
	assert.Empty(t, PageOfBooks(books, 3, 10))
	assert.Empty(t, PageOfBooks(books, -1, 10))
	assert.Empty(t, PageOfBooks(books, 0, 0))
	assert.Len(t, PageOfBooks(books[:20], 1, 10), 10)
	assert.Empty(t, PageOfBooks(books[:20], 2, 10))
}

func TestStatusKeyboards(t *testing.T) {
	filter := FilterMenu()
	// 7 statuses make 4 rows, then show all and back
	require.Len(t, filter.Keyboard, 6)
	assert.Len(t, filter.Keyboard[0], 2)
	assert.Len(t, filter.Keyboard[3], 1)
	assert.Equal(t, tgCallback.FilterByStatusData(model.StatusPlanned), filter.Keyboard[0][0].Data)
	assert.Equal(t, tgCallback.FilterStatusClear, filter.Keyboard[4][0].Data)
	assert.Equal(t, tgCallback.ShowBooks, filter.Keyboard[5][0].Data)

	set := StatusMenu()
	require.Len(t, set.Keyboard, 5)
	assert.Equal(t, tgCallback.SetStatusData(model.StatusOnHold), set.Keyboard[3][0].Data)
	assert.Equal(t, tgCallback.CancelUpdateBook, set.Keyboard[4][0].Data)
}

func TestSearchResults(t *testing.T) {
	msg := SearchResults([]model.CatalogCandidate{
		{Title: "Солярис", Author: "Станислав Лем"},
		{Title: "Сборник"},
	})

	require.Len(t, msg.Keyboard, 3)
	assert.Equal(t, "Солярис - Станислав Лем", msg.Keyboard[0][0].Text)
	assert.Equal(t, tgCallback.SelectBookData(0), msg.Keyboard[0][0].Data)
	assert.Equal(t, "Сборник", msg.Keyboard[1][0].Text)
	assert.Equal(t, tgCallback.CancelAddedBook, msg.Keyboard[2][0].Data)
}

func TestBookMenu(t *testing.T) {
	page, total, rating := 42, 300, 9
	msg := BookMenu(model.Book{
		ID:          5,
		Title:       "Солярис",
		Author:      "Станислав Лем",
		Status:      model.StatusReading,
		CurrentPage: &page,
		TotalPages:  &total,
		Rating:      &rating,
	})

	assert.Contains(t, msg.Text, "<b>Солярис</b>")
	assert.Contains(t, msg.Text, "Страница: 42 из 300")
	assert.Contains(t, msg.Text, "Оценка: 9/10")
	assert.True(t, hasButton(msg, tgCallback.ChangeStatusData(5)))
	assert.True(t, hasButton(msg, tgCallback.UpdatePageData(5)))
	assert.True(t, hasButton(msg, tgCallback.RateBookData(5)))
	assert.True(t, hasButton(msg, tgCallback.DeleteBookData(5)))
}

func TestStatistics(t *testing.T) {
	msg := Statistics(model.Statistics{YearBooks: 3, YearPages: 900, BiggestBookTitle: "Война и мир", BiggestBookPages: 1300})

	assert.Contains(t, msg.Text, "За год: книг 3, страниц 900")
	assert.Contains(t, msg.Text, "«Война и мир» (1300 стр.)")

	empty := Statistics(model.Statistics{})
	assert.NotContains(t, empty.Text, "Самая большая")
}
