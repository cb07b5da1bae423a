package responses

import (
	"fmt"
	"html"
	"strings"

	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/model/tg/tgCallback"
)

// FilterBooks keeps the books with the given status, all of them when filter is nil.
// The order of books is kept.
func FilterBooks(books []model.Book, filter *model.BookStatus) []model.Book {
	if filter == nil {
		return books
	}

	res := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.Status == *filter {
			res = append(res, b)
		}
	}
	return res
}

// PageOfBooks returns books[page*size : page*size+size] clamped to the slice bounds.
// Pages past the end are empty.
func PageOfBooks(books []model.Book, page, size int) []model.Book {
	if page < 0 || size <= 0 {
		return books[:0]
	}

	total := len(books)
	from := total
	if page <= total/size {
		from = min(page*size, total)
	}
	to := min(from+size, total)
	return books[from:to]
}

// BookList renders one page of the filtered list with navigation buttons.
func BookList(books []model.Book, filter *model.BookStatus, page, size int) model.OutMessage {
	filtered := FilterBooks(books, filter)
	visible := PageOfBooks(filtered, page, size)

	sb := strings.Builder{}
	sb.WriteString("📚 <b>Список книг</b>")
	if filter != nil {
		sb.WriteString(fmt.Sprintf(" (%s)", filter.DisplayName()))
	}
	sb.WriteString(":\n\n")

	if len(visible) == 0 {
		sb.WriteString(emptyListPlaceholder)
	}
	for _, b := range visible {
		sb.WriteString(fmt.Sprintf("%s - %s - %s\n", html.EscapeString(b.Title), html.EscapeString(b.Author), b.Status.DisplayName()))
	}

	rows := make([][]model.Button, 0, len(visible)+3)
	for _, b := range visible {
		rows = append(rows, []model.Button{{Text: b.Title, Data: tgCallback.ManageBookData(b.ID)}})
	}

	if nav := paginationRow(page, len(filtered), size); len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows,
		[]model.Button{{Text: "📂 Изменить фильтр", Data: tgCallback.ChangeFilter}},
		[]model.Button{{Text: "➕ Добавить книгу", Data: tgCallback.AddBook}},
	)

	return model.OutMessage{Text: sb.String(), Keyboard: rows}
}

func paginationRow(page, total, size int) []model.Button {
	row := make([]model.Button, 0, 2)
	if page > 0 {
		row = append(row, model.Button{Text: "⬅️ Назад", Data: tgCallback.PrevPage})
	}
	if page >= 0 && page < total && (page+1)*size < total {
		row = append(row, model.Button{Text: "Вперёд ➡️", Data: tgCallback.NextPage})
	}
	return row
}
