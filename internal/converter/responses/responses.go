package responses

import (
	"fmt"
	"html"
	"strings"

	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/internal/model/tg/tgCallback"
)

const dateLayout = "02.01.2006"

const (
	enterTitleText       = "Введите название книги или автора:"
	nothingFoundText     = "Ничего не нашлось 😢 Попробуйте другой запрос."
	chooseBookText       = "Выберите книгу:"
	addingCancelledText  = "Добавление книги отменено."
	unknownCommandText   = "Неизвестная команда. Попробуйте /start"
	unknownActionText    = "Неизвестное действие. Попробуйте снова."
	notFoundByIndexText  = "Не удалось найти книгу по выбранному индексу. Выполните поиск ещё раз."
	bookNotFoundText     = "Книга не найдена."
	noBookSelectedText   = "Книга не выбрана для изменения статуса."
	chooseFilterText     = "Выберите статус для фильтрации 📖"
	chooseStatusText     = "Выберите новый статус книги:"
	enterPageText        = "Введите номер текущей страницы:"
	invalidPageText      = "Номер страницы должен быть целым числом больше нуля. Попробуйте ещё раз:"
	enterRatingText      = "Введите оценку от 1 до 10:"
	invalidRatingText    = "Оценка должна быть целым числом от 1 до 10. Попробуйте ещё раз:"
	internalErrText      = "Что-то пошло не так... Попробуйте позже."
	emptyListPlaceholder = "Нет книг для отображения."

	helpText = `<b>Как пользоваться ботом</b>

/start - главное меню
/books - список ваших книг
/stats - статистика чтения
/help - эта подсказка

Добавьте книгу через поиск, затем откройте её из списка, чтобы отметить текущую страницу, поставить оценку или сменить статус.`
)

// Welcome is the greeting shown on /start.
func Welcome(phrase string) model.OutMessage {
	return model.OutMessage{
		Text: html.EscapeString(phrase),
		Keyboard: [][]model.Button{
			{
				{Text: "📚 Мои книги", Data: tgCallback.ShowBooks},
				{Text: "➕ Добавить книгу", Data: tgCallback.AddBook},
			},
			{
				{Text: "📊 Статистика", Data: tgCallback.ShowStats},
			},
		},
	}
}

func Help() model.OutMessage {
	return model.OutMessage{Text: helpText}
}

func EnterTitle() model.OutMessage {
	return model.OutMessage{Text: enterTitleText}
}

// SearchResults lists the candidates, button i selects candidate i.
func SearchResults(candidates []model.CatalogCandidate) model.OutMessage {
	rows := make([][]model.Button, 0, len(candidates)+1)
	for i, c := range candidates {
		rows = append(rows, []model.Button{{Text: candidateLabel(c), Data: tgCallback.SelectBookData(i)}})
	}
	rows = append(rows, []model.Button{{Text: "❌ Отмена", Data: tgCallback.CancelAddedBook}})

	return model.OutMessage{Text: chooseBookText, Keyboard: rows}
}

func candidateLabel(c model.CatalogCandidate) string {
	if c.Author == "" {
		return c.Title
	}
	return c.Title + " - " + c.Author
}

func NothingFound() model.OutMessage {
	return model.OutMessage{
		Text: nothingFoundText,
		Keyboard: [][]model.Button{
			{{Text: "🔍 Искать ещё раз", Data: tgCallback.AddBook}},
			{{Text: "📚 Мои книги", Data: tgCallback.ShowBooks}},
		},
	}
}

func AddingCancelled() model.OutMessage {
	return model.OutMessage{Text: addingCancelledText}
}

func UnknownCommand() model.OutMessage {
	return model.OutMessage{Text: unknownCommandText}
}

func UnknownAction() model.OutMessage {
	return model.OutMessage{Text: unknownActionText}
}

func BookNotFoundByIndex() model.OutMessage {
	return model.OutMessage{Text: notFoundByIndexText}
}

func BookNotFound() model.OutMessage {
	return model.OutMessage{
		Text:     bookNotFoundText,
		Keyboard: [][]model.Button{{{Text: "📚 К списку", Data: tgCallback.ShowBooks}}},
	}
}

func NoBookSelected() model.OutMessage {
	return model.OutMessage{Text: noBookSelectedText}
}

func UnknownStatus(raw string) model.OutMessage {
	return model.OutMessage{Text: "Неизвестный статус: " + html.EscapeString(raw)}
}

func InternalError() model.OutMessage {
	return model.OutMessage{Text: internalErrText}
}

func BookAdded(title string) model.OutMessage {
	return model.OutMessage{Text: fmt.Sprintf("Книга «%s» добавлена 📚", html.EscapeString(title))}
}

func BookAlreadyExists(title string) model.OutMessage {
	return model.OutMessage{Text: fmt.Sprintf("Книга «%s» уже есть в вашем списке.", html.EscapeString(title))}
}

func BookDeleted(title string) model.OutMessage {
	return model.OutMessage{
		Text:     fmt.Sprintf("Книга «%s» удалена 🗑", html.EscapeString(title)),
		Keyboard: [][]model.Button{{{Text: "📚 К списку", Data: tgCallback.ShowBooks}}},
	}
}

// FilterMenu offers every status as a list filter, two per row.
func FilterMenu() model.OutMessage {
	rows := statusRows(tgCallback.FilterByStatusData)
	rows = append(rows,
		[]model.Button{{Text: "📋 Показать все", Data: tgCallback.FilterStatusClear}},
		[]model.Button{{Text: "🔙 Назад", Data: tgCallback.ShowBooks}},
	)
	return model.OutMessage{Text: chooseFilterText, Keyboard: rows}
}

// StatusMenu offers every status for the book being edited, two per row.
func StatusMenu() model.OutMessage {
	rows := statusRows(tgCallback.SetStatusData)
	rows = append(rows, []model.Button{{Text: "❌ Отмена", Data: tgCallback.CancelUpdateBook}})
	return model.OutMessage{Text: chooseStatusText, Keyboard: rows}
}

func statusRows(data func(model.BookStatus) string) [][]model.Button {
	statuses := model.AllStatuses()
	rows := make([][]model.Button, 0, (len(statuses)+1)/2)
	for i, status := range statuses {
		if i%2 == 0 {
			rows = append(rows, make([]model.Button, 0, 2))
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], model.Button{Text: status.DisplayName(), Data: data(status)})
	}
	return rows
}

// BookMenu shows the book card with its edit actions.
func BookMenu(book model.Book) model.OutMessage {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(book.Title)))
	if book.Author != "" {
		sb.WriteString(fmt.Sprintf("Автор: %s\n", html.EscapeString(book.Author)))
	}
	sb.WriteString(fmt.Sprintf("Статус: %s\n", book.Status.DisplayName()))

	switch {
	case book.CurrentPage != nil && book.TotalPages != nil:
		sb.WriteString(fmt.Sprintf("Страница: %d из %d\n", *book.CurrentPage, *book.TotalPages))
	case book.CurrentPage != nil:
		sb.WriteString(fmt.Sprintf("Страница: %d\n", *book.CurrentPage))
	case book.TotalPages != nil:
		sb.WriteString(fmt.Sprintf("Страниц: %d\n", *book.TotalPages))
	}

	if book.Rating != nil {
		sb.WriteString(fmt.Sprintf("Оценка: %d/%d\n", *book.Rating, model.MaxRating))
	}
	if book.StartDate != nil {
		sb.WriteString(fmt.Sprintf("Начата: %s\n", book.StartDate.Format(dateLayout)))
	}
	if book.FinishDate != nil {
		sb.WriteString(fmt.Sprintf("Прочитана: %s\n", book.FinishDate.Format(dateLayout)))
	}

	return model.OutMessage{
		Text: sb.String(),
		Keyboard: [][]model.Button{
			{{Text: "🔄 Изменить статус", Data: tgCallback.ChangeStatusData(book.ID)}},
			{
				{Text: "📖 Обновить страницу", Data: tgCallback.UpdatePageData(book.ID)},
				{Text: "⭐ Оценить", Data: tgCallback.RateBookData(book.ID)},
			},
			{{Text: "🗑 Удалить", Data: tgCallback.DeleteBookData(book.ID)}},
			{{Text: "📚 К списку", Data: tgCallback.ShowBooks}},
		},
	}
}

func EnterPage() model.OutMessage {
	return model.OutMessage{Text: enterPageText}
}

func InvalidPage() model.OutMessage {
	return model.OutMessage{Text: invalidPageText}
}

func EnterRating() model.OutMessage {
	return model.OutMessage{Text: enterRatingText}
}

func InvalidRating() model.OutMessage {
	return model.OutMessage{Text: invalidRatingText}
}

func PageUpdated(book model.Book) model.OutMessage {
	return model.OutMessage{Text: fmt.Sprintf("Текущая страница книги «%s»: %d", html.EscapeString(book.Title), derefInt(book.CurrentPage))}
}

func RatingUpdated(book model.Book) model.OutMessage {
	return model.OutMessage{Text: fmt.Sprintf("Оценка книги «%s»: %d/%d", html.EscapeString(book.Title), derefInt(book.Rating), model.MaxRating)}
}

func StatusUpdated(book model.Book) model.OutMessage {
	return model.OutMessage{Text: fmt.Sprintf("Статус книги «%s»: %s", html.EscapeString(book.Title), book.Status.DisplayName())}
}

func Statistics(stats model.Statistics) model.OutMessage {
	sb := strings.Builder{}
	sb.WriteString("📊 <b>Статистика чтения</b>\n\n")
	sb.WriteString(fmt.Sprintf("Сегодня: книг %d, страниц %d\n", stats.TodayBooks, stats.TodayPages))
	sb.WriteString(fmt.Sprintf("За месяц: книг %d, страниц %d\n", stats.MonthBooks, stats.MonthPages))
	sb.WriteString(fmt.Sprintf("За год: книг %d, страниц %d\n", stats.YearBooks, stats.YearPages))
	if stats.BiggestBookTitle != "" {
		sb.WriteString(fmt.Sprintf("\nСамая большая книга за год: «%s» (%d стр.)\n", html.EscapeString(stats.BiggestBookTitle), stats.BiggestBookPages))
	}

	return model.OutMessage{
		Text:     sb.String(),
		Keyboard: [][]model.Button{{{Text: "📚 Мои книги", Data: tgCallback.ShowBooks}}},
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
