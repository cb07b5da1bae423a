package tgCallback

import (
	"strconv"
	"strings"

	"book_tracker_tgbot/internal/model"
)

// Callback button identifiers
const (
	AddBook           string = "add_book"
	CancelAddedBook   string = "cancel_added_book"
	ShowBooks         string = "show_books"
	NextPage          string = "books_next_page"
	PrevPage          string = "books_prev_page"
	ChangeFilter      string = "change_filter"
	FilterStatusClear string = "filter_status_clear"
	CancelUpdateBook  string = "cancel_update_book"
	ShowStats         string = "show_stats"

	// commands with a parameter
	SelectBook     string = "select_book"
	FilterByStatus string = "filter_by_status"
	ManageBook     string = "manage_book"
	ChangeStatus   string = "change_status"
	UpdatePage     string = "update_page"
	RateBook       string = "rate_book"
	DeleteBook     string = "delete_book"
	SetStatus      string = "set_status"
)

const separator = ":"

// messages with buttons starting with these prefixes are removed after the press
var deletePrefixes = []string{
	"cancel",
	AddBook,
	PrevPage,
	NextPage,
	ChangeFilter,
	DeleteBook,
	SelectBook,
}

type Kind int

const (
	KindUnknown Kind = iota
	KindAddBook
	KindCancelAddedBook
	KindShowBooks
	KindSelectBook
	KindNextPage
	KindPrevPage
	KindChangeFilter
	KindFilterStatusClear
	KindFilterByStatus
	KindManageBook
	KindChangeStatus
	KindUpdatePage
	KindRateBook
	KindDeleteBook
	KindSetStatus
	KindCancelUpdateBook
	KindShowStats
)

var plainCommands = map[string]Kind{
	AddBook:           KindAddBook,
	CancelAddedBook:   KindCancelAddedBook,
	ShowBooks:         KindShowBooks,
	NextPage:          KindNextPage,
	PrevPage:          KindPrevPage,
	ChangeFilter:      KindChangeFilter,
	FilterStatusClear: KindFilterStatusClear,
	CancelUpdateBook:  KindCancelUpdateBook,
	ShowStats:         KindShowStats,
}

var bookCommands = map[string]Kind{
	ManageBook:   KindManageBook,
	ChangeStatus: KindChangeStatus,
	UpdatePage:   KindUpdatePage,
	RateBook:     KindRateBook,
	DeleteBook:   KindDeleteBook,
}

// Command is a parsed button payload.
// Only the field matching Kind is meaningful: BookID for book actions, Index for SelectBook,
// Status for FilterByStatus and SetStatus. Param keeps the raw parameter text.
type Command struct {
	Kind   Kind
	Raw    string
	Param  string
	BookID int64
	Index  int
	Status model.BookStatus
}

// Parse decodes "command" or "command:param" payloads. Malformed payloads yield KindUnknown,
// except set_status which keeps its kind so an unrecognised status can be reported.
func Parse(data string) Command {
	data = strings.TrimPrefix(data, "\f")
	cmd := Command{Kind: KindUnknown, Raw: data}

	name, param, hasParam := strings.Cut(data, separator)
	cmd.Param = param

	if !hasParam {
		if kind, ok := plainCommands[name]; ok {
			cmd.Kind = kind
		}
		return cmd
	}

	if kind, ok := bookCommands[name]; ok {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return cmd
		}
		cmd.Kind = kind
		cmd.BookID = id
		return cmd
	}

	switch name {
	case SelectBook:
		idx, err := strconv.Atoi(param)
		if err != nil {
			return cmd
		}
		cmd.Kind = KindSelectBook
		cmd.Index = idx
	case FilterByStatus:
		status, ok := model.ParseBookStatus(param)
		if !ok {
			return cmd
		}
		cmd.Kind = KindFilterByStatus
		cmd.Status = status
	case SetStatus:
		cmd.Kind = KindSetStatus
		cmd.Status = model.BookStatus(strings.TrimSpace(param))
	}

	return cmd
}

// DeletesSourceMessage reports whether the message carrying the pressed button should be removed.
func DeletesSourceMessage(data string) bool {
	data = strings.TrimPrefix(data, "\f")
	for _, prefix := range deletePrefixes {
		if strings.HasPrefix(data, prefix) {
			return true
		}
	}
	return false
}

func withParam(command, param string) string {
	return command + separator + param
}

func SelectBookData(index int) string {
	return withParam(SelectBook, strconv.Itoa(index))
}

func FilterByStatusData(status model.BookStatus) string {
	return withParam(FilterByStatus, string(status))
}

func SetStatusData(status model.BookStatus) string {
	return withParam(SetStatus, string(status))
}

func ManageBookData(id int64) string {
	return withParam(ManageBook, strconv.FormatInt(id, 10))
}

func ChangeStatusData(id int64) string {
	return withParam(ChangeStatus, strconv.FormatInt(id, 10))
}

func UpdatePageData(id int64) string {
	return withParam(UpdatePage, strconv.FormatInt(id, 10))
}

func RateBookData(id int64) string {
	return withParam(RateBook, strconv.FormatInt(id, 10))
}

func DeleteBookData(id int64) string {
	return withParam(DeleteBook, strconv.FormatInt(id, 10))
}
