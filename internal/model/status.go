package model

type BookStatus string

const (
	StatusPlanned      BookStatus = "PLANNED"
	StatusReading      BookStatus = "READING"
	StatusRead         BookStatus = "READ"
	StatusReadingAgain BookStatus = "READING_AGAIN"
	StatusReadAgain    BookStatus = "READ_AGAIN"
	StatusDropped      BookStatus = "DROPPED"
	StatusOnHold       BookStatus = "ON_HOLD"
)

var allStatuses = []BookStatus{
	StatusPlanned,
	StatusReading,
	StatusRead,
	StatusReadingAgain,
	StatusReadAgain,
	StatusDropped,
	StatusOnHold,
}

var statusDisplayNames = map[BookStatus]string{
	StatusPlanned:      "Запланировано",
	StatusReading:      "Читаю",
	StatusRead:         "Прочитана",
	StatusReadingAgain: "Перечитываю",
	StatusReadAgain:    "Перечитана",
	StatusDropped:      "Брошено",
	StatusOnHold:       "Отложено",
}

// AllStatuses returns every status in display order.
func AllStatuses() []BookStatus {
	res := make([]BookStatus, len(allStatuses))
	copy(res, allStatuses)
	return res
}

func ParseBookStatus(s string) (BookStatus, bool) {
	status := BookStatus(s)
	_, ok := statusDisplayNames[status]
	return status, ok
}

func (s BookStatus) Valid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

func (s BookStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
