package model

type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingTitle
	StateAwaitingPage
	StateAwaitingRating
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingTitle:
		return "awaiting_title"
	case StateAwaitingPage:
		return "awaiting_page"
	case StateAwaitingRating:
		return "awaiting_rating"
	default:
		return "unknown"
	}
}

// Session is the conversational state of one chat.
type Session struct {
	State           SessionState       `json:"state"`
	SearchResults   []CatalogCandidate `json:"searchResults,omitempty"`
	CurrentPage     int                `json:"currentPage"`
	StatusFilter    *BookStatus        `json:"statusFilter,omitempty"`
	BookIDForChange *int64             `json:"bookIdForChange,omitempty"`
}

func (s *Session) IncrementPage() {
	s.CurrentPage++
}

// DecrementPage never goes below the first page.
func (s *Session) DecrementPage() {
	if s.CurrentPage > 0 {
		s.CurrentPage--
	}
}

func (s *Session) SetCurrentPage(page int) {
	s.CurrentPage = max(page, 0)
}

func (s *Session) ClearSearchResults() {
	s.SearchResults = nil
}

func (s *Session) SetStatusFilter(status *BookStatus) {
	s.StatusFilter = status
}

func (s *Session) SetBookIDForChange(id int64) {
	s.BookIDForChange = &id
}

func (s *Session) ClearBookIDForChange() {
	s.BookIDForChange = nil
}
