package model

// CharsPerPage is the number of characters counted as one printed page.
const CharsPerPage = 1800

type CatalogCandidate struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	TotalPages *int   `json:"totalPages,omitempty"`
}

// PagesFromVolume converts a volume given in thousands of characters into pages, rounding up.
func PagesFromVolume(thousandChars int) int {
	if thousandChars <= 0 {
		return 0
	}
	chars := thousandChars * 1000
	return (chars + CharsPerPage - 1) / CharsPerPage
}
