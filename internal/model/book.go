package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Author      string     `db:"author"`
	Status      BookStatus `db:"status"`
	UserID      uuid.UUID  `db:"user_id"`
	AddedDate   time.Time  `db:"added_date"`
	StartDate   *time.Time `db:"start_date"`
	FinishDate  *time.Time `db:"finish_date"`
	CurrentPage *int       `db:"current_page"`
	Rating      *int       `db:"rating"`
	TotalPages  *int       `db:"total_pages"`
	ModifiedAt  time.Time  `db:"modified_at"`
}

const (
	MinRating = 1
	MaxRating = 10

	// MaxPage fits the integer column of the books table
	MaxPage = math.MaxInt32
)

// ApplyStatus changes the status and stamps start/finish dates that are still unset.
func (b *Book) ApplyStatus(status BookStatus, today time.Time) {
	b.Status = status
	switch status {
	case StatusReading:
		if b.StartDate == nil {
			b.StartDate = &today
		}
	case StatusRead:
		if b.FinishDate == nil {
			b.FinishDate = &today
		}
	}
}

// ApplyPage stores the current page. Setting the first page of a planned book starts reading it.
func (b *Book) ApplyPage(page int, today time.Time) {
	firstPage := b.CurrentPage == nil
	b.CurrentPage = &page
	if firstPage && b.Status == StatusPlanned {
		b.ApplyStatus(StatusReading, today)
	}
}
