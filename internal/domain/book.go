// Package domain contains the core entities for the book-notes server.
package domain

import "time"

// Rating bounds accepted for a book note.
const (
	MinRating = 1
	MaxRating = 10
)

// Book is a single book note: one book the user has read, with a
// rating in [MinRating, MaxRating] and optional free-text notes.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Notes     string    `json:"notes,omitempty"`
	Rating    int       `json:"rating"`
	DateRead  string    `json:"date_read"` // ISO date, YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
