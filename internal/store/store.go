// Package store defines the persistence interface for book notes and
// the sentinel errors implementations must return.
package store

import (
	"context"

	"github.com/booknotesapp/booknotes-server/internal/domain"
)

// BookStore is the persistence interface for book notes.
//
// Every operation is a single statement against the store and relies
// on the database's own transactional guarantees; there are no
// multi-statement transactions. Implementations surface every failure
// as an error: the decision to swallow a failure and degrade belongs
// to the caller, not the store.
type BookStore interface {
	// ListBooks returns all book notes ordered by the given sort mode.
	ListBooks(ctx context.Context, sort domain.SortMode) ([]domain.Book, error)

	// GetTopBook returns the note with the highest rating, ties broken
	// by most recent date read. Returns ErrNotFound when the table is
	// empty.
	GetTopBook(ctx context.Context) (*domain.Book, error)

	// GetBook returns the note with the given id, or ErrNotFound.
	GetBook(ctx context.Context, id int64) (*domain.Book, error)

	// CreateBook inserts a new note and fills in its ID and
	// timestamps. Returns ErrAlreadyExists when a note with the same
	// title and author is already stored.
	CreateBook(ctx context.Context, book *domain.Book) error

	// UpdateBookNotes sets the rating and notes of an existing note.
	// Rating range validation is the caller's responsibility.
	UpdateBookNotes(ctx context.Context, id int64, rating int, notes string) error

	// DeleteBook removes the note with the given id. Deleting an id
	// that does not exist is not an error.
	DeleteBook(ctx context.Context, id int64) error
}
