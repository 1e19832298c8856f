// Package service provides the business logic layer for book notes
// and autocomplete suggestions.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/booknotesapp/booknotes-server/internal/domain"
	"github.com/booknotesapp/booknotes-server/internal/errors"
	"github.com/booknotesapp/booknotes-server/internal/store"
)

// BookService orchestrates book-note operations.
//
// Store failures are logged here and returned as typed errors; the
// HTTP layer decides per route whether a failure degrades to an empty
// render or a redirect. The store itself never swallows errors.
type BookService struct {
	store  store.BookStore
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store store.BookStore, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// ListBooks returns all book notes in the given order.
func (s *BookService) ListBooks(ctx context.Context, sort domain.SortMode) ([]domain.Book, error) {
	books, err := s.store.ListBooks(ctx, sort)
	if err != nil {
		s.logger.Error("Failed to list books", "error", err, "sort", sort)
		return nil, errors.Wrap(err, errors.CodeInternal, "list book notes")
	}
	return books, nil
}

// TopBook returns the highest-rated, most recently read note, or nil
// (with no error) when there are no notes at all.
func (s *BookService) TopBook(ctx context.Context) (*domain.Book, error) {
	top, err := s.store.GetTopBook(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to get top book", "error", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "get top book")
	}
	return top, nil
}

// GetBook returns the note with the given id.
// Returns errors.ErrNotFound when no such note exists.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("book note %d not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get book note")
	}
	return book, nil
}

// AddBook inserts a new note. Title, author and notes are trimmed.
// Returns errors.ErrAlreadyExists when the title+author pair is taken,
// or a CodeInternal error on any other store failure. Input validation
// happens at the HTTP boundary before this is called.
func (s *BookService) AddBook(ctx context.Context, book *domain.Book) error {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.Notes = strings.TrimSpace(book.Notes)

	if err := s.store.CreateBook(ctx, book); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return errors.AlreadyExists("book note already exists").WithCause(err)
		}
		s.logger.Error("Failed to add book note", "error", err, "title", book.Title, "author", book.Author)
		return errors.Wrap(err, errors.CodeInternal, "add book note")
	}

	s.logger.Info("Book note added", "id", book.ID, "title", book.Title, "author", book.Author)
	return nil
}

// UpdateBook sets the rating and notes of an existing note.
// Rating range validation happens at the HTTP boundary.
func (s *BookService) UpdateBook(ctx context.Context, id int64, rating int, notes string) error {
	if err := s.store.UpdateBookNotes(ctx, id, rating, strings.TrimSpace(notes)); err != nil {
		s.logger.Error("Failed to update book note", "error", err, "id", id)
		return errors.Wrap(err, errors.CodeInternal, "update book note")
	}
	return nil
}

// DeleteBook removes the note with the given id. Idempotent.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		s.logger.Error("Failed to delete book note", "error", err, "id", id)
		return errors.Wrap(err, errors.CodeInternal, "delete book note")
	}
	return nil
}
