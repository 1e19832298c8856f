package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/booknotesapp/booknotes-server/internal/domain"
	"github.com/booknotesapp/booknotes-server/internal/store"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title, author, notes, rating, date_read, created_at, updated_at`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Notes,
		&b.Rating,
		&b.DateRead,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	b.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// ListBooks returns all book notes ordered by the given sort mode.
func (s *Store) ListBooks(ctx context.Context, sort domain.SortMode) ([]domain.Book, error) {
	// sort.OrderBy is a total mapping over a closed enum, never user
	// input, so interpolating it is safe.
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY `+sort.OrderBy())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetTopBook returns the highest-rated note, ties broken by most
// recent date read. Returns store.ErrNotFound when the table is empty.
func (s *Store) GetTopBook(ctx context.Context) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY rating DESC, date_read DESC LIMIT 1`)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetBook retrieves a book note by id.
// Returns store.ErrNotFound if the note does not exist.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBook inserts a new book note and fills in its ID and timestamps.
// Returns store.ErrAlreadyExists when the title+author pair is already stored.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	now := time.Now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO books (title, author, notes, rating, date_read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		book.Title,
		book.Author,
		book.Notes,
		book.Rating,
		book.DateRead,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	book.ID = id
	book.CreatedAt = now
	book.UpdatedAt = now
	return nil
}

// UpdateBookNotes sets the rating and notes of an existing note.
// Rating range validation is the caller's responsibility.
func (s *Store) UpdateBookNotes(ctx context.Context, id int64, rating int, notes string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE books SET rating = ?, notes = ?, updated_at = ? WHERE id = ?`,
		rating, notes, formatTime(time.Now()), id)
	return err
}

// DeleteBook removes the note with the given id.
// Deleting an id that does not exist is a no-op.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	return err
}

// countBooks reports the number of stored notes. Used by tests to
// assert row-count invariants.
func (s *Store) countBooks(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}
