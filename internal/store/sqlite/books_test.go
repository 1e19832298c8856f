package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/booknotesapp/booknotes-server/internal/domain"
	"github.com/booknotesapp/booknotes-server/internal/store"
)

// makeTestBook creates a domain.Book with sensible defaults for testing.
func makeTestBook(title, author string) *domain.Book {
	return &domain.Book{
		Title:    title,
		Author:   author,
		Notes:    "some notes",
		Rating:   7,
		DateRead: "2024-03-15",
	}
}

func TestCreateAndGetBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book := makeTestBook("Dune", "Frank Herbert")
	book.Rating = 9
	book.DateRead = "2024-01-01"

	if err := s.CreateBook(ctx, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("expected generated ID")
	}
	if book.CreatedAt.IsZero() || book.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := s.GetBook(ctx, book.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}

	if got.Title != "Dune" {
		t.Errorf("Title: got %q, want %q", got.Title, "Dune")
	}
	if got.Author != "Frank Herbert" {
		t.Errorf("Author: got %q, want %q", got.Author, "Frank Herbert")
	}
	if got.Notes != "some notes" {
		t.Errorf("Notes: got %q, want %q", got.Notes, "some notes")
	}
	if got.Rating != 9 {
		t.Errorf("Rating: got %d, want 9", got.Rating)
	}
	if got.DateRead != "2024-01-01" {
		t.Errorf("DateRead: got %q, want %q", got.DateRead, "2024-01-01")
	}
}

func TestGetBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetBook(context.Background(), 42)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBook_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateBook(ctx, makeTestBook("Dune", "Frank Herbert")); err != nil {
		t.Fatalf("first CreateBook: %v", err)
	}

	err := s.CreateBook(ctx, makeTestBook("Dune", "Frank Herbert"))
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The failed insert must leave the table unchanged.
	n, err := s.countBooks(ctx)
	if err != nil {
		t.Fatalf("countBooks: %v", err)
	}
	if n != 1 {
		t.Errorf("row count: got %d, want 1", n)
	}
}

func TestCreateBook_SameTitleDifferentAuthor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateBook(ctx, makeTestBook("Dune", "Frank Herbert")); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	// Uniqueness is over the (title, author) pair, not title alone.
	if err := s.CreateBook(ctx, makeTestBook("Dune", "Brian Herbert")); err != nil {
		t.Errorf("CreateBook with different author: %v", err)
	}
}

func seedListBooks(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	books := []*domain.Book{
		{Title: "A", Author: "AA", Rating: 3, DateRead: "2023-05-01"},
		{Title: "B", Author: "BB", Rating: 9, DateRead: "2024-02-01"},
		{Title: "C", Author: "CC", Rating: 9, DateRead: "2023-11-01"},
		{Title: "D", Author: "DD", Rating: 5, DateRead: "2024-06-01"},
	}
	for _, b := range books {
		if err := s.CreateBook(ctx, b); err != nil {
			t.Fatalf("seed %s: %v", b.Title, err)
		}
	}
}

func TestListBooks_Ordering(t *testing.T) {
	s := newTestStore(t)
	seedListBooks(t, s)

	tests := []struct {
		name string
		sort domain.SortMode
		want []string // titles in expected order
	}{
		{"date old", domain.SortDateOld, []string{"A", "C", "B", "D"}},
		{"date new", domain.SortDateNew, []string{"D", "B", "C", "A"}},
		{"rating high", domain.SortRatingHigh, []string{"B", "C", "D", "A"}},
		{"rating low", domain.SortRatingLow, []string{"A", "D", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := s.ListBooks(context.Background(), tt.sort)
			if err != nil {
				t.Fatalf("ListBooks: %v", err)
			}
			if len(books) != len(tt.want) {
				t.Fatalf("got %d books, want %d", len(books), len(tt.want))
			}
			for i, title := range tt.want {
				if books[i].Title != title {
					t.Errorf("position %d: got %q, want %q", i, books[i].Title, title)
				}
			}
		})
	}
}

func TestListBooks_Empty(t *testing.T) {
	s := newTestStore(t)

	books, err := s.ListBooks(context.Background(), domain.DefaultSort)
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty list, got %d books", len(books))
	}
}

func TestGetTopBook(t *testing.T) {
	s := newTestStore(t)
	seedListBooks(t, s)

	// B and C share the top rating; B was read more recently.
	top, err := s.GetTopBook(context.Background())
	if err != nil {
		t.Fatalf("GetTopBook: %v", err)
	}
	if top.Title != "B" {
		t.Errorf("top book: got %q, want %q", top.Title, "B")
	}
}

func TestGetTopBook_Empty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTopBook(context.Background())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBookNotes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book := makeTestBook("Dune", "Frank Herbert")
	if err := s.CreateBook(ctx, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if err := s.UpdateBookNotes(ctx, book.ID, 10, "a masterpiece"); err != nil {
		t.Fatalf("UpdateBookNotes: %v", err)
	}

	got, err := s.GetBook(ctx, book.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Rating != 10 {
		t.Errorf("Rating: got %d, want 10", got.Rating)
	}
	if got.Notes != "a masterpiece" {
		t.Errorf("Notes: got %q, want %q", got.Notes, "a masterpiece")
	}
	// Title and author are immutable through this operation.
	if got.Title != "Dune" || got.Author != "Frank Herbert" {
		t.Errorf("title/author changed: %q / %q", got.Title, got.Author)
	}
}

func TestDeleteBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book := makeTestBook("Dune", "Frank Herbert")
	if err := s.CreateBook(ctx, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if err := s.DeleteBook(ctx, book.ID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}

	_, err := s.GetBook(ctx, book.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteBook_MissingID(t *testing.T) {
	s := newTestStore(t)

	// Idempotent: deleting a non-existent id succeeds.
	if err := s.DeleteBook(context.Background(), 999); err != nil {
		t.Errorf("DeleteBook of missing id: %v", err)
	}
}
