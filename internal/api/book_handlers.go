package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/booknotesapp/booknotes-server/internal/domain"
	"github.com/booknotesapp/booknotes-server/internal/errors"
	"github.com/booknotesapp/booknotes-server/internal/validation"
)

// User-facing messages. The wording is part of the page contract.
const (
	msgLoadFailed    = "Something went wrong while loading your notes."
	msgMissingTitle  = "Please enter a book title."
	msgMissingAuthor = "Please enter the author name."
	msgBadRating     = "Rating must be between 1 and 10."
	msgMissingDate   = "Please select the date read."
	msgDuplicate     = "This book by the same author already exists in your notes."
	msgAddFailed     = "Could not add the note. Try again."
	msgNoteFailed    = "Could not open this note."
)

// addBookForm carries the /add form body. Checks run in field order;
// the first failure short-circuits with its message.
type addBookForm struct {
	Title    string `form:"title" validate:"required"`
	Author   string `form:"author" validate:"required"`
	Rating   int    `form:"rating" validate:"min=1,max=10"`
	DateRead string `form:"date_read" validate:"required"`
}

// editNoteForm carries the /edit form body.
type editNoteForm struct {
	Rating int `form:"rating" validate:"min=1,max=10"`
}

// addFormMessages maps a failed form field to its inline message.
var addFormMessages = map[string]string{
	"title":     msgMissingTitle,
	"author":    msgMissingAuthor,
	"rating":    msgBadRating,
	"date_read": msgMissingDate,
}

// handleIndex renders the list page.
// GET /?sort=
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sort := domain.ParseSortMode(r.URL.Query().Get("sort"))

	books, listErr := s.books.ListBooks(ctx, sort)
	top, topErr := s.books.TopBook(ctx)
	if listErr != nil || topErr != nil {
		// The page must still render: empty list, no top note,
		// generic message.
		s.renderIndex(w, indexData{Sort: sort, Error: msgLoadFailed})
		return
	}

	s.renderIndex(w, indexData{Books: books, TopBook: top, Sort: sort})
}

// handleAddBook validates and inserts a new note.
// POST /add
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The rating arrives as free text; a non-numeric value parses to 0
	// and fails the range check below. cover_id is accepted but unused.
	rating, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("rating")))
	form := addBookForm{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Author:   strings.TrimSpace(r.FormValue("author")),
		Rating:   rating,
		DateRead: strings.TrimSpace(r.FormValue("date_read")),
	}

	if err := s.validator.Validate(form); err != nil {
		msg := addFormMessages[validation.FirstField(err)]
		if msg == "" {
			msg = msgAddFailed
		}
		s.renderIndexWithMessage(ctx, w, msg)
		return
	}

	book := &domain.Book{
		Title:    form.Title,
		Author:   form.Author,
		Notes:    r.FormValue("notes"),
		Rating:   form.Rating,
		DateRead: form.DateRead,
	}

	if err := s.books.AddBook(ctx, book); err != nil {
		msg := msgAddFailed
		if errors.Is(err, errors.ErrAlreadyExists) {
			msg = msgDuplicate
		}
		s.renderIndexWithMessage(ctx, w, msg)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderIndexWithMessage re-renders the list page with an inline
// message, re-fetching the default-sorted list so the already-entered
// notes stay visible. Fetch failures degrade to an empty page here;
// the message being shown is the one that matters.
func (s *Server) renderIndexWithMessage(ctx context.Context, w http.ResponseWriter, msg string) {
	books, _ := s.books.ListBooks(ctx, domain.DefaultSort)
	top, _ := s.books.TopBook(ctx)
	s.renderIndex(w, indexData{
		Books:   books,
		TopBook: top,
		Sort:    domain.DefaultSort,
		Error:   msg,
	})
}

// handleViewNote renders a single note.
// GET /notes/{id}
func (s *Server) handleViewNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseNoteID(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		s.renderNote(w, noteData{Error: msgNoteFailed})
		return
	}

	s.renderNote(w, noteData{Book: book})
}

// handleEditNote updates the rating and notes of a note.
// POST /edit/{id}
func (s *Server) handleEditNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseNoteID(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	rating, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("rating")))
	if err := s.validator.Validate(editNoteForm{Rating: rating}); err != nil {
		// Re-render the note view with the range error; if the note
		// cannot be re-fetched, fall back to the list page.
		book, getErr := s.books.GetBook(ctx, id)
		if getErr != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.renderNote(w, noteData{Book: book, Error: msgBadRating})
		return
	}

	// Update failures are logged by the service; the user lands back
	// on the note either way.
	_ = s.books.UpdateBook(ctx, id, rating, r.FormValue("notes"))

	http.Redirect(w, r, "/notes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// handleDeleteNote deletes a note and returns to the list page.
// POST /delete/{id}
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if id, ok := parseNoteID(r); ok {
		_ = s.books.DeleteBook(ctx, id)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseNoteID parses the {id} path parameter.
func parseNoteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
