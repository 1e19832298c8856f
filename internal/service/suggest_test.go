package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/booknotesapp/booknotes-server/internal/metadata/openlibrary"
	"github.com/stretchr/testify/assert"
)

// fakeSearcher records calls and returns canned results.
type fakeSearcher struct {
	calls   int
	results []openlibrary.Suggestion
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]openlibrary.Suggestion, error) {
	f.calls++
	return f.results, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuggest_ShortQuerySkipsUpstream(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"one char", "a"},
		{"whitespace padded single char", "  a  "},
		{"only whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &fakeSearcher{}
			svc := NewSuggestionService(upstream, discardLogger())

			got := svc.Suggest(context.Background(), tt.query)

			assert.Empty(t, got)
			assert.NotNil(t, got, "must be an empty list, not nil")
			assert.Zero(t, upstream.calls, "short query must not hit the upstream")
		})
	}
}

func TestSuggest_PassesThroughResults(t *testing.T) {
	upstream := &fakeSearcher{
		results: []openlibrary.Suggestion{
			{Title: "Dune", Author: "Frank Herbert", CoverID: 123},
		},
	}
	svc := NewSuggestionService(upstream, discardLogger())

	got := svc.Suggest(context.Background(), "dune")

	assert.Equal(t, upstream.results, got)
	assert.Equal(t, 1, upstream.calls)
}

func TestSuggest_UpstreamFailureYieldsEmptyList(t *testing.T) {
	upstream := &fakeSearcher{err: errors.New("connection refused")}
	svc := NewSuggestionService(upstream, discardLogger())

	got := svc.Suggest(context.Background(), "dune")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggest_NilResultBecomesEmptyList(t *testing.T) {
	svc := NewSuggestionService(&fakeSearcher{}, discardLogger())

	got := svc.Suggest(context.Background(), "dune")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
