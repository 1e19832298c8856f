package openlibrary

// Suggestion is a minimal title/author/cover tuple for the
// autocomplete box. Each field defaults to its zero value when the
// upstream document omits it.
type Suggestion struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	CoverID int64  `json:"cover_i,omitzero"` // Open Library cover identifier
}

// searchResponse is the raw Open Library search API response.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

// searchDoc is a single document from an Open Library search.
// Only the fields the suggestion box consumes are mapped.
type searchDoc struct {
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name"`
	CoverID    int64    `json:"cover_i"`
}
