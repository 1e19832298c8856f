package openlibrary

import (
	"context"
	"github.com/go-json-experiment/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MaxSuggestions is the upper bound on suggestions returned for a query.
const MaxSuggestions = 5

// Search queries Open Library by title and reshapes the top documents
// into at most MaxSuggestions suggestions.
func (c *Client) Search(ctx context.Context, query string) ([]Suggestion, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("title", query)
	params.Set("limit", strconv.Itoa(MaxSuggestions))

	searchURL := c.baseURL + "/search.json?" + params.Encode()

	c.logger.Debug("searching Open Library",
		"query", query,
		"url", searchURL,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	c.logger.Debug("Open Library search results",
		"query", query,
		"num_found", searchResp.NumFound,
	)

	// The limit parameter is advisory; cap the result count locally too.
	docs := searchResp.Docs
	if len(docs) > MaxSuggestions {
		docs = docs[:MaxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(docs))
	for i := range docs {
		d := &docs[i]

		author := ""
		if len(d.AuthorName) > 0 {
			author = d.AuthorName[0]
		}

		suggestions = append(suggestions, Suggestion{
			Title:   d.Title,
			Author:  author,
			CoverID: d.CoverID,
		})
	}

	return suggestions, nil
}
