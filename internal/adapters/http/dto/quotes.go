package dto

import (
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// QuoteResponse is the wire form of a quote.
type QuoteResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Pushed   bool   `json:"pushed"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Category: q.Category,
		Pushed:   q.Pushed,
	}
}

// QuoteListResponse wraps a list of quotes with the filter that produced it.
type QuoteListResponse struct {
	Filter string          `json:"filter"`
	Count  int             `json:"count"`
	Quotes []QuoteResponse `json:"quotes"`
}

// NewQuoteListResponse converts a collection.
func NewQuoteListResponse(filter string, quotes domain.Collection) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, NewQuoteResponse(q))
	}

	return QuoteListResponse{Filter: filter, Count: len(items), Quotes: items}
}

// AddQuoteRequest is the body of POST /quotes. Blank text is rejected by the
// domain so the message matches the CLI.
type AddQuoteRequest struct {
	Text     string `json:"text"     validate:"max=2000"`
	Category string `json:"category" validate:"max=100"`
}

// FilterRequest is the body of PUT /filter.
type FilterRequest struct {
	Category string `json:"category" validate:"required,notempty,max=100"`
}

// FilterResponse reports the selected category.
type FilterResponse struct {
	Category string `json:"category"`
}

// CategoriesResponse lists the categories of the whole collection.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ImportResponse reports how many quotes an import appended.
type ImportResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// PullResponse reports the quotes a pull appended.
type PullResponse struct {
	Added []QuoteResponse `json:"added"`
}

// SyncResponse is the wire form of a sync report.
type SyncResponse struct {
	RunID    string `json:"runId,omitempty"`
	Skipped  bool   `json:"skipped"`
	Fetched  int    `json:"fetched"`
	Pushed   int    `json:"pushed"`
	Merged   int    `json:"merged"`
	Duration string `json:"duration"`
}

// NewSyncResponse converts a sync report.
func NewSyncResponse(r app.SyncReport) SyncResponse {
	return SyncResponse{
		RunID:    r.RunID,
		Skipped:  r.Skipped,
		Fetched:  r.Fetched,
		Pushed:   r.Pushed,
		Merged:   r.Merged,
		Duration: r.Duration.String(),
	}
}
