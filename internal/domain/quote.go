// Package domain contains core business entities and rules.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// FilterAll is the filter value that selects every quote.
	FilterAll = "all"

	// DefaultCategory is assigned to manually added quotes with a blank category.
	DefaultCategory = "General"

	// RemoteCategory is the category given to quotes merged from the remote API.
	RemoteCategory = "Server Quote"

	// NoQuotesMessage is shown instead of a quote when the filtered view is empty.
	NoQuotesMessage = "No quotes available."
)

// quoteNamespace seeds deterministic identifiers for quotes that do not get a random one.
var quoteNamespace = uuid.MustParse("6f1c3c39-4f0e-4b59-9c55-2f2b8a7c1e10")

// Quote is a single text/category record.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is a stable identifier generated when the quote is created.
	ID string `json:"id,omitempty"`

	// Text is the quotation itself.
	Text string `json:"text"`

	// Category groups quotes for filtering.
	Category string `json:"category"`

	// Pushed is set once the quote is known to the remote API.
	Pushed bool `json:"pushed,omitempty"`
}

// NewQuote builds a manually entered quote.
// Text and category are trimmed; a blank category becomes DefaultCategory.
// Returns a ValidationError if the trimmed text is empty.
func NewQuote(text, category string) (Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Quote{}, NewValidationError("text", "please enter a quote")
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	return Quote{
		ID:       NewID(),
		Text:     text,
		Category: category,
	}, nil
}

// NewID returns a fresh random quote identifier.
func NewID() string {
	return uuid.NewString()
}

// StableID derives a deterministic identifier from a source key.
// The same key always yields the same identifier.
func StableID(key string) string {
	return uuid.NewSHA1(quoteNamespace, []byte(key)).String()
}
