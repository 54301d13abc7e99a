package domain

import (
	"slices"
	"strings"
)

// Collection is the ordered list of quotes owned by a session.
// Insertion order is display order.
type Collection []Quote

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}

	return slices.Clone(c)
}

// IndexOf returns the position of the quote with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	return slices.IndexFunc(c, func(q Quote) bool { return q.ID == id })
}

// HasID reports whether a quote with the given id exists.
func (c Collection) HasID(id string) bool {
	return id != "" && c.IndexOf(id) >= 0
}

// HasText reports whether some quote has exactly this text.
func (c Collection) HasText(text string) bool {
	return slices.ContainsFunc(c, func(q Quote) bool { return q.Text == text })
}

// DeriveCategories returns the distinct trimmed categories in first-seen order.
// Imported quotes may carry a blank category; it is listed as "".
func DeriveCategories(c Collection) []string {
	seen := make(map[string]struct{}, len(c))
	categories := make([]string, 0, len(c))

	for _, q := range c {
		category := strings.TrimSpace(q.Category)
		if _, ok := seen[category]; ok {
			continue
		}

		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	return categories
}

// ApplyFilter returns the quotes matching selected, preserving order.
// FilterAll returns the whole collection; any other value matches category exactly.
func ApplyFilter(c Collection, selected string) Collection {
	if selected == FilterAll {
		return c.Clone()
	}

	filtered := Collection{}
	for _, q := range c {
		if q.Category == selected {
			filtered = append(filtered, q)
		}
	}

	return filtered
}

// PickRandom selects a quote using intn, which must return a value in [0, n).
// Returns false when the collection is empty.
func PickRandom(c Collection, intn func(n int) int) (Quote, bool) {
	if len(c) == 0 {
		return Quote{}, false
	}

	return c[intn(len(c))], true
}

// MergeRemote appends the remote quotes that are not already present,
// matching on id or on exact text. Quotes appended earlier in the same batch
// count as present, so a page repeating a text adds it once. It returns the
// merged collection and the quotes that were added.
func MergeRemote(local, remote Collection) (Collection, Collection) {
	merged := local.Clone()
	added := Collection{}

	for _, q := range remote {
		if merged.HasID(q.ID) || merged.HasText(q.Text) {
			continue
		}

		merged = append(merged, q)
		added = append(added, q)
	}

	return merged, added
}
