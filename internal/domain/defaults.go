package domain

// defaultQuotes seeds an empty store and is restored on reset.
var defaultQuotes = []struct {
	text     string
	category string
}{
	{"The only way to do great work is to love what you do.", "Motivation"},
	{"In the middle of difficulty lies opportunity.", "Inspiration"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Perseverance"},
	{"Happiness is not something ready made. It comes from your own actions.", "Happiness"},
	{"Life is what happens when you're busy making other plans.", "Life"},
	{"Do not watch the clock. Do what it does. Keep going.", "Time Management"},
	{"There is light at the end of the tunnel.", "Hope"},
	{"Finish what you started.", "Perseverance"},
	{"Believe in yourself and all that you are.", "Self-Belief"},
}

// DefaultQuotes returns a fresh copy of the default collection.
// Identifiers are derived from the text so they survive a reset.
func DefaultQuotes() Collection {
	quotes := make(Collection, 0, len(defaultQuotes))
	for _, d := range defaultQuotes {
		quotes = append(quotes, Quote{
			ID:       StableID("default:" + d.text),
			Text:     d.text,
			Category: d.category,
		})
	}

	return quotes
}
