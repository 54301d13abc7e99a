package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

const wrapWidth = 80

// renderQuote renders a quote as a markdown block quote with its category.
// Plain output uses the notty style so no escape sequences are written.
func renderQuote(q domain.Quote, styled bool) (string, error) {
	style := glamour.WithStylePath("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrapWidth))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(quoteMarkdown(q))
	if err != nil {
		return "", fmt.Errorf("rendering quote: %w", err)
	}

	return out, nil
}

func quoteMarkdown(q domain.Quote) string {
	var b strings.Builder

	for _, line := range strings.Split(q.Text, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n*")
	b.WriteString(q.Category)
	b.WriteString("*\n")

	return b.String()
}

// listStyles styles the list and categories output.
type listStyles struct {
	header   lipgloss.Style
	id       lipgloss.Style
	category lipgloss.Style
	text     lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
}

// newListStyles binds the styles to w; colors are dropped when w is not a
// terminal.
func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)

	return listStyles{
		header:   r.NewStyle().Bold(true).Underline(true),
		id:       r.NewStyle().Foreground(lipgloss.Color("8")).Width(10),
		category: r.NewStyle().Foreground(lipgloss.Color("6")).Width(18),
		text:     r.NewStyle(),
		selected: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// renderList renders quotes one per line: short id, category, text.
func renderList(w io.Writer, filter string, quotes domain.Collection) string {
	s := newListStyles(w)

	var b strings.Builder

	b.WriteString(s.header.Render(fmt.Sprintf("%d quote(s), filter: %s", len(quotes), filter)))
	b.WriteString("\n")

	if len(quotes) == 0 {
		b.WriteString(s.muted.Render(domain.NoQuotesMessage))
		b.WriteString("\n")

		return b.String()
	}

	for _, q := range quotes {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.id.Render(shortID(q.ID)),
			s.category.Render(q.Category),
			s.text.Render(q.Text),
		))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCategories lists the categories and marks the selected one.
func renderCategories(w io.Writer, selected string, categories []string) string {
	s := newListStyles(w)

	var b strings.Builder

	all := append([]string{domain.FilterAll}, categories...)
	for _, c := range all {
		if c == selected {
			b.WriteString(s.selected.Render("* " + c))
		} else {
			b.WriteString("  " + c)
		}

		b.WriteString("\n")
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
