package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/dfa/internal/presentation/graph"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, err
		}
		return r.Render(markdown)
	}
}

// Markdown describes the automaton as a Markdown document: a summary list
// followed by a transition table.
func Markdown(title string, v graph.View) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	}

	var accepting []string
	for _, s := range v.States() {
		if v.IsAccepting(s) {
			accepting = append(accepting, "`"+s+"`")
		}
	}
	sb.WriteString(fmt.Sprintf("- **Start:** `%s`\n", v.Start()))
	sb.WriteString(fmt.Sprintf("- **Accepting:** %s\n", strings.Join(accepting, ", ")))
	sb.WriteString(fmt.Sprintf("- **States:** %d\n\n", len(v.States())))

	sb.WriteString("| From | Symbol | To |\n")
	sb.WriteString("|------|--------|----|\n")
	for t := range v.Transitions() {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", cell(t.From), cell(t.Symbol), cell(t.To)))
	}
	return sb.String()
}

// RenderTable renders the Markdown description for a terminal.
func RenderTable(title string, v graph.View) (string, error) {
	return NewRenderer()(Markdown(title, v))
}

func cell(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
