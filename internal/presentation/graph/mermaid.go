package graph

import (
	"fmt"
	"strings"
)

// entryID is the invisible node whose arrow marks the start state.
const entryID = "__start"

// GenerateMermaid produces a Mermaid flowchart for the automaton.
// It applies DFA conventions:
// - Accepting state: (((Double circle)))
// - Other state: ((Circle))
// - Start state: pointed at by an arrow from an invisible entry node
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(v View, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	ids := newMermaidIDs()

	sb.WriteString(fmt.Sprintf("    %s[ ] --> %s\n", entryID, ids.of(v.Start())))
	sb.WriteString(fmt.Sprintf("    style %s fill:none,stroke:none\n", entryID))

	for _, state := range v.States() {
		opener, closer := "((", "))"
		if v.IsAccepting(state) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids.of(state), opener, escapeMermaid(state), closer))
	}

	for t := range v.Transitions() {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			ids.of(t.From), escapeMermaid(t.Symbol), ids.of(t.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			if id == "" {
				continue
			}
			safeID := ids.of(id)
			if !visited[safeID] {
				visited[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", ids.of(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

// mermaidIDs maps state names to node IDs. Names that sanitize to the same
// ID get a numeric suffix in order of first use.
type mermaidIDs struct {
	byState map[string]string
	taken   map[string]bool
}

func newMermaidIDs() *mermaidIDs {
	return &mermaidIDs{
		byState: make(map[string]string),
		taken:   map[string]bool{entryID: true},
	}
}

func (m *mermaidIDs) of(state string) string {
	if id, ok := m.byState[state]; ok {
		return id
	}
	base := sanitizeMermaidID(state)
	if base == "" {
		base = "_"
	}
	id := base
	for n := 2; m.taken[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	m.byState[state] = id
	m.taken[id] = true
	return id
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_", "\"", "_")
	return r.Replace(id)
}
