package graph

import (
	"fmt"
	"strings"
)

// GenerateDOT produces a Graphviz digraph laid out left to right with the
// title as graph label. Accepting states are drawn as double circles.
func GenerateDOT(v View, title string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", quoteDOT(title)))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString(fmt.Sprintf("    label=%s;\n", quoteDOT(title)))
	sb.WriteString("    labelloc=\"t\";\n")
	sb.WriteString("    fontsize=\"20\";\n")

	sb.WriteString(fmt.Sprintf("    %s [shape=point, label=\"\"];\n", entryID))
	sb.WriteString(fmt.Sprintf("    %s -> %s;\n", entryID, quoteDOT(v.Start())))

	for _, state := range v.States() {
		shape := "circle"
		if v.IsAccepting(state) {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    %s [shape=%s];\n", quoteDOT(state), shape))
	}

	for t := range v.Transitions() {
		sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s];\n", quoteDOT(t.From), quoteDOT(t.To), quoteDOT(t.Symbol)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// DiagramFileName derives a file name from a diagram title.
func DiagramFileName(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
