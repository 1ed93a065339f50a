package graph

import (
	"fmt"
	"io"
)

// WriteTransitions prints each transition as "source -> destination : symbol",
// followed by a blank line.
func WriteTransitions(w io.Writer, v View) error {
	for t := range v.Transitions() {
		if _, err := fmt.Fprintf(w, "%s -> %s : %s\n", t.From, t.To, t.Symbol); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
