package graph

import (
	"iter"

	"github.com/aretw0/dfa/pkg/domain"
)

// View is the read-only automaton surface a renderer consumes.
// *automaton.Engine satisfies it.
type View interface {
	States() []string
	Start() string
	IsAccepting(state string) bool
	Transitions() iter.Seq[domain.Transition]
}

// Overlay contains dynamic run data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}
