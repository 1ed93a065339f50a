/*
Package automaton implements the deterministic finite automaton engine.

An Engine is built once from a domain.Definition and is immutable afterwards.
It answers membership queries with IsAccepted and exposes a read-only view of
its transitions for presentation layers (diagram renderers, text dumps).

The engine never fails and never performs I/O. Unknown states, unmatched
characters and incomplete tables all resolve to rejection.

Example:

	eng := automaton.New(domain.Definition{
		States:   automaton.MakeStates(3),
		Alphabet: []string{"a", "b"},
		Transitions: domain.Table{
			{From: "q0", Edges: []domain.Edge{{Symbol: "a", To: "q1"}}},
			{From: "q1", Edges: []domain.Edge{{Symbol: "b", To: "q2"}}},
		},
		Start:     "q0",
		Accepting: []string{"q2"},
	})

	eng.IsAccepted("ab") // true
*/
package automaton
