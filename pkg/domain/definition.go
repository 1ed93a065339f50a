package domain

import "sort"

// Edge is a single outgoing transition of a Row.
type Edge struct {
	Symbol string `json:"symbol" yaml:"on" mapstructure:"on"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// Row groups the outgoing edges of one source state in declared order.
type Row struct {
	From  string `json:"from" yaml:"from" mapstructure:"from"`
	Edges []Edge `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// Table is an ordered transition table. The order of rows and of edges within
// a row is significant: it decides which symbol wins when several match.
type Table []Row

// Definition is the 5-tuple an automaton is built from, plus descriptive fields.
//
// Definitions are not validated on construction. Well-formed input is a
// precondition of the engine; see the validator package for an explicit check.
type Definition struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	States      []string `json:"states" yaml:"states"`
	Alphabet    []string `json:"alphabet" yaml:"alphabet"`
	Transitions Table    `json:"transitions" yaml:"transitions"`
	Start       string   `json:"start" yaml:"start"`
	Accepting   []string `json:"accepting" yaml:"accepting"`
}

// Transition is a single (source, symbol, destination) triple.
type Transition struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// Add appends an edge, keeping the first position of a repeated (from, symbol)
// pair and overwriting its destination.
func (t Table) Add(from, symbol, to string) Table {
	for i := range t {
		if t[i].From != from {
			continue
		}
		for j := range t[i].Edges {
			if t[i].Edges[j].Symbol == symbol {
				t[i].Edges[j].To = to
				return t
			}
		}
		t[i].Edges = append(t[i].Edges, Edge{Symbol: symbol, To: to})
		return t
	}
	return append(t, Row{From: from, Edges: []Edge{{Symbol: symbol, To: to}}})
}

// Len returns the number of edges in the table.
func (t Table) Len() int {
	n := 0
	for _, r := range t {
		n += len(r.Edges)
	}
	return n
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, r := range t {
		out[i] = Row{From: r.From, Edges: append([]Edge(nil), r.Edges...)}
	}
	return out
}

// TableFromMap builds a Table from a nested Go map. Map iteration order is
// random, so sources and symbols are sorted; use a Table literal, the dsl
// package or a file loader when declared order matters.
func TableFromMap(m map[string]map[string]string) Table {
	sources := make([]string, 0, len(m))
	for from := range m {
		sources = append(sources, from)
	}
	sort.Strings(sources)

	var t Table
	for _, from := range sources {
		symbols := make([]string, 0, len(m[from]))
		for sym := range m[from] {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			t = t.Add(from, sym, m[from][sym])
		}
	}
	return t
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	d.States = append([]string(nil), d.States...)
	d.Alphabet = append([]string(nil), d.Alphabet...)
	d.Accepting = append([]string(nil), d.Accepting...)
	d.Transitions = d.Transitions.Clone()
	return d
}
