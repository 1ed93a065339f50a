package automaton

import (
	"iter"
	"sort"

	"github.com/aretw0/dfa/pkg/domain"
)

// rule is a resolved outgoing transition.
type rule struct {
	symbol domain.Symbol
	to     string
}

// Engine is an immutable DFA. It is safe for concurrent use.
type Engine struct {
	name        string
	description string
	states      []string
	alphabet    map[string]struct{}
	accepting   map[string]struct{}
	start       string

	// sources keeps declared row order for Transitions.
	sources []string
	rules   map[string][]rule
}

// New builds an Engine from a definition. Construction never fails: the
// definition is copied, states are deduplicated and sorted, and symbol labels
// are resolved into domain.Symbol values once.
func New(def domain.Definition) *Engine {
	e := &Engine{
		name:        def.Name,
		description: def.Description,
		states:      sortedSet(def.States),
		alphabet:    toSet(def.Alphabet),
		accepting:   toSet(def.Accepting),
		start:       def.Start,
		rules:       make(map[string][]rule),
	}

	for _, row := range def.Transitions {
		if _, seen := e.rules[row.From]; !seen {
			e.sources = append(e.sources, row.From)
		}
		rules := e.rules[row.From]
		for _, edge := range row.Edges {
			rules = setRule(rules, domain.ParseSymbol(edge.Symbol), edge.To)
		}
		e.rules[row.From] = rules
	}

	return e
}

// setRule keeps the first position of a repeated symbol label and takes the last destination.
func setRule(rules []rule, sym domain.Symbol, to string) []rule {
	for i := range rules {
		if rules[i].symbol.String() == sym.String() {
			rules[i].to = to
			return rules
		}
	}
	return append(rules, rule{symbol: sym, to: to})
}

// lookup returns the rules leaving state, or nil if there are none.
func (e *Engine) lookup(state string) []rule {
	return e.rules[state]
}

// step resolves the transition for character c from state.
// The first rule in declared order whose symbol matches wins.
func (e *Engine) step(state, c string) (string, bool) {
	for _, r := range e.lookup(state) {
		if r.symbol.Matches(c) {
			return r.to, true
		}
	}
	return "", false
}

// IsAccepted reports whether the automaton accepts input.
// Input is consumed one character (rune) at a time from the start state. The
// call rejects as soon as no transition matches; otherwise it accepts iff the
// final state is accepting. The empty string is accepted iff the start state
// is accepting.
func (e *Engine) IsAccepted(input string) bool {
	current := e.start
	for _, r := range input {
		next, ok := e.step(current, string(r))
		if !ok {
			return false
		}
		current = next
	}
	return e.IsAccepting(current)
}

// Transitions returns a lazy, restartable sequence of every stored
// (source, symbol, destination) triple, sources in declared order and symbols
// in declared order within a source.
func (e *Engine) Transitions() iter.Seq[domain.Transition] {
	return func(yield func(domain.Transition) bool) {
		for _, from := range e.sources {
			for _, r := range e.rules[from] {
				if !yield(domain.Transition{From: from, Symbol: r.symbol.String(), To: r.to}) {
					return
				}
			}
		}
	}
}

// Name returns the definition name, if any.
func (e *Engine) Name() string { return e.name }

// Description returns the definition description, if any.
func (e *Engine) Description() string { return e.description }

// States returns the sorted, deduplicated state labels.
func (e *Engine) States() []string {
	return append([]string(nil), e.states...)
}

// Alphabet returns the declared alphabet, sorted.
func (e *Engine) Alphabet() []string { return sortedKeys(e.alphabet) }

// Start returns the start state label.
func (e *Engine) Start() string { return e.start }

// Accepting returns the accepting state labels, sorted.
func (e *Engine) Accepting() []string { return sortedKeys(e.accepting) }

// IsAccepting reports whether state is in the accepting set.
func (e *Engine) IsAccepting(state string) bool {
	_, ok := e.accepting[state]
	return ok
}

// Definition returns a fresh definition equivalent to the engine.
func (e *Engine) Definition() domain.Definition {
	def := domain.Definition{
		Name:        e.name,
		Description: e.description,
		States:      e.States(),
		Alphabet:    e.Alphabet(),
		Start:       e.start,
		Accepting:   e.Accepting(),
	}
	for t := range e.Transitions() {
		def.Transitions = def.Transitions.Add(t.From, t.Symbol, t.To)
	}
	return def
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(items []string) []string {
	return sortedKeys(toSet(items))
}
