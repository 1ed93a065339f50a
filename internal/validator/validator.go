package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// Severity ranks an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies what an Issue is about.
type Kind string

const (
	KindNoStates           Kind = "no_states"
	KindDuplicateState     Kind = "duplicate_state"
	KindUnknownStart       Kind = "unknown_start"
	KindUnknownAccepting   Kind = "unknown_accepting"
	KindUnknownSource      Kind = "unknown_source"
	KindUnknownDestination Kind = "unknown_destination"
	KindSymbolNotInAlpha   Kind = "symbol_not_in_alphabet"
	KindNondeterministic   Kind = "nondeterministic"
	KindUnreachable        Kind = "unreachable_state"
)

// Issue is a single well-formedness finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	State    string   `json:"state,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// Validate reports every well-formedness issue of def. The engine itself
// accepts any definition; callers that need stronger guarantees (renderers,
// persistence) run this first.
func Validate(def domain.Definition) []Issue {
	var issues []Issue
	report := func(sev Severity, kind Kind, state, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Kind: kind, State: state, Message: fmt.Sprintf(format, args...)})
	}

	states := make(map[string]bool, len(def.States))
	if len(def.States) == 0 {
		report(SeverityError, KindNoStates, "", "no states declared")
	}
	for _, s := range def.States {
		if states[s] {
			report(SeverityWarning, KindDuplicateState, s, "state '%s' declared more than once", s)
		}
		states[s] = true
	}

	if !states[def.Start] {
		report(SeverityError, KindUnknownStart, def.Start, "start state '%s' is not declared", def.Start)
	}
	for _, s := range def.Accepting {
		if !states[s] {
			report(SeverityError, KindUnknownAccepting, s, "accepting state '%s' is not declared", s)
		}
	}

	alphabet := make(map[string]bool, len(def.Alphabet))
	for _, a := range def.Alphabet {
		alphabet[a] = true
	}

	for _, row := range def.Transitions {
		if !states[row.From] {
			report(SeverityError, KindUnknownSource, row.From, "transition source '%s' is not declared", row.From)
		}
		for i, e := range row.Edges {
			if !states[e.To] {
				report(SeverityError, KindUnknownDestination, e.To, "transition %s --%s--> %s targets an undeclared state", row.From, e.Symbol, e.To)
			}
			if len(alphabet) > 0 && !alphabet[e.Symbol] {
				report(SeverityError, KindSymbolNotInAlpha, row.From, "symbol '%s' on state '%s' is not in the alphabet", e.Symbol, row.From)
			}
			for _, prev := range row.Edges[:i] {
				if domain.Overlaps(domain.ParseSymbol(prev.Symbol), domain.ParseSymbol(e.Symbol)) {
					report(SeverityWarning, KindNondeterministic, row.From,
						"symbols '%s' and '%s' on state '%s' overlap; '%s' wins by declaration order", prev.Symbol, e.Symbol, row.From, prev.Symbol)
				}
			}
		}
	}

	for _, s := range unreachable(def) {
		report(SeverityWarning, KindUnreachable, s, "state '%s' is unreachable from '%s'", s, def.Start)
	}

	return issues
}

// Check returns an error joining every error-level issue, or nil.
func Check(def domain.Definition) error {
	var errs []string
	for _, issue := range Validate(def) {
		if issue.Severity == SeverityError {
			errs = append(errs, issue.Message)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", domain.ErrInvalidDefinition, len(errs), strings.Join(errs, "\n- "))
}

// unreachable crawls the table breadth-first from the start state and
// returns the declared states it never visits, in declared order.
func unreachable(def domain.Definition) []string {
	edges := make(map[string][]string)
	for _, row := range def.Transitions {
		for _, e := range row.Edges {
			edges[row.From] = append(edges[row.From], e.To)
		}
	}

	visited := map[string]bool{def.Start: true}
	queue := []string{def.Start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range edges[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, s := range def.States {
		if !visited[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
