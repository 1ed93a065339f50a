// Package trace re-simulates an automaton with instrumentation.
//
// The engine only answers yes or no. Callers that need to know where a string
// got stuck, or which path it took, replay it here from the engine's public
// transition view.
package trace

import (
	"iter"

	"github.com/aretw0/dfa/pkg/domain"
)

// View is the read-only surface of an automaton needed to replay input.
type View interface {
	Start() string
	IsAccepting(state string) bool
	Transitions() iter.Seq[domain.Transition]
}

// Step records one consumed character.
type Step struct {
	Index  int    `json:"index"`
	Char   string `json:"char"`
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// Result is the outcome of a replay.
type Result struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Steps    []Step `json:"steps"`
	Final    string `json:"final"`
	Stuck    bool   `json:"stuck"`
	// StuckAt is the rune index with no matching transition, or -1.
	StuckAt int `json:"stuck_at"`
}

// Path returns the visited states, starting with the start state.
func (r Result) Path(start string) []string {
	path := []string{start}
	for _, s := range r.Steps {
		path = append(path, s.To)
	}
	return path
}

type edge struct {
	symbol domain.Symbol
	label  string
	to     string
}

// Run replays input against v. Result.Accepted always agrees with the engine's IsAccepted.
func Run(v View, input string) Result {
	edges := make(map[string][]edge)
	for t := range v.Transitions() {
		edges[t.From] = append(edges[t.From], edge{symbol: domain.ParseSymbol(t.Symbol), label: t.Symbol, to: t.To})
	}

	res := Result{Input: input, StuckAt: -1, Steps: []Step{}}
	current := v.Start()

	i := 0
	for _, r := range input {
		c := string(r)
		matched := false
		for _, e := range edges[current] {
			if e.symbol.Matches(c) {
				res.Steps = append(res.Steps, Step{Index: i, Char: c, From: current, Symbol: e.label, To: e.to})
				current = e.to
				matched = true
				break
			}
		}
		if !matched {
			res.Stuck = true
			res.StuckAt = i
			res.Final = current
			return res
		}
		i++
	}

	res.Final = current
	res.Accepted = v.IsAccepting(current)
	return res
}
