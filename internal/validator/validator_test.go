package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/domain"
)

func wellFormed() domain.Definition {
	return domain.Definition{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: domain.Table{
			{From: "q0", Edges: []domain.Edge{{Symbol: "a", To: "q1"}}},
			{From: "q1", Edges: []domain.Edge{{Symbol: "b", To: "q2"}}},
		},
		Start:     "q0",
		Accepting: []string{"q2"},
	}
}

func kinds(issues []Issue) []Kind {
	out := make([]Kind, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Kind)
	}
	return out
}

func TestValidate_WellFormed(t *testing.T) {
	assert.Empty(t, Validate(wellFormed()))
	assert.NoError(t, Check(wellFormed()))
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *domain.Definition)
		want   Kind
		sev    Severity
	}{
		{"No States", func(d *domain.Definition) { d.States = nil }, KindNoStates, SeverityError},
		{"Duplicate State", func(d *domain.Definition) { d.States = append(d.States, "q1") }, KindDuplicateState, SeverityWarning},
		{"Unknown Start", func(d *domain.Definition) { d.Start = "ghost" }, KindUnknownStart, SeverityError},
		{"Unknown Accepting", func(d *domain.Definition) { d.Accepting = []string{"ghost"} }, KindUnknownAccepting, SeverityError},
		{"Unknown Source", func(d *domain.Definition) {
			d.Transitions = d.Transitions.Add("ghost", "a", "q0")
		}, KindUnknownSource, SeverityError},
		{"Unknown Destination", func(d *domain.Definition) {
			d.Transitions = d.Transitions.Add("q2", "a", "ghost")
		}, KindUnknownDestination, SeverityError},
		{"Symbol Not In Alphabet", func(d *domain.Definition) {
			d.Transitions = d.Transitions.Add("q2", "c", "q2")
		}, KindSymbolNotInAlpha, SeverityError},
		{"Nondeterministic", func(d *domain.Definition) {
			d.Alphabet = append(d.Alphabet, "5", "0-9")
			d.Transitions = d.Transitions.Add("q2", "5", "q2").Add("q2", "0-9", "q0")
		}, KindNondeterministic, SeverityWarning},
		{"Unreachable", func(d *domain.Definition) { d.States = append(d.States, "island") }, KindUnreachable, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := wellFormed()
			tt.mutate(&def)

			issues := Validate(def)
			require.Contains(t, kinds(issues), tt.want)
			for _, i := range issues {
				if i.Kind == tt.want {
					assert.Equal(t, tt.sev, i.Severity)
					assert.NotEmpty(t, i.Message)
				}
			}
		})
	}
}

func TestValidate_EmptyAlphabetSkipsSymbolCheck(t *testing.T) {
	def := wellFormed()
	def.Alphabet = nil
	assert.NotContains(t, kinds(Validate(def)), KindSymbolNotInAlpha)
}

func TestCheck_OnlyErrorsFail(t *testing.T) {
	def := wellFormed()
	def.States = append(def.States, "island")
	assert.NoError(t, Check(def), "warnings alone do not fail")

	def.Start = "ghost"
	err := Check(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "start state 'ghost' is not declared")
}
