package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/domain"
)

const tieBreakYAML = `
name: tie
states: [q0, lit, class]
alphabet: ["5", "0-9"]
start: q0
accepting: [lit]
transitions:
  q0:
    5: lit
    0-9: class
`

func TestDecode_NestedMapping_KeepsOrder(t *testing.T) {
	def, err := file.Decode([]byte(tieBreakYAML))
	require.NoError(t, err)

	assert.Equal(t, "tie", def.Name)
	assert.Equal(t, []string{"q0", "lit", "class"}, def.States)
	assert.Equal(t, []string{"5", "0-9"}, def.Alphabet)
	assert.Equal(t, domain.Table{
		{From: "q0", Edges: []domain.Edge{{Symbol: "5", To: "lit"}, {Symbol: "0-9", To: "class"}}},
	}, def.Transitions)

	assert.True(t, automaton.New(def).IsAccepted("5"), "literal declared first must win")
}

func TestDecode_ListForm(t *testing.T) {
	def, err := file.Decode([]byte(`
start: q0
accepting: q1
transitions:
  - {from: q0, on: 0-9, to: q1}
  - {from: q0, symbol: a, to: q0}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"q1"}, def.Accepting)
	assert.Equal(t, []domain.Edge{{Symbol: "0-9", To: "q1"}, {Symbol: "a", To: "q0"}}, def.Transitions[0].Edges)
}

func TestDecode_JSON(t *testing.T) {
	def, err := file.Decode([]byte(`{
  "states": ["q0", "q1", "q2"],
  "alphabet": ["a", "b"],
  "transitions": {"q1": {"b": "q2"}, "q0": {"a": "q1"}},
  "start": "q0",
  "accepting": ["q2"]
}`))
	require.NoError(t, err)

	assert.Equal(t, "q1", def.Transitions[0].From, "JSON object order is preserved")
	assert.True(t, automaton.New(def).IsAccepted("ab"))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Not A Mapping", "- a\n- b\n"},
		{"Malformed", "states: [q0\n"},
		{"Scalar Transitions", "transitions: nope\n"},
		{"Row Not Mapping", "transitions:\n  q0: [a]\n"},
		{"Start Not Scalar", "start: [q0]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := file.Decode([]byte(tt.doc))
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	}
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	def, err := file.Decode([]byte(tieBreakYAML))
	require.NoError(t, err)

	out, err := file.EncodeYAML(def)
	require.NoError(t, err)

	again, err := file.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, def, again)
}

func TestEncodeJSON_KeepsOrder(t *testing.T) {
	def := domain.Definition{
		Name:   "ab",
		States: []string{"q0"},
		Transitions: domain.Table{
			{From: "q1", Edges: []domain.Edge{{Symbol: "b", To: "q2"}}},
			{From: "q0", Edges: []domain.Edge{{Symbol: "z", To: "q1"}, {Symbol: "a", To: "q1"}}},
		},
		Start: "q0",
	}

	out, err := file.EncodeJSON(def)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "ab", "states": ["q0"], "alphabet": [], "start": "q0", "accepting": [],
		"transitions": {"q1": {"b": "q2"}, "q0": {"z": "q1", "a": "q1"}}
	}`, string(out))
	assert.Contains(t, string(out), `"q1":{"b":"q2"},"q0":{"z":"q1","a":"q1"}`)

	again, err := file.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, def.Transitions, again.Transitions)
}
