package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/dfa/internal/trace"
	"github.com/aretw0/dfa/pkg/dsl"
)

func TestRun(t *testing.T) {
	b := dsl.New("ab").Start("q0").Accept("q2")
	b.From("q0").On("a", "q1").From("q1").On("b", "q2").On("0-9", "q1")
	eng := b.Build()

	t.Run("Accepted", func(t *testing.T) {
		res := trace.Run(eng, "a7b")
		assert.True(t, res.Accepted)
		assert.False(t, res.Stuck)
		assert.Equal(t, -1, res.StuckAt)
		assert.Equal(t, "q2", res.Final)
		assert.Equal(t, []trace.Step{
			{Index: 0, Char: "a", From: "q0", Symbol: "a", To: "q1"},
			{Index: 1, Char: "7", From: "q1", Symbol: "0-9", To: "q1"},
			{Index: 2, Char: "b", From: "q1", Symbol: "b", To: "q2"},
		}, res.Steps)
		assert.Equal(t, []string{"q0", "q1", "q1", "q2"}, res.Path(eng.Start()))
	})

	t.Run("Stuck", func(t *testing.T) {
		res := trace.Run(eng, "abx")
		assert.False(t, res.Accepted)
		assert.True(t, res.Stuck)
		assert.Equal(t, 2, res.StuckAt)
		assert.Equal(t, "q2", res.Final)
		assert.Len(t, res.Steps, 2)
	})

	t.Run("Agrees With Engine", func(t *testing.T) {
		for _, in := range []string{"", "a", "ab", "a12b", "ba", "abb", "x"} {
			assert.Equal(t, eng.IsAccepted(in), trace.Run(eng, in).Accepted, "input %q", in)
		}
	})
}
