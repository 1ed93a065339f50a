package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/internal/testutils"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports/tests"
)

func seed(t *testing.T, files map[string]string) *Loader {
	t.Helper()
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, files)

	typedRepo := loam.NewTypedRepository[Metadata](repo)
	return New(typedRepo)
}

func TestLoader_Contract(t *testing.T) {
	loader := seed(t, map[string]string{
		"ab.md": `---
start: q0
accepting: [q2]
transitions:
  - {from: q0, on: a, to: q1}
  - {from: q1, on: b, to: q2}
---
Accepts exactly "ab".`,
		"digits.json": `{
  "name": "digits",
  "start": "s",
  "accepting": ["s"],
  "transitions": [{"from": "s", "on": "0-9", "to": "s"}]
}`,
	})

	tests.DefinitionLoaderContractTest(t, loader, map[string]string{
		"ab":     "q0",
		"digits": "s",
	})
}

func TestLoader_Get_BuildsEngine(t *testing.T) {
	loader := seed(t, map[string]string{
		"tie.md": `---
start: q0
accepting: [lit]
transitions:
  - {from: q0, on: "5", to: lit}
  - {from: q0, symbol: "0-9", to: class}
---
Literal five wins over the digit class.`,
	})

	def, err := loader.Get(context.Background(), "tie")
	require.NoError(t, err)

	assert.Equal(t, "Literal five wins over the digit class.", def.Description)
	assert.Equal(t, []domain.Edge{{Symbol: "5", To: "lit"}, {Symbol: "0-9", To: "class"}}, def.Transitions[0].Edges)

	eng := automaton.New(*def)
	assert.True(t, eng.IsAccepted("5"))
	assert.False(t, eng.IsAccepted("6"))
}

func TestLoader_DetectsCollisions(t *testing.T) {
	loader := seed(t, map[string]string{
		"foo.md": `---
name: foo
start: q0
---
Explicit name`,
		"foo.json": `{"name": "foo", "start": "q0"}`,
	})

	_, err := loader.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
}
