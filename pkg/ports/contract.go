package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/domain"
)

// RunDefinitionStoreContract runs a suite of tests to verify that a DefinitionStore
// implementation adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	sample := func(name string) *domain.Definition {
		return &domain.Definition{
			Name:     name,
			States:   []string{"q0", "q1", "q2"},
			Alphabet: []string{"5", "0-9"},
			Transitions: domain.Table{
				{From: "q1", Edges: []domain.Edge{{Symbol: "5", To: "q2"}, {Symbol: "0-9", To: "q1"}}},
				{From: "q0", Edges: []domain.Edge{{Symbol: "0-9", To: "q1"}}},
			},
			Start:     "q0",
			Accepting: []string{"q2"},
		}
	}

	t.Run("Save and Get", func(t *testing.T) {
		def := sample(name)
		require.NoError(t, store.Save(ctx, def), "Save should not return error")

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, def.Start, loaded.Start)
		assert.Equal(t, def.Accepting, loaded.Accepting)
		assert.Equal(t, def.Transitions, loaded.Transitions, "declared order must survive persistence")
	})

	t.Run("Get Returns A Copy", func(t *testing.T) {
		loaded, err := store.Get(ctx, name)
		require.NoError(t, err)
		loaded.Transitions[0].Edges[0].To = "mutated"

		again, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "q2", again.Transitions[0].Edges[0].To)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("Save Without Name", func(t *testing.T) {
		err := store.Save(ctx, sample(""))
		assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, sample(id1)))
		require.NoError(t, store.Save(ctx, sample(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsIncreasing(t, names, fmt.Sprintf("names should be sorted: %v", names))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sample(name)))
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Get(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "Get after Delete should return ErrDefinitionNotFound")

		assert.NoError(t, store.Delete(ctx, name), "deleting twice is not an error")
	})
}
