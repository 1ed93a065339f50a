package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.DefinitionLoader.
// setupData maps each expected name to the start state of its definition.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader, setupData map[string]string) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Success", func(t *testing.T) {
		for name, start := range setupData {
			def, err := loader.Get(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error getting definition %s: %v", name, err)
			}
			if def.Start != start {
				t.Errorf("start mismatch for %s. got %q, want %q", name, def.Start, start)
			}
			if def.Name != name {
				t.Errorf("name mismatch. got %q, want %q", def.Name, name)
			}
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := loader.Get(ctx, "non-existent-automaton")
		if !errors.Is(err, domain.ErrDefinitionNotFound) {
			t.Errorf("expected ErrDefinitionNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		names, err := loader.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing definitions: %v", err)
		}

		if len(names) != len(setupData) {
			t.Errorf("expected %d definitions, got %d", len(setupData), len(names))
		}

		lookup := make(map[string]bool)
		for _, name := range names {
			lookup[name] = true
		}

		for name := range setupData {
			if !lookup[name] {
				t.Errorf("definition %s missing from list", name)
			}
		}
	})
}
