package ports

import (
	"context"

	"github.com/aretw0/dfa/pkg/domain"
)

// DefinitionStore persists automaton definitions.
type DefinitionStore interface {
	DefinitionLoader

	// Save persists def under def.Name, replacing any previous definition.
	Save(ctx context.Context, def *domain.Definition) error

	// Delete removes the definition. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error
}
