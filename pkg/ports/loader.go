package ports

import (
	"context"

	"github.com/aretw0/dfa/pkg/domain"
)

// DefinitionLoader retrieves automaton definitions by name.
type DefinitionLoader interface {
	// Get returns the definition registered under name.
	// It returns an error wrapping domain.ErrDefinitionNotFound if there is none.
	Get(ctx context.Context, name string) (*domain.Definition, error)

	// List returns the names of all available definitions, sorted.
	List(ctx context.Context) ([]string, error)
}
