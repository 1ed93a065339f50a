package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/dfa/pkg/domain"
)

// Store implements ports.DefinitionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with definitions.
// Seed definitions without a name are skipped.
func NewStore(seed ...domain.Definition) *Store {
	s := &Store{
		data: make(map[string]domain.Definition),
	}
	for _, def := range seed {
		if def.Name != "" {
			s.data[def.Name] = def.Clone()
		}
	}
	return s
}

// Save persists a copy of the definition in memory.
func (s *Store) Save(ctx context.Context, def *domain.Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("memory save: %w: missing name", domain.ErrInvalidDefinition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[def.Name] = def.Clone()
	return nil
}

// Get retrieves a copy of the definition so callers can't mutate the store.
func (s *Store) Get(ctx context.Context, name string) (*domain.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, name)
	}
	ret := def.Clone()
	return &ret, nil
}

// Delete removes the definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
