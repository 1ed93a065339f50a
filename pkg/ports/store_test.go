package ports_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

// MockStore is a minimal in-memory DefinitionStore used to exercise the contract itself.
type MockStore struct {
	data map[string]domain.Definition
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]domain.Definition)}
}

func (m *MockStore) Save(ctx context.Context, def *domain.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("save: %w: missing name", domain.ErrInvalidDefinition)
	}
	m.data[def.Name] = def.Clone()
	return nil
}

func (m *MockStore) Get(ctx context.Context, name string) (*domain.Definition, error) {
	def, ok := m.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, name)
	}
	cp := def.Clone()
	return &cp, nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.data))
	for k := range m.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	delete(m.data, name)
	return nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunDefinitionStoreContract(t, NewMockStore())
}
