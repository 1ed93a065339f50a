package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository to ports.DefinitionLoader.
// Each document (Markdown with frontmatter, YAML or JSON) describes one automaton.
type Loader struct {
	Repo *loam.TypedRepository[Metadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[Metadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[Metadata](repo)), nil
}

// Get retrieves the definition whose name (or document ID without extension) is name.
func (l *Loader) Get(ctx context.Context, name string) (*domain.Definition, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}

	docID, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, name)
	}

	doc, err := l.Repo.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", docID, err)
	}

	def := toDefinition(doc.Data)
	def.Name = name
	if def.Description == "" {
		def.Description = strings.TrimSpace(doc.Content)
	}
	return &def, nil
}

// List lists all definitions in the repository.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// index maps definition names to Loam document IDs.
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	index := make(map[string]string, len(docs))
	for _, doc := range docs {
		name := doc.Data.Name
		if name == "" {
			name = trimExtension(doc.ID)
		}

		if existing, ok := index[name]; ok {
			return nil, fmt.Errorf("collision detected: automaton '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		index[name] = doc.ID
	}
	return index, nil
}

func toDefinition(meta Metadata) domain.Definition {
	def := domain.Definition{
		Name:        meta.Name,
		Description: meta.Description,
		States:      meta.States,
		Alphabet:    meta.Alphabet,
		Start:       meta.Start,
		Accepting:   meta.Accepting,
	}

	for _, t := range meta.Transitions {
		sym := t.On
		if sym == nil {
			sym = t.Symbol
		}
		label := ""
		if sym != nil {
			label = fmt.Sprint(sym)
		}
		def.Transitions = def.Transitions.Add(t.From, label, t.To)
	}
	return def
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
