package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// extensions are tried in order when resolving a name to a file.
var extensions = []string{".yaml", ".yml", ".json"}

// Store implements ports.DefinitionStore using a directory of YAML/JSON files.
// A definition's name is its file name without extension.
type Store struct {
	BasePath string
}

// NewStore creates a new Store rooted at basePath.
// If basePath is empty, it defaults to "automata".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = "automata"
	}
	return &Store{BasePath: basePath}
}

// Load reads a single definition file. The name defaults to the file base name.
func Load(path string) (domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Decode(data)
	if err != nil {
		return def, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = trimExtension(filepath.Base(path))
	}
	return def, nil
}

// Get resolves name against the supported extensions and decodes the file.
func (s *Store) Get(ctx context.Context, name string) (*domain.Definition, error) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", domain.ErrDefinitionNotFound, name)
	}
	for _, ext := range extensions {
		def, err := Load(filepath.Join(s.BasePath, name+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		def.Name = name
		return &def, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, name)
}

// Save writes the definition as YAML atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, def *domain.Definition) error {
	if def == nil || def.Name == "" || strings.HasPrefix(def.Name, ".") || strings.ContainsAny(def.Name, `/\`) {
		return fmt.Errorf("file save: %w: missing or unsafe name", domain.ErrInvalidDefinition)
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure definition directory: %w", err)
	}

	data, err := EncodeYAML(*def)
	if err != nil {
		return err
	}

	destPath := filepath.Join(s.BasePath, def.Name+".yaml")

	tmpFile, err := os.CreateTemp(s.BasePath, ".tmp-"+def.Name+"-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to definition: %w", err)
	}

	// Siblings with other extensions would shadow or duplicate the new file.
	return s.remove(def.Name, ".yaml")
}

// Delete removes every file backing name.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.remove(name, "")
}

// remove deletes the files backing name, except the one with extension keep.
func (s *Store) remove(name, keep string) error {
	for _, ext := range extensions {
		if ext == keep {
			continue
		}
		err := os.Remove(filepath.Join(s.BasePath, name+ext))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete definition file: %w", err)
		}
	}
	return nil
}

// List returns the names of all definition files, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !supported(entry.Name()) {
			continue
		}
		name := trimExtension(entry.Name())
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func trimExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
