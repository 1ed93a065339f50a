package dfa

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/dfa/internal/validator"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

type options struct {
	strict bool
	logger *slog.Logger
}

// Option defines a functional option for Load, Open and Build.
type Option func(*options)

// WithStrict rejects definitions that have error-level validation issues
// (unknown start state, transitions from undeclared states, and so on).
// Without it any definition builds, and undeclared states simply never accept.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger that receives validation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Build constructs an engine from def.
func Build(def domain.Definition, opts ...Option) (*automaton.Engine, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	logger := o.logger
	if def.Name != "" {
		logger = logger.With("automaton", def.Name)
	}

	if o.strict {
		if err := validator.Check(def); err != nil {
			return nil, err
		}
	}
	for _, issue := range validator.Validate(def) {
		logger.Warn("definition issue", "severity", issue.Severity, "kind", issue.Kind, "state", issue.State, "message", issue.Message)
	}

	return automaton.New(def), nil
}

// Load reads a YAML or JSON definition file and builds its engine.
func Load(path string, opts ...Option) (*automaton.Engine, error) {
	def, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	return Build(def, opts...)
}

// Open fetches the named definition from loader and builds its engine.
func Open(ctx context.Context, loader ports.DefinitionLoader, name string, opts ...Option) (*automaton.Engine, error) {
	def, err := loader.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton %q: %w", name, err)
	}
	if def.Name == "" {
		def.Name = name
	}
	return Build(*def, opts...)
}
