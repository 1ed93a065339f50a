package dsl

import (
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	def  domain.Definition
	seen map[string]bool
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		def:  domain.Definition{Name: name},
		seen: make(map[string]bool),
	}
}

// Describe sets a human readable description.
func (b *Builder) Describe(text string) *Builder {
	b.def.Description = text
	return b
}

// State declares states. Declaring a state twice is a no-op.
func (b *Builder) State(labels ...string) *Builder {
	for _, l := range labels {
		if !b.seen[l] {
			b.seen[l] = true
			b.def.States = append(b.def.States, l)
		}
	}
	return b
}

// Alphabet declares symbols. The alphabet is informational; it does not restrict transitions.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.def.Alphabet = append(b.def.Alphabet, symbols...)
	return b
}

// Start sets the start state, declaring it if needed.
func (b *Builder) Start(label string) *Builder {
	b.State(label)
	b.def.Start = label
	return b
}

// Accept marks states as accepting, declaring them if needed.
func (b *Builder) Accept(labels ...string) *Builder {
	b.State(labels...)
	b.def.Accepting = append(b.def.Accepting, labels...)
	return b
}

// From returns a builder for the outgoing transitions of src.
func (b *Builder) From(src string) *RowBuilder {
	b.State(src)
	return &RowBuilder{from: src, builder: b}
}

// Definition returns a copy of the definition built so far.
func (b *Builder) Definition() domain.Definition {
	return b.def.Clone()
}

// Build compiles the definition into an engine.
func (b *Builder) Build() *automaton.Engine {
	return automaton.New(b.Definition())
}
