package dsl

// RowBuilder provides a fluent API for the transitions leaving one state.
type RowBuilder struct {
	from    string
	builder *Builder
}

// On adds a transition on symbol to dst. Symbols are tried in the order On is called.
func (r *RowBuilder) On(symbol, dst string) *RowBuilder {
	r.builder.State(dst)
	r.builder.def.Transitions = r.builder.def.Transitions.Add(r.from, symbol, dst)
	return r
}

// Loop adds a self transition on each symbol.
func (r *RowBuilder) Loop(symbols ...string) *RowBuilder {
	for _, s := range symbols {
		r.On(s, r.from)
	}
	return r
}

// From switches to another source state.
func (r *RowBuilder) From(src string) *RowBuilder {
	return r.builder.From(src)
}

// Done returns the parent builder.
func (r *RowBuilder) Done() *Builder {
	return r.builder
}
