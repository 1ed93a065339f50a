package loam

// Metadata is the frontmatter of a document describing one automaton.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
//
// Transitions are a list so that declared order survives decoding into Go.
type Metadata struct {
	Name        string               `json:"name" mapstructure:"name"`
	Description string               `json:"description" mapstructure:"description"`
	States      []string             `json:"states" mapstructure:"states"`
	Alphabet    []string             `json:"alphabet" mapstructure:"alphabet"`
	Start       string               `json:"start" mapstructure:"start"`
	Accepting   []string             `json:"accepting" mapstructure:"accepting"`
	Transitions []TransitionMetadata `json:"transitions" mapstructure:"transitions"`
}

// TransitionMetadata is one (from, on, to) entry. On accepts "symbol" as an alias.
// Symbols are typed loosely because strict mode decodes bare digits as numbers.
type TransitionMetadata struct {
	From   string `json:"from" mapstructure:"from"`
	On     any    `json:"on" mapstructure:"on"`
	Symbol any    `json:"symbol" mapstructure:"symbol"`
	To     string `json:"to" mapstructure:"to"`
}
