package file

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/dfa/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON definition document.
//
// The document is walked as a yaml.Node tree so that the declared order of
// transitions survives decoding. Two shapes are accepted for transitions:
//
//	transitions:            # nested mapping, source -> symbol -> destination
//	  q0: {a: q1}
//
//	transitions:            # ordered list of triples
//	  - {from: q0, on: a, to: q1}
//
// Scalars are taken verbatim, so keys such as 0 or 1-9 stay symbol labels.
func Decode(data []byte) (domain.Definition, error) {
	var def domain.Definition

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return def, fmt.Errorf("%w: %v", domain.ErrInvalidDefinition, err)
	}
	doc := resolve(&root)
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = resolve(doc.Content[0])
	}
	if doc.Kind != yaml.MappingNode {
		return def, fmt.Errorf("%w: document must be a mapping", domain.ErrInvalidDefinition)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i].Value, resolve(doc.Content[i+1])
		var err error
		switch key {
		case "name":
			def.Name, err = scalar(key, val)
		case "description":
			def.Description, err = scalar(key, val)
		case "start":
			def.Start, err = scalar(key, val)
		case "states":
			def.States, err = scalars(key, val)
		case "alphabet":
			def.Alphabet, err = scalars(key, val)
		case "accepting":
			def.Accepting, err = scalars(key, val)
		case "transitions":
			def.Transitions, err = table(val)
		}
		if err != nil {
			return def, err
		}
	}
	return def, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func scalar(key string, n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	default:
		return "", fmt.Errorf("%w: %s (line %d) must be a scalar", domain.ErrInvalidDefinition, key, n.Line)
	}
}

func scalars(key string, n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			s, err := scalar(key, resolve(item))
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s (line %d) must be a list", domain.ErrInvalidDefinition, key, n.Line)
	}
}

func table(n *yaml.Node) (domain.Table, error) {
	var t domain.Table
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			from := n.Content[i].Value
			edges := resolve(n.Content[i+1])
			if edges.Kind == yaml.ScalarNode && edges.Tag == "!!null" {
				continue
			}
			if edges.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: transitions of %q (line %d) must be a mapping", domain.ErrInvalidDefinition, from, edges.Line)
			}
			for j := 0; j+1 < len(edges.Content); j += 2 {
				to, err := scalar("destination", resolve(edges.Content[j+1]))
				if err != nil {
					return nil, err
				}
				t = t.Add(from, edges.Content[j].Value, to)
			}
		}
		return t, nil
	case yaml.SequenceNode:
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: transition (line %d) must be a mapping", domain.ErrInvalidDefinition, item.Line)
			}
			var from, on, to string
			for j := 0; j+1 < len(item.Content); j += 2 {
				v, err := scalar(item.Content[j].Value, resolve(item.Content[j+1]))
				if err != nil {
					return nil, err
				}
				switch item.Content[j].Value {
				case "from":
					from = v
				case "on", "symbol":
					on = v
				case "to":
					to = v
				}
			}
			t = t.Add(from, on, to)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: transitions (line %d) must be a mapping or a list", domain.ErrInvalidDefinition, n.Line)
}

// EncodeYAML writes def as YAML using the nested mapping form, keeping declared order.
func EncodeYAML(def domain.Definition) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		doc.Content = append(doc.Content, str(key), val)
	}

	if def.Name != "" {
		add("name", str(def.Name))
	}
	if def.Description != "" {
		add("description", str(def.Description))
	}
	add("states", flowSeq(def.States))
	add("alphabet", flowSeq(def.Alphabet))
	add("start", str(def.Start))
	add("accepting", flowSeq(def.Accepting))

	transitions := &yaml.Node{Kind: yaml.MappingNode}
	for _, row := range def.Transitions {
		edges := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range row.Edges {
			edges.Content = append(edges.Content, str(e.Symbol), str(e.To))
		}
		transitions.Content = append(transitions.Content, str(row.From), edges)
	}
	add("transitions", transitions)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	return buf.Bytes(), nil
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func flowSeq(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range items {
		n.Content = append(n.Content, str(s))
	}
	return n
}

// EncodeJSON writes def as JSON with transitions in the nested object form,
// keeping declared order (encoding/json would sort map keys).
func EncodeJSON(def domain.Definition) ([]byte, error) {
	var buf bytes.Buffer
	field := func(key string, v any, last bool) error {
		k, _ := json.Marshal(key)
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		if !last {
			buf.WriteByte(',')
		}
		return nil
	}
	orEmpty := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}

	buf.WriteByte('{')
	if err := field("name", def.Name, false); err != nil {
		return nil, err
	}
	if def.Description != "" {
		if err := field("description", def.Description, false); err != nil {
			return nil, err
		}
	}
	for _, f := range []struct {
		key string
		val any
	}{
		{"states", orEmpty(def.States)},
		{"alphabet", orEmpty(def.Alphabet)},
		{"start", def.Start},
		{"accepting", orEmpty(def.Accepting)},
	} {
		if err := field(f.key, f.val, false); err != nil {
			return nil, err
		}
	}

	buf.WriteString(`"transitions":{`)
	for i, row := range def.Transitions {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(row.From)
		buf.Write(k)
		buf.WriteString(":{")
		for j, e := range row.Edges {
			if err := field(e.Symbol, e.To, j == len(row.Edges)-1); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
