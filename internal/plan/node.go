package plan

import "gopkg.in/yaml.v3"

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func kindName(n *yaml.Node) string {
	n = resolve(n)
	if n == nil {
		return "missing value"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown node"
	}
}

// mapping is a read-only view over a YAML mapping node.
type mapping struct {
	node *yaml.Node
}

func asMapping(n *yaml.Node) (mapping, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return mapping{}, false
	}
	return mapping{node: n}, true
}

// get returns the value of the first entry with the given key, or nil.
func (m mapping) get(key string) *yaml.Node {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		if k := resolve(m.node.Content[i]); k != nil && k.Value == key {
			return resolve(m.node.Content[i+1])
		}
	}
	return nil
}

func (m mapping) has(key string) bool {
	return m.get(key) != nil
}

// each visits entries in document order and stops at the first error.
func (m mapping) each(fn func(key string, val *yaml.Node) error) error {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		k := resolve(m.node.Content[i])
		if k == nil || k.Kind != yaml.ScalarNode {
			continue
		}
		if err := fn(k.Value, resolve(m.node.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// scalarString returns the text of a scalar node.
func scalarString(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}
