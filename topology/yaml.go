package topology

import (
	"gopkg.in/yaml.v3"
)

// documentRoot unwraps a parsed document to its top-level mapping node.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// stringValue returns the scalar string for key, or fallback when absent.
func stringValue(m *yaml.Node, key, fallback string) string {
	if v := mappingValue(m, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return fallback
}

// stringList decodes the sequence node for key into a string slice.
func stringList(m *yaml.Node, key string) ([]string, error) {
	v := mappingValue(m, key)
	if v == nil {
		return nil, nil
	}
	var out []string
	if err := v.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// blockStyle recursively clears flow styling so schema bodies parsed from
// JSON re-encode as block YAML when embedded in the interface document.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// mappingPairs flattens a mapping node to ordered key/value string pairs.
func mappingPairs(m *yaml.Node) []Subscription {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([]Subscription, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		pairs = append(pairs, Subscription{
			Consumer: m.Content[i].Value,
			Name:     m.Content[i+1].Value,
		})
	}
	return pairs
}
