package asyncapi

import (
	"gopkg.in/yaml.v3"
)

// Small builders over yaml.Node. Mapping nodes keep insertion order, which
// is what makes the emitted document byte-reproducible.

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func put(m *yaml.Node, key string, value *yaml.Node) *yaml.Node {
	m.Content = append(m.Content, scalar(key), value)
	return m
}

func putStr(m *yaml.Node, key, value string) *yaml.Node {
	return put(m, key, scalar(value))
}

func ref(target string) *yaml.Node {
	return putStr(mapping(), "$ref", target)
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
