// Package topology loads and validates the messaging topology: event
// schemas from events/, topic definitions from topics/, and the
// cross-references between them. The loaded model is immutable for the
// rest of a generation run; emitters are pure functions over it.
package topology

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Event represents one domain event schema.
type Event struct {
	// Name is the filename-derived base name with the version segment
	// stripped (e.g. "specification-created" from specification-created.v1.json)
	Name string
	// Path is the origin file, kept for diagnostics
	Path string
	// SchemaName is the schema identifier: the document's declared title,
	// falling back to Name when absent
	SchemaName string
	// Description is the schema's declared description, empty when absent
	Description string
	// Properties holds the schema's properties in document order
	Properties []Property
	// Required lists the schema's required property names
	Required []string
	// Schema is the full schema document body, preserved verbatim for
	// embedding in the interface document
	Schema *yaml.Node
}

// Property is one named property of an event schema.
type Property struct {
	Name   string
	Schema *yaml.Node
}

// Subscription binds a consumer to its subscription name.
// Order follows the topic definition file.
type Subscription struct {
	Consumer string
	Name     string
}

// Topic represents one messaging channel.
type Topic struct {
	// Name is the kebab-case semantic name
	Name string
	// Topic is the full dotted wire-level topic string
	Topic string
	// Description is the human description, empty when absent
	Description string
	// ProducedBy lists producing service identifiers in source order
	ProducedBy []string
	// ConsumedBy lists consuming service identifiers in source order
	ConsumedBy []string
	// Subscriptions maps consumers to subscription names in source order
	Subscriptions []Subscription
	// EventSchema is the referenced event schema identifier
	EventSchema string
	// EventType is the declared payload kind; only "event" is supported
	EventType string
	// Path is the origin file, kept for diagnostics
	Path string
}

// Domain returns the grouping token for this topic: the second
// dot-delimited segment of the wire-level topic string
// ("aegis-test.specification.created" -> "specification").
func (t *Topic) Domain() string {
	segments := strings.Split(t.Topic, ".")
	if len(segments) < 2 {
		return ""
	}
	return segments[1]
}

// DefaultConsumer returns the sole consumer when exactly one exists.
// Topics with zero or multiple consumers have no default.
func (t *Topic) DefaultConsumer() (string, bool) {
	if len(t.ConsumedBy) == 1 {
		return t.ConsumedBy[0], true
	}
	return "", false
}

// Subscription returns the subscription name bound to the given consumer.
func (t *Topic) Subscription(consumer string) (string, bool) {
	for _, s := range t.Subscriptions {
		if s.Consumer == consumer {
			return s.Name, true
		}
	}
	return "", false
}

// Consumers returns the consumer identifiers of the subscription mapping
// in source order.
func (t *Topic) Consumers() []string {
	consumers := make([]string, len(t.Subscriptions))
	for i, s := range t.Subscriptions {
		consumers[i] = s.Consumer
	}
	return consumers
}

// Model is the validated topology handed to every emitter.
type Model struct {
	// Events maps schema identifiers to events
	Events map[string]*Event
	// Topics holds all topics in file load order
	Topics []*Topic
	// Domains groups topics by domain token, insertion order per bucket
	Domains map[string][]*Topic
	// DomainNames lists domain tokens sorted for deterministic output
	DomainNames []string
}

// Event resolves a topic's event schema reference.
func (m *Model) Event(schemaName string) *Event {
	return m.Events[schemaName]
}
