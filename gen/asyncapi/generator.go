// Package asyncapi emits the consolidated AsyncAPI 3.1.0 interface
// document: one channel per topic, plus message and schema components
// deduplicated on the event schema reference.
package asyncapi

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/errors"
	"github.com/aegis-test/interfaces/gen"
	"github.com/aegis-test/interfaces/gen/util"
	"github.com/aegis-test/interfaces/topology"
)

// Generator implements gen.Generator for the AsyncAPI document
type Generator struct{}

// NewGenerator creates a new AsyncAPI document generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "asyncapi"
func (g *Generator) Language() string {
	return "asyncapi"
}

// Generate renders the full interface document (implements gen.Generator)
func (g *Generator) Generate(model *topology.Model, cfg *config.Config) (*gen.Result, error) {
	doc := mapping()
	putStr(doc, "asyncapi", "3.1.0")
	put(doc, "info", infoSection(cfg))
	putStr(doc, "defaultContentType", "application/json")
	put(doc, "servers", serversSection(cfg))

	channels := mapping()
	messages := mapping()
	schemas := mapping()

	for _, topic := range model.Topics {
		event := model.Event(topic.EventSchema)
		put(channels, topic.Name, channelEntry(topic))

		// Multiple topics may share one event; message and schema
		// components collapse on the schema reference
		if !hasKey(messages, topic.EventSchema) {
			put(messages, topic.EventSchema, messageEntry(topic, event))
		}
		if !hasKey(schemas, topic.EventSchema) {
			put(schemas, topic.EventSchema, event.Schema)
		}
	}

	put(doc, "channels", channels)

	components := mapping()
	put(components, "messages", messages)
	put(components, "schemas", schemas)
	put(components, "messageTraits", messageTraits())
	put(doc, "components", components)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode interface document")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize interface document")
	}

	return &gen.Result{
		Language: g.Language(),
		Files: []gen.File{
			{Path: cfg.Paths.DocumentFile, Content: buf.Bytes()},
		},
	}, nil
}

func infoSection(cfg *config.Config) *yaml.Node {
	contact := mapping()
	putStr(contact, "name", cfg.Document.ContactName)
	putStr(contact, "url", cfg.Document.ContactURL)

	license := mapping()
	putStr(license, "name", cfg.Document.LicenseName)

	info := mapping()
	putStr(info, "title", cfg.Document.Title)
	putStr(info, "description", cfg.Document.Description)
	putStr(info, "version", cfg.Document.Version)
	put(info, "contact", contact)
	put(info, "license", license)
	return info
}

func serversSection(cfg *config.Config) *yaml.Node {
	projectID := mapping()
	putStr(projectID, "default", cfg.Server.ProjectID)
	putStr(projectID, "description", "Google Cloud Project ID")

	variables := mapping()
	put(variables, "projectId", projectID)

	production := mapping()
	putStr(production, "host", cfg.Server.Host)
	putStr(production, "protocol", cfg.Server.Protocol)
	putStr(production, "description", cfg.Server.Description)
	put(production, "variables", variables)

	servers := mapping()
	put(servers, "production", production)
	return servers
}

func channelEntry(topic *topology.Topic) *yaml.Node {
	channel := mapping()
	putStr(channel, "address", fmt.Sprintf("projects/{projectId}/topics/%s", topic.Topic))
	putStr(channel, "title", util.ToTitleWords(topic.Name))
	putStr(channel, "description", channelDescription(topic))

	channelMessages := mapping()
	put(channelMessages, topic.EventSchema, ref("#/components/messages/"+topic.EventSchema))
	put(channel, "messages", channelMessages)

	schemaSettings := mapping()
	putStr(schemaSettings, "name", topic.EventSchema)
	putStr(schemaSettings, "encoding", "json")

	pubsub := mapping()
	put(pubsub, "schemaSettings", schemaSettings)

	bindings := mapping()
	put(bindings, "googlepubsub", pubsub)
	put(channel, "bindings", bindings)

	return channel
}

// channelDescription appends the topology footer: producers, consumers,
// and the delivery guarantee.
func channelDescription(topic *topology.Topic) string {
	var sb strings.Builder
	sb.WriteString(topic.Description)
	sb.WriteString("\n\n**Topology:**\n")
	sb.WriteString("- Producer: " + strings.Join(topic.ProducedBy, ", ") + "\n")
	sb.WriteString("- Consumer: " + strings.Join(topic.ConsumedBy, ", ") + "\n")
	sb.WriteString("- Guarantee: at-least-once")
	return sb.String()
}

func messageEntry(topic *topology.Topic, event *topology.Event) *yaml.Node {
	message := mapping()
	putStr(message, "name", topic.EventSchema)
	putStr(message, "title", event.SchemaName)
	putStr(message, "contentType", "application/json")
	putStr(message, "description", event.Description)
	put(message, "payload", ref("#/components/schemas/"+topic.EventSchema))
	put(message, "traits", sequence(ref("#/components/messageTraits/CommonEventMetadata")))
	return message
}

// messageTraits declares the common delivery metadata every event message
// carries in its headers.
func messageTraits() *yaml.Node {
	schema := mapping()
	putStr(schema, "type", "string")
	putStr(schema, "description", "Schema identifier for validation")
	putStr(schema, "example", "SpecificationRequestedEventV1")

	correlationID := mapping()
	putStr(correlationID, "type", "string")
	putStr(correlationID, "format", "uuid")
	putStr(correlationID, "description", "Correlation ID for tracing events across services")

	source := mapping()
	putStr(source, "type", "string")
	putStr(source, "description", "Service that published the event")
	putStr(source, "example", "portal")

	timestamp := mapping()
	putStr(timestamp, "type", "string")
	putStr(timestamp, "format", "date-time")
	putStr(timestamp, "description", "Server timestamp when event was published")

	properties := mapping()
	put(properties, "schema", schema)
	put(properties, "correlationId", correlationID)
	put(properties, "source", source)
	put(properties, "timestamp", timestamp)

	headers := mapping()
	putStr(headers, "type", "object")
	put(headers, "properties", properties)

	trait := mapping()
	put(trait, "headers", headers)

	traits := mapping()
	put(traits, "CommonEventMetadata", trait)
	return traits
}
