package python

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/topology"
)

func testModel() *topology.Model {
	created := &topology.Topic{
		Name:       "specification-created",
		Topic:      "aegis-test.specification.created",
		ProducedBy: []string{"orchestrator"},
		ConsumedBy: []string{"analytics", "notifications"},
		Subscriptions: []topology.Subscription{
			{Consumer: "analytics", Name: "analytics.aegis-test.specification.created"},
			{Consumer: "notifications", Name: "notifications.aegis-test.specification.created"},
		},
		EventSchema: "SpecificationCreatedEventV1",
		EventType:   "event",
	}
	requested := &topology.Topic{
		Name:       "specification-requested",
		Topic:      "aegis-test.specification.requested",
		ProducedBy: []string{"portal"},
		ConsumedBy: []string{"orchestrator"},
		Subscriptions: []topology.Subscription{
			{Consumer: "orchestrator", Name: "orchestrator.aegis-test.specification.requested"},
		},
		EventSchema: "SpecificationRequestedEventV1",
		EventType:   "event",
	}

	return &topology.Model{
		Events: map[string]*topology.Event{
			"SpecificationCreatedEventV1":   {SchemaName: "SpecificationCreatedEventV1"},
			"SpecificationRequestedEventV1": {SchemaName: "SpecificationRequestedEventV1"},
		},
		Topics:      []*topology.Topic{created, requested},
		Domains:     map[string][]*topology.Topic{"specification": {created, requested}},
		DomainNames: []string{"specification"},
	}
}

func TestGenerateFileLayout(t *testing.T) {
	result, err := NewGenerator().Generate(testModel(), config.Default())
	require.NoError(t, err)

	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = filepath.ToSlash(f.Path)
	}

	assert.Contains(t, paths, "wrappers/python/aegis_interfaces/messaging/destination.py")
	assert.Contains(t, paths, "wrappers/python/aegis_interfaces/messaging/topics.py")
	assert.Contains(t, paths, "wrappers/python/aegis_interfaces/__init__.py")
	assert.Contains(t, paths, "wrappers/python/aegis_interfaces/messaging/__init__.py")
}

func TestDestinationModule(t *testing.T) {
	code := renderDestinationModule(testModel())

	assert.Contains(t, code, "class EventType(Enum):")
	// One member per distinct schema, sorted by schema name
	created := strings.Index(code, `SPECIFICATIONCREATEDEVENTV1 = "aegis-test.specification.created"`)
	requested := strings.Index(code, `SPECIFICATIONREQUESTEDEVENTV1 = "aegis-test.specification.requested"`)
	require.Greater(t, created, 0)
	require.Greater(t, requested, 0)
	assert.Less(t, created, requested)

	assert.Contains(t, code, "@dataclass(frozen=True)")
	assert.Contains(t, code, "class Destination:")
	// Consumer-lookup condition names the unknown consumer and the valid set
	assert.Contains(t, code, "raise KeyError(")
	assert.Contains(t, code, `f"Unknown consumer '{consumer}' for topic '{self.name}'. "`)
	// Ambiguous-default condition
	assert.Contains(t, code, "raise ValueError(")
	assert.Contains(t, code, `f"Topic '{self.name}' has multiple consumers and no default. "`)
}

func TestDestinationModuleDeduplicatesSharedEvent(t *testing.T) {
	model := testModel()
	// Both topics now reference the same event schema
	model.Topics[1].EventSchema = "SpecificationCreatedEventV1"

	code := renderDestinationModule(model)
	assert.Equal(t, 1, strings.Count(code, "SPECIFICATIONCREATEDEVENTV1 ="))
}

func TestTopicsModule(t *testing.T) {
	code := renderTopicsModule(testModel(), "aegis_interfaces")

	assert.Contains(t, code, "from aegis_interfaces.messaging.destination import Destination, EventType")
	assert.Contains(t, code, "# SPECIFICATION DOMAIN")

	// Multi-consumer topic has no default
	assert.Contains(t, code, "SPECIFICATION_CREATED = Destination(")
	created := code[strings.Index(code, "SPECIFICATION_CREATED = Destination("):]
	created = created[:strings.Index(created, ")")+1]
	assert.Contains(t, created, `topic="aegis-test.specification.created"`)
	assert.Contains(t, created, "default_consumer=None")

	// Single-consumer topic defaults to its sole consumer
	requested := code[strings.Index(code, "SPECIFICATION_REQUESTED = Destination("):]
	requested = requested[:strings.Index(requested, ")")+1]
	assert.Contains(t, requested, `default_consumer="orchestrator"`)
	assert.Contains(t, requested, `"orchestrator": "orchestrator.aegis-test.specification.requested"`)

	// Non-instantiable registry
	assert.Contains(t, code, "def __init__(self) -> None:")
	assert.Contains(t, code, `raise TypeError("Topics class should not be instantiated")`)
}

func TestPackageInit(t *testing.T) {
	code := renderPackageInit("aegis_interfaces", "1.0.0")

	assert.Contains(t, code, `__version__ = "1.0.0"`)
	assert.Contains(t, code, "from aegis_interfaces.messaging.topics import Topics")
	assert.Contains(t, code, `"EventType",`)
}

func TestGenerateDeterministic(t *testing.T) {
	model := testModel()
	cfg := config.Default()

	first, err := NewGenerator().Generate(model, cfg)
	require.NoError(t, err)
	second, err := NewGenerator().Generate(model, cfg)
	require.NoError(t, err)

	require.Equal(t, len(first.Files), len(second.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Content, second.Files[i].Content)
	}
}
