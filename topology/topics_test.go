package topology

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegis-test/interfaces/errors"
)

func TestLoadTopics(t *testing.T) {
	_, topicsDir := writeFixtures(t)

	topics, domains, err := LoadTopics(topicsDir)
	require.NoError(t, err)
	require.Len(t, topics, 2)

	// Lexicographic file order
	created, requested := topics[0], topics[1]
	assert.Equal(t, "specification-created", created.Name)
	assert.Equal(t, "aegis-test.specification.created", created.Topic)
	assert.Equal(t, []string{"orchestrator"}, created.ProducedBy)
	assert.Equal(t, []string{"analytics", "notifications"}, created.ConsumedBy)
	assert.Equal(t, "SpecificationCreatedEventV1", created.EventSchema)
	assert.Equal(t, "event", created.EventType)

	// Subscription bindings keep source order
	require.Len(t, created.Subscriptions, 2)
	assert.Equal(t, Subscription{"analytics", "analytics.aegis-test.specification.created"}, created.Subscriptions[0])
	assert.Equal(t, Subscription{"notifications", "notifications.aegis-test.specification.created"}, created.Subscriptions[1])

	// Omitted payload.type defaults to "event"
	assert.Equal(t, "event", requested.EventType)

	require.Len(t, domains, 1)
	assert.Len(t, domains["specification"], 2)
}

func TestLoadTopicsMissingRequiredField(t *testing.T) {
	full := map[string]string{
		"name":          "name: example-created",
		"topic":         "topic: aegis-test.example.created",
		"producedBy":    "producedBy:\n  - producer",
		"consumedBy":    "consumedBy:\n  - consumer",
		"subscriptions": "subscriptions:\n  consumer: consumer.aegis-test.example.created",
		"payload":       "payload:\n  schema: ExampleCreatedEventV1",
	}

	for _, missing := range requiredTopicFields {
		t.Run(missing, func(t *testing.T) {
			var parts []string
			for field, block := range full {
				if field != missing {
					parts = append(parts, block)
				}
			}

			dir := t.TempDir()
			writeFile(t, dir, "example-created.yaml", strings.Join(parts, "\n")+"\n")

			_, _, err := LoadTopics(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedTopology))
			assert.Contains(t, err.Error(), "example-created.yaml")
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoadTopicsMissingDirectory(t *testing.T) {
	_, _, err := LoadTopics(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingSource))
}

func TestLoadTopicsNoDomainSegment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "flat.yaml", `name: flat
topic: flat-topic-without-segments
producedBy: [a]
consumedBy: [b]
subscriptions:
  b: b.flat
payload:
  schema: FlatEventV1
`)

	_, _, err := LoadTopics(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedTopology))
}

func TestTopicDomain(t *testing.T) {
	topic := &Topic{Topic: "aegis-test.specification.created"}
	assert.Equal(t, "specification", topic.Domain())
}

func TestTopicDefaultConsumer(t *testing.T) {
	tests := []struct {
		name      string
		consumers []string
		want      string
		ok        bool
	}{
		{"single consumer", []string{"orchestrator"}, "orchestrator", true},
		{"multiple consumers", []string{"analytics", "notifications"}, "", false},
		{"no consumers", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := &Topic{ConsumedBy: tt.consumers}
			got, ok := topic.DefaultConsumer()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopicSubscriptionLookup(t *testing.T) {
	topic := &Topic{
		Subscriptions: []Subscription{
			{"analytics", "analytics.aegis-test.specification.created"},
			{"notifications", "notifications.aegis-test.specification.created"},
		},
	}

	sub, ok := topic.Subscription("analytics")
	assert.True(t, ok)
	assert.Equal(t, "analytics.aegis-test.specification.created", sub)

	_, ok = topic.Subscription("billing")
	assert.False(t, ok)

	assert.Equal(t, []string{"analytics", "notifications"}, topic.Consumers())
}
