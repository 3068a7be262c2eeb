package topology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const createdSchema = `{
  "title": "SpecificationCreatedEventV1",
  "description": "Emitted when a specification is persisted.",
  "type": "object",
  "properties": {
    "specificationId": {"type": "string", "format": "uuid"},
    "createdBy": {"type": "string"},
    "createdAt": {"type": "string", "format": "date-time"}
  },
  "required": ["specificationId", "createdAt"]
}`

const requestedSchema = `{
  "title": "SpecificationRequestedEventV1",
  "description": "Emitted when a user requests a new specification.",
  "type": "object",
  "properties": {
    "requestId": {"type": "string", "format": "uuid"},
    "prompt": {"type": "string"}
  },
  "required": ["requestId", "prompt"]
}`

const createdTopic = `name: specification-created
topic: aegis-test.specification.created
description: Specification persisted and ready for consumption.
producedBy:
  - orchestrator
consumedBy:
  - analytics
  - notifications
subscriptions:
  analytics: analytics.aegis-test.specification.created
  notifications: notifications.aegis-test.specification.created
payload:
  schema: SpecificationCreatedEventV1
  type: event
`

const requestedTopic = `name: specification-requested
topic: aegis-test.specification.requested
description: User requested a new specification.
producedBy:
  - portal
consumedBy:
  - orchestrator
subscriptions:
  orchestrator: orchestrator.aegis-test.specification.requested
payload:
  schema: SpecificationRequestedEventV1
`

// writeFixtures lays out the two-event/two-topic reference topology and
// returns the events and topics directories.
func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()

	eventsDir := filepath.Join(root, "events")
	topicsDir := filepath.Join(root, "topics")
	require.NoError(t, os.MkdirAll(eventsDir, 0o755))
	require.NoError(t, os.MkdirAll(topicsDir, 0o755))

	writeFile(t, eventsDir, "specification-created.v1.json", createdSchema)
	writeFile(t, eventsDir, "specification-requested.v1.json", requestedSchema)
	writeFile(t, topicsDir, "specification-created.yaml", createdTopic)
	writeFile(t, topicsDir, "specification-requested.yaml", requestedTopic)

	return eventsDir, topicsDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
