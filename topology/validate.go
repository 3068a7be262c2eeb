package topology

import (
	"github.com/aegis-test/interfaces/errors"
)

// Validate checks referential integrity between topics and events.
// Every topic's event reference must resolve to a loaded schema and every
// topic must be event-typed; the first violation in topic order aborts the
// run. No emission happens after a validation failure.
func Validate(events map[string]*Event, topics []*Topic) error {
	for _, topic := range topics {
		if _, ok := events[topic.EventSchema]; !ok {
			return errors.Wrapf(errors.ErrUnresolvedReference,
				"topic %q references unknown event schema: %s", topic.Name, topic.EventSchema)
		}

		// Command and request/reply topics are deliberately unsupported;
		// this contract covers fire-and-forget events only
		if topic.EventType != "event" {
			return errors.Wrapf(errors.ErrUnsupportedPayloadKind,
				"topic %q has invalid type %q, only \"event\" is supported", topic.Name, topic.EventType)
		}
	}
	return nil
}
