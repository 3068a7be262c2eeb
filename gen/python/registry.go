package python

import (
	"fmt"
	"strings"

	"github.com/aegis-test/interfaces/gen/util"
	"github.com/aegis-test/interfaces/topology"
)

const sectionRule = "────────────────────────────────────────────────────────────────"

// renderTopicsModule renders topics.py: every destination as a class-level
// constant on the Topics registry, grouped into sections per domain. The
// raising __init__ makes the registry non-instantiable.
func renderTopicsModule(model *topology.Model, pkg string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `"""
Central registry of all Pub/Sub destinations.

This module serves as the single entry point for accessing topic and
subscription information. All messaging code should reference destinations
through this module, never using string literals directly.

Design Principles:
    - NO string literals for topics or subscriptions in application code
    - Type-safe access to all messaging destinations
    - Single source of truth for Pub/Sub topology
    - Immutable and thread-safe
"""

from %s.messaging.destination import Destination, EventType


class Topics:
    """Central registry of all Pub/Sub messaging destinations."""

`, pkg)

	for _, domain := range model.DomainNames {
		fmt.Fprintf(&sb, "    # %s\n", sectionRule)
		fmt.Fprintf(&sb, "    # %s DOMAIN\n", strings.ToUpper(domain))
		fmt.Fprintf(&sb, "    # %s\n\n", sectionRule)

		for _, topic := range model.Domains[domain] {
			sb.WriteString(renderDestinationConstant(topic))
		}
	}

	sb.WriteString(`    def __init__(self) -> None:
        """Private constructor - this class should not be instantiated."""
        raise TypeError("Topics class should not be instantiated")
`)
	return sb.String()
}

func renderDestinationConstant(topic *topology.Topic) string {
	var entries []string
	for _, s := range topic.Subscriptions {
		entries = append(entries, fmt.Sprintf("            %q: %q", s.Consumer, s.Name))
	}
	subscriptions := "{\n" + strings.Join(entries, ",\n") + "\n        }"
	if len(entries) == 0 {
		subscriptions = "{}"
	}

	defaultConsumer := "None"
	if consumer, ok := topic.DefaultConsumer(); ok {
		defaultConsumer = fmt.Sprintf("%q", consumer)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "    %s = Destination(\n", util.ToConstName(topic.Name))
	fmt.Fprintf(&sb, "        name=%q,\n", topic.Name)
	fmt.Fprintf(&sb, "        topic=%q,\n", topic.Topic)
	fmt.Fprintf(&sb, "        subscriptions=%s,\n", subscriptions)
	fmt.Fprintf(&sb, "        event_type=EventType.%s,\n", strings.ToUpper(topic.EventSchema))
	fmt.Fprintf(&sb, "        schema=%q,\n", topic.EventSchema)
	fmt.Fprintf(&sb, "        default_consumer=%s,\n", defaultConsumer)
	sb.WriteString("    )\n")
	fmt.Fprintf(&sb, "    \"\"\"Event: %s\"\"\"\n\n", topic.Name)
	return sb.String()
}
