package java

import (
	"fmt"
	"strings"
)

// renderDestinationInterface renders the Destination interface every
// generated topic class implements. Static apart from the package name,
// emitted alongside the wrappers so the tree is self-contained.
func renderDestinationInterface(basePackage string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s.messaging;\n", basePackage)
	sb.WriteString(`
/**
 * Represents a complete Pub/Sub messaging destination.
 *
 * A destination encapsulates:
 * - The topic name (where messages are published)
 * - The subscription name (where messages are consumed from)
 * - Semantic information about purpose and participants
 *
 * This is an immutable value object that serves as the single source
 * of truth for Pub/Sub routing.
 *
 * @implNote All implementations MUST be immutable and thread-safe.
 */
public interface Destination {

    /**
     * Returns the semantic name of this destination.
     * Used for logging and debugging purposes.
     *
     * @return semantic name in kebab-case (e.g., "specification-created")
     */
    String getName();

    /**
     * Returns the full Pub/Sub topic name.
     *
     * @return topic name (e.g., "aegis-test.specification.created")
     */
    String getTopic();

    /**
     * Returns the full Pub/Sub subscription name for a specific consumer.
     *
     * @param consumer the service consuming from this topic
     * @return subscription name (e.g., "orchestrator.aegis-test.specification.created")
     * @throws IllegalArgumentException if the consumer is not registered
     */
    String getSubscription(String consumer);

    /**
     * Returns the default subscription name.
     * This is typically used when there's only one primary consumer.
     *
     * @return default subscription name
     * @throws UnsupportedOperationException if there's no default consumer
     */
    String getSubscription();

    /**
     * Returns the schema identifier for the payload.
     *
     * @return schema name (e.g., "SpecificationCreatedEventV1")
     */
    String getSchema();
}
`)
	return sb.String()
}
