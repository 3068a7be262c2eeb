package java

import (
	"fmt"
	"strings"

	"github.com/aegis-test/interfaces/gen/util"
	"github.com/aegis-test/interfaces/topology"
)

// renderDestinationClass renders one topic's destination class.
func renderDestinationClass(topic *topology.Topic, basePackage string) string {
	className := util.ToPascalCase(topic.Name)
	constName := util.ToConstName(topic.Name)
	defaultConsumer, hasDefault := topic.DefaultConsumer()

	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	w("package %s.topics.%s;", basePackage, topic.Domain())
	w("")
	w("import %s.messaging.Destination;", basePackage)
	w("import java.util.Map;")
	w("import java.util.Objects;")
	w("")
	w("/**")
	w(" * Destination for %s event.", topic.Name)
	w(" *")
	w(" * <p>%s</p>", topic.Description)
	w(" *")
	w(" * <p><strong>Contract:</strong> {@code %s}</p>", topic.EventSchema)
	w(" *")
	w(" * @see %s.messaging.Topics#%s", basePackage, constName)
	w(" */")
	w("public final class %s implements Destination {", className)
	w("")
	w("    private static final String NAME = %q;", topic.Name)
	w("    private static final String TOPIC = %q;", topic.Topic)
	w("    private static final String SCHEMA = %q;", topic.EventSchema)
	if hasDefault {
		w("    private static final String DEFAULT_CONSUMER = %q;", defaultConsumer)
	}
	w("")
	w("    private static final Map<String, String> SUBSCRIPTIONS = %s", subscriptionsMap(topic))
	w("")
	w("    public %s() {", className)
	w("        // Public constructor for instantiation")
	w("    }")
	w("")
	w("    @Override")
	w("    public String getName() {")
	w("        return NAME;")
	w("    }")
	w("")
	w("    @Override")
	w("    public String getTopic() {")
	w("        return TOPIC;")
	w("    }")
	w("")
	w("    @Override")
	w("    public String getSubscription(String consumer) {")
	w("        Objects.requireNonNull(consumer, \"consumer cannot be null\");")
	w("        String subscription = SUBSCRIPTIONS.get(consumer);")
	w("        if (subscription == null) {")
	w("            throw new IllegalArgumentException(")
	w("                \"Unknown consumer \" + consumer + \" for topic \" + NAME + \". \" +")
	w("                \"Valid consumers: \" + SUBSCRIPTIONS.keySet()")
	w("            );")
	w("        }")
	w("        return subscription;")
	w("    }")
	w("")
	sb.WriteString(defaultSubscriptionMethod(hasDefault))
	w("")
	w("    @Override")
	w("    public String getSchema() {")
	w("        return SCHEMA;")
	w("    }")
	w("")
	w("    @Override")
	w("    public String toString() {")
	w("        return \"%s{\" +", className)
	w("               \"name='\" + NAME + \"'\" +")
	w("               \", topic='\" + TOPIC + \"'\" +")
	w("               \", schema='\" + SCHEMA + \"'\" +")
	w("               \"}\";")
	w("    }")
	w("")
	w("    @Override")
	w("    public boolean equals(Object o) {")
	w("        if (this == o) return true;")
	w("        if (o == null || getClass() != o.getClass()) return false;")
	w("        %s that = (%s) o;", className, className)
	w("        return Objects.equals(TOPIC, that.getTopic());")
	w("    }")
	w("")
	w("    @Override")
	w("    public int hashCode() {")
	w("        return Objects.hash(TOPIC);")
	w("    }")
	w("}")

	return sb.String()
}

// subscriptionsMap renders the Map.of initializer for a topic's bindings.
func subscriptionsMap(topic *topology.Topic) string {
	if len(topic.Subscriptions) == 0 {
		return "Map.of();"
	}

	entries := make([]string, len(topic.Subscriptions))
	for i, s := range topic.Subscriptions {
		entries[i] = fmt.Sprintf("            %q, %q", s.Consumer, s.Name)
	}
	return "Map.of(\n" + strings.Join(entries, ",\n") + "\n        );"
}

// defaultSubscriptionMethod renders the zero-argument accessor: a
// delegation to the default consumer when one exists, otherwise the
// ambiguous-consumer failure naming every valid consumer.
func defaultSubscriptionMethod(hasDefault bool) string {
	if hasDefault {
		return `    @Override
    public String getSubscription() {
        return getSubscription(DEFAULT_CONSUMER);
    }
`
	}
	return `    @Override
    public String getSubscription() {
        throw new UnsupportedOperationException(
            "Topic " + NAME + " has multiple consumers. " +
            "Available consumers: " + SUBSCRIPTIONS.keySet() + ". " +
            "Use getSubscription(consumer) instead."
        );
    }
`
}
