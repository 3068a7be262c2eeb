package java

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aegis-test/interfaces/gen/util"
	"github.com/aegis-test/interfaces/topology"
)

// renderRegistry renders the Topics registry: every destination as a
// typed constant, grouped into sections per domain. The private throwing
// constructor makes the registry non-instantiable.
func renderRegistry(model *topology.Model, basePackage string) string {
	imports := make([]string, 0, len(model.Topics))
	for _, topic := range model.Topics {
		imports = append(imports,
			fmt.Sprintf("import %s.topics.%s.%s;", basePackage, topic.Domain(), util.ToPascalCase(topic.Name)))
	}
	sort.Strings(imports)

	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	w("package %s.messaging;", basePackage)
	w("")
	for _, imp := range imports {
		w("%s", imp)
	}
	w("")
	w("/**")
	w(" * Central registry of all Pub/Sub destinations.")
	w(" *")
	w(" * <p>This class serves as the single entry point for accessing")
	w(" * topic and subscription information. All messaging code should")
	w(" * reference destinations through this class, never using string")
	w(" * literals directly.</p>")
	w(" *")
	w(" * <p><strong>Design Principles:</strong></p>")
	w(" * <ul>")
	w(" *   <li>NO string literals for topics or subscriptions in application code</li>")
	w(" *   <li>Type-safe access to all messaging destinations</li>")
	w(" *   <li>Single source of truth for Pub/Sub topology</li>")
	w(" *   <li>Immutable and thread-safe</li>")
	w(" * </ul>")
	w(" */")
	w("public final class Topics {")
	w("")
	w("    private Topics() {")
	w("        throw new AssertionError(\"Topics class should not be instantiated\");")
	w("    }")
	w("")

	for _, domain := range model.DomainNames {
		w("    // ────────────────────────────────────────────────────────────────")
		w("    // %s DOMAIN", strings.ToUpper(domain))
		w("    // ────────────────────────────────────────────────────────────────")
		w("")

		for _, topic := range model.Domains[domain] {
			w("    /**")
			w("     * Event topic: %s", topic.Name)
			w("     *")
			w("     * <p><strong>Producers:</strong> %s</p>", strings.Join(topic.ProducedBy, ", "))
			w("     * <p><strong>Consumers:</strong> %s</p>", strings.Join(topic.ConsumedBy, ", "))
			w("     * <p><strong>Payload:</strong> {@code %s}</p>", topic.EventSchema)
			w("     */")
			w("    public static final Destination %s = new %s();",
				util.ToConstName(topic.Name), util.ToPascalCase(topic.Name))
			w("")
		}
	}

	w("}")
	return sb.String()
}
