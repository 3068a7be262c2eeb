package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
// The defaults describe the Aegis Test topology; other deployments
// override them from aegisgen.toml.
func SetDefaults(v *viper.Viper) {
	// Interface document header
	v.SetDefault("document.title", "Aegis Test Event-Driven Architecture")
	v.SetDefault("document.description",
		"Complete event topology for the Aegis Test system.\n"+
			"This specification defines all events flowing through Google Cloud Pub/Sub,\n"+
			"including producers, consumers, and payload schemas.")
	v.SetDefault("document.version", "1.0.0")
	v.SetDefault("document.contact_name", "Aegis Test Team")
	v.SetDefault("document.contact_url", "https://github.com/peguidotte/interface-aegis-test")
	v.SetDefault("document.license_name", "MIT")

	// Transport descriptor
	v.SetDefault("server.host", "pubsub.googleapis.com")
	v.SetDefault("server.protocol", "googlepubsub")
	v.SetDefault("server.description", "Google Cloud Pub/Sub production server")
	v.SetDefault("server.project_id", "aegis-test-prod")

	// Java target
	v.SetDefault("java.base_package", "com.interfaces.aegis.test")
	v.SetDefault("java.output_dir", "wrappers/java")

	// Python target
	v.SetDefault("python.package", "aegis_interfaces")
	v.SetDefault("python.output_dir", "wrappers/python")

	// Source and output paths (relative to the repository root)
	v.SetDefault("paths.events_dir", "events")
	v.SetDefault("paths.topics_dir", "topics")
	v.SetDefault("paths.document_file", "asyncapi.yaml")
}
