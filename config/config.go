// Package config holds the generator configuration: the static AsyncAPI
// document header, the transport descriptor, and per-target rendering
// settings. None of this is computed from the topology sources — it is
// the fixed identity of the interface contract.
package config

// Config represents the full generator configuration
type Config struct {
	Document DocumentConfig `mapstructure:"document"`
	Server   ServerConfig   `mapstructure:"server"`
	Java     JavaConfig     `mapstructure:"java"`
	Python   PythonConfig   `mapstructure:"python"`
	Paths    PathsConfig    `mapstructure:"paths"`
}

// DocumentConfig is the static info block of the generated interface document
type DocumentConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Version     string `mapstructure:"version"`
	ContactName string `mapstructure:"contact_name"`
	ContactURL  string `mapstructure:"contact_url"`
	LicenseName string `mapstructure:"license_name"`
}

// ServerConfig describes the messaging transport the document advertises
type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Protocol    string `mapstructure:"protocol"`
	Description string `mapstructure:"description"`
	ProjectID   string `mapstructure:"project_id"` // default value of the {projectId} address variable
}

// JavaConfig configures the Java wrapper target
type JavaConfig struct {
	BasePackage string `mapstructure:"base_package"` // e.g. "com.interfaces.aegis.test"
	OutputDir   string `mapstructure:"output_dir"`   // relative to the repository root
}

// PythonConfig configures the Python wrapper target
type PythonConfig struct {
	Package   string `mapstructure:"package"`    // e.g. "aegis_interfaces"
	OutputDir string `mapstructure:"output_dir"` // relative to the repository root
}

// PathsConfig locates topology sources and the document output
type PathsConfig struct {
	EventsDir    string `mapstructure:"events_dir"`
	TopicsDir    string `mapstructure:"topics_dir"`
	DocumentFile string `mapstructure:"document_file"`
}
