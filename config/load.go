package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/aegis-test/interfaces/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the generator configuration using Viper.
// Defaults apply when no aegisgen.toml is present; environment
// variables with the AEGISGEN_ prefix override both.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Default returns the built-in configuration without consulting any
// config file or environment. Used by tests.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var config Config
	// Unmarshal over pure defaults cannot fail
	_ = v.Unmarshal(&config)
	return &config
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("AEGISGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Optional config file next to the topology sources
	v.SetConfigName("aegisgen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	// Missing config file is fine, defaults carry the Aegis Test identity
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}
