// Package cmd wires the aegisgen CLI: generate, validate, and check over
// a repository of event schemas and topic definitions.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/logger"
)

var (
	jsonOutput bool
	configPath string
	repoRoot   string
	eventsDir  string
	topicsDir  string
)

// RootCmd represents the aegisgen command
var RootCmd = &cobra.Command{
	Use:   "aegisgen",
	Short: "Generate messaging interface artifacts from topology definitions",
	Long: `Generate all interface artifacts from the events/ and topics/ definitions.

The topology sources are the single source of truth: event payload schemas
live in events/ (one JSON Schema per event) and channel definitions live in
topics/ (one YAML file per topic). From those, aegisgen regenerates:

  - asyncapi.yaml (AsyncAPI 3.1.0 interface document)
  - Java wrapper classes and the Topics registry
  - Python wrapper modules and the Topics registry

A run either fully succeeds or leaves every existing artifact untouched.

Examples:
  aegisgen generate                 # Regenerate everything in the current repo
  aegisgen generate --lang java     # Java wrappers only
  aegisgen validate                 # Load and cross-check without writing
  aegisgen check                    # Fail if generated artifacts are stale`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(jsonOutput)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Structured JSON log output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to aegisgen.toml (default: built-in configuration)")
	RootCmd.PersistentFlags().StringVarP(&repoRoot, "root", "r", ".", "Repository root containing the topology sources")
	RootCmd.PersistentFlags().StringVar(&eventsDir, "events", "", "Override the events directory (relative to --root)")
	RootCmd.PersistentFlags().StringVar(&topicsDir, "topics", "", "Override the topics directory (relative to --root)")

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(ValidateCmd)
	RootCmd.AddCommand(CheckCmd)
}

// loadConfig resolves the generator configuration from --config or the
// default lookup chain (aegisgen.toml, environment, built-ins).
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}
