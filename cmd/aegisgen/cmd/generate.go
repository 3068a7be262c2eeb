package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/errors"
	"github.com/aegis-test/interfaces/gen"
	"github.com/aegis-test/interfaces/gen/asyncapi"
	"github.com/aegis-test/interfaces/gen/java"
	"github.com/aegis-test/interfaces/gen/python"
)

var generateLang string

// GenerateCmd regenerates the interface artifacts from the topology sources.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate interface artifacts from events/ and topics/",
	Long: `Load the event schemas and topic definitions, validate the
cross-references between them, and regenerate the selected targets.

All targets are rendered in memory before anything is written, so a
failure anywhere leaves the existing artifacts exactly as they were.`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateLang, "lang", "l", "all", "Targets to generate: asyncapi, java, python, or all")
}

// generatorsFor maps the --lang token to the set of target generators.
func generatorsFor(lang string) ([]gen.Generator, error) {
	switch lang {
	case "asyncapi":
		return []gen.Generator{asyncapi.NewGenerator()}, nil
	case "java":
		return []gen.Generator{java.NewGenerator()}, nil
	case "python":
		return []gen.Generator{python.NewGenerator()}, nil
	case "all":
		return []gen.Generator{
			asyncapi.NewGenerator(),
			java.NewGenerator(),
			python.NewGenerator(),
		}, nil
	default:
		return nil, errors.Newf("unknown target %q (expected asyncapi, java, python, or all)", lang)
	}
}

// newPipeline assembles a pipeline from the global flags plus the given
// target selection.
func newPipeline(lang string) (*gen.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	applyPathOverrides(cfg)

	generators, err := generatorsFor(lang)
	if err != nil {
		return nil, err
	}

	return &gen.Pipeline{
		Root:       repoRoot,
		Config:     cfg,
		Generators: generators,
	}, nil
}

func applyPathOverrides(cfg *config.Config) {
	if eventsDir != "" {
		cfg.Paths.EventsDir = eventsDir
	}
	if topicsDir != "" {
		cfg.Paths.TopicsDir = topicsDir
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pipeline, err := newPipeline(generateLang)
	if err != nil {
		return err
	}

	if err := pipeline.Run(); err != nil {
		return err
	}

	for _, g := range pipeline.Generators {
		fmt.Printf("✓ Generated %s artifacts\n", g.Language())
	}
	return nil
}
