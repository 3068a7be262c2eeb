package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aegis-test/interfaces/errors"
)

var checkLang string

// CheckCmd verifies that the committed artifacts match the topology sources.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that generated artifacts are up to date",
	Long: `Re-render every target in memory and compare the result against the
files on disk. Nothing is written. Exits non-zero when any artifact is
missing or differs from what the current topology sources would produce,
which makes this suitable as a CI gate.`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkLang, "lang", "l", "all", "Targets to check: asyncapi, java, python, or all")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pipeline, err := newPipeline(checkLang)
	if err != nil {
		return err
	}

	result, err := pipeline.Check()
	if err != nil {
		return err
	}

	if result.UpToDate {
		fmt.Println("✓ All generated artifacts are up to date")
		return nil
	}

	languages := make([]string, 0, len(result.Differences))
	for language := range result.Differences {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		fmt.Printf("✗ %s artifacts are stale:\n", language)
		for _, path := range result.Differences[language] {
			fmt.Printf("    %s\n", path)
		}
	}

	return errors.Wrap(errors.ErrOutputsStale, "run 'aegisgen generate' and commit the result")
}
