// Package gen coordinates emission: every target renders the same
// validated topology model into its own file set, fully in memory, and
// the pipeline writes all targets only after every render succeeded.
package gen

import (
	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/topology"
)

// File is one rendered output file, path relative to the repository root.
type File struct {
	Path    string
	Content []byte
}

// Result holds the rendered files of a single target.
type Result struct {
	Language string
	Files    []File
}

// Generator renders the validated topology model for one target language.
// Implementations must be deterministic: the same model and config always
// produce byte-identical files.
type Generator interface {
	// Language returns the target's display name
	Language() string

	// Generate renders the full file set for this target
	Generate(model *topology.Model, cfg *config.Config) (*Result, error)
}
