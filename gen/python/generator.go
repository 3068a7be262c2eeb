// Package python emits the Python wrapper package: the Destination
// dataclass module with its EventType enum, the Topics registry, and the
// package __init__ scaffolding.
package python

import (
	"path/filepath"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/gen"
	"github.com/aegis-test/interfaces/topology"
)

// Generator implements gen.Generator for Python
type Generator struct{}

// NewGenerator creates a new Python generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "python"
func (g *Generator) Language() string {
	return "python"
}

// Generate renders the full Python wrapper package (implements gen.Generator)
func (g *Generator) Generate(model *topology.Model, cfg *config.Config) (*gen.Result, error) {
	pkgRoot := filepath.Join(cfg.Python.OutputDir, cfg.Python.Package)
	messaging := filepath.Join(pkgRoot, "messaging")

	files := []gen.File{
		{
			Path:    filepath.Join(messaging, "destination.py"),
			Content: []byte(renderDestinationModule(model)),
		},
		{
			Path:    filepath.Join(messaging, "topics.py"),
			Content: []byte(renderTopicsModule(model, cfg.Python.Package)),
		},
		{
			Path:    filepath.Join(pkgRoot, "__init__.py"),
			Content: []byte(renderPackageInit(cfg.Python.Package, cfg.Document.Version)),
		},
		{
			Path:    filepath.Join(messaging, "__init__.py"),
			Content: []byte(renderMessagingInit(cfg.Python.Package)),
		},
	}

	return &gen.Result{Language: g.Language(), Files: files}, nil
}
