// Package java emits the Java wrapper tree: one destination class per
// topic under topics/<domain>/, the Topics registry, and the static
// Destination interface they implement.
package java

import (
	"path/filepath"
	"strings"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/gen"
	"github.com/aegis-test/interfaces/gen/util"
	"github.com/aegis-test/interfaces/topology"
)

// Generator implements gen.Generator for Java
type Generator struct{}

// NewGenerator creates a new Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "java"
func (g *Generator) Language() string {
	return "java"
}

// Generate renders the full Java wrapper tree (implements gen.Generator)
func (g *Generator) Generate(model *topology.Model, cfg *config.Config) (*gen.Result, error) {
	sourceRoot := filepath.Join(
		cfg.Java.OutputDir, "src", "main", "java",
		filepath.FromSlash(strings.ReplaceAll(cfg.Java.BasePackage, ".", "/")),
	)

	files := make([]gen.File, 0, len(model.Topics)+2)
	for _, topic := range model.Topics {
		className := util.ToPascalCase(topic.Name)
		files = append(files, gen.File{
			Path:    filepath.Join(sourceRoot, "topics", topic.Domain(), className+".java"),
			Content: []byte(renderDestinationClass(topic, cfg.Java.BasePackage)),
		})
	}

	files = append(files,
		gen.File{
			Path:    filepath.Join(sourceRoot, "messaging", "Topics.java"),
			Content: []byte(renderRegistry(model, cfg.Java.BasePackage)),
		},
		gen.File{
			Path:    filepath.Join(sourceRoot, "messaging", "Destination.java"),
			Content: []byte(renderDestinationInterface(cfg.Java.BasePackage)),
		},
	)

	return &gen.Result{Language: g.Language(), Files: files}, nil
}
