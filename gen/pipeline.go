package gen

import (
	"os"
	"path/filepath"

	"github.com/aegis-test/interfaces/config"
	"github.com/aegis-test/interfaces/errors"
	"github.com/aegis-test/interfaces/logger"
	"github.com/aegis-test/interfaces/topology"
)

// Pipeline is the one-shot generation run: load events, load topics,
// validate, render every target, write everything.
type Pipeline struct {
	// Root is the repository root all source and output paths are
	// relative to
	Root       string
	Config     *config.Config
	Generators []Generator
}

// Load runs the load-and-validate stage against the configured source
// directories.
func (p *Pipeline) Load() (*topology.Model, error) {
	return topology.Load(
		filepath.Join(p.Root, p.Config.Paths.EventsDir),
		filepath.Join(p.Root, p.Config.Paths.TopicsDir),
	)
}

// Render produces the file sets of all targets without touching disk.
func (p *Pipeline) Render(model *topology.Model) ([]*Result, error) {
	results := make([]*Result, 0, len(p.Generators))
	for _, g := range p.Generators {
		result, err := g.Generate(model, p.Config)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s output", g.Language())
		}
		results = append(results, result)
	}
	return results, nil
}

// Run executes the whole pipeline. Rendering happens entirely in memory
// before the first write, so a failing load, validation, or render leaves
// every existing artifact untouched.
func (p *Pipeline) Run() error {
	model, err := p.Load()
	if err != nil {
		return err
	}

	results, err := p.Render(model)
	if err != nil {
		return err
	}

	for _, result := range results {
		for _, file := range result.Files {
			path := filepath.Join(p.Root, file.Path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return errors.Wrapf(err, "failed to create output directory for %s", file.Path)
			}
			if err := os.WriteFile(path, file.Content, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", file.Path)
			}
			logger.Logger.Infof("generated %s", file.Path)
		}
		logger.Logger.Infow("target complete", "language", result.Language, "files", len(result.Files))
	}

	return nil
}
