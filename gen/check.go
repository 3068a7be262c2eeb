package gen

import (
	"bytes"
	"os"
	"path/filepath"
)

// CheckResult holds the result of a staleness check.
type CheckResult struct {
	UpToDate    bool
	Differences map[string][]string // language -> files that differ or are missing
}

// Check re-renders every target in memory and compares the bytes against
// the files currently on disk. Nothing is written; the comparison keys on
// exact content, which is safe because rendering is deterministic.
func (p *Pipeline) Check() (*CheckResult, error) {
	model, err := p.Load()
	if err != nil {
		return nil, err
	}

	results, err := p.Render(model)
	if err != nil {
		return nil, err
	}

	differences := make(map[string][]string)
	for _, result := range results {
		for _, file := range result.Files {
			existing, err := os.ReadFile(filepath.Join(p.Root, file.Path))
			if err != nil || !bytes.Equal(existing, file.Content) {
				differences[result.Language] = append(differences[result.Language], file.Path)
			}
		}
	}

	return &CheckResult{
		UpToDate:    len(differences) == 0,
		Differences: differences,
	}, nil
}
