package topology

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aegis-test/interfaces/errors"
	"github.com/aegis-test/interfaces/logger"
)

// versionSegment matches a trailing ".v<N>" in an event file's base name,
// e.g. "specification-created.v1" -> strips ".v1".
var versionSegment = regexp.MustCompile(`\.v[0-9]+$`)

// LoadEvents reads every event schema from dir, keyed by schema identifier.
// Files are processed in lexicographic order. The identifier comes from the
// document's declared title, falling back to the version-stripped base name.
// Two files resolving to the same identifier is a fatal error: silently
// letting the last one win would desynchronize the generated wrappers from
// the document.
func LoadEvents(dir string) (map[string]*Event, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrMissingSource, "events directory not found: %s", dir)
		}
		return nil, errors.Wrapf(err, "failed to read events directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	events := make(map[string]*Event, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		event, err := loadEvent(path)
		if err != nil {
			return nil, err
		}

		if existing, ok := events[event.SchemaName]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicateSchema,
				"schema %q defined by both %s and %s", event.SchemaName, existing.Path, event.Path)
		}
		events[event.SchemaName] = event
		logger.Logger.Debugw("loaded event", "schema", event.SchemaName, "file", name)
	}

	return events, nil
}

func loadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read event schema %s", path)
	}

	// JSON is a YAML subset, so one parser covers both and yaml.Node
	// preserves the property order the document declares
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse event schema %s", path)
	}
	root := documentRoot(&doc)
	blockStyle(root)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = versionSegment.ReplaceAllString(base, "")

	event := &Event{
		Name:        base,
		Path:        path,
		SchemaName:  stringValue(root, "title", base),
		Description: stringValue(root, "description", ""),
		Schema:      root,
	}

	if props := mappingValue(root, "properties"); props != nil && props.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(props.Content); i += 2 {
			event.Properties = append(event.Properties, Property{
				Name:   props.Content[i].Value,
				Schema: props.Content[i+1],
			})
		}
	}

	required, err := stringList(root, "required")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid required list in %s", path)
	}
	event.Required = required

	return event, nil
}
