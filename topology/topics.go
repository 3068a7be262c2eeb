package topology

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aegis-test/interfaces/errors"
	"github.com/aegis-test/interfaces/logger"
)

// requiredTopicFields must all be present in every topic definition.
var requiredTopicFields = []string{
	"name", "topic", "producedBy", "consumedBy", "subscriptions", "payload",
}

// LoadTopics reads every topic definition from dir, returning the topics in
// file load order plus the domain buckets keyed by the second dot segment
// of each wire-level topic string.
func LoadTopics(dir string) ([]*Topic, map[string][]*Topic, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrapf(errors.ErrMissingSource, "topics directory not found: %s", dir)
		}
		return nil, nil, errors.Wrapf(err, "failed to read topics directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && (strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml")) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	topics := make([]*Topic, 0, len(names))
	domains := make(map[string][]*Topic)
	for _, name := range names {
		topic, err := loadTopic(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}

		topics = append(topics, topic)
		domains[topic.Domain()] = append(domains[topic.Domain()], topic)
		logger.Logger.Debugw("loaded topic", "name", topic.Name, "topic", topic.Topic)
	}

	return topics, domains, nil
}

func loadTopic(path string) (*Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read topic definition %s", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse topic definition %s", path)
	}
	root := documentRoot(&doc)

	file := filepath.Base(path)
	for _, field := range requiredTopicFields {
		if mappingValue(root, field) == nil {
			return nil, errors.Wrapf(errors.ErrMalformedTopology,
				"topic %s missing required field: %s", file, field)
		}
	}

	producedBy, err := stringList(root, "producedBy")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid producedBy in %s", file)
	}
	consumedBy, err := stringList(root, "consumedBy")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid consumedBy in %s", file)
	}

	payload := mappingValue(root, "payload")
	topic := &Topic{
		Name:          stringValue(root, "name", ""),
		Topic:         stringValue(root, "topic", ""),
		Description:   stringValue(root, "description", ""),
		ProducedBy:    producedBy,
		ConsumedBy:    consumedBy,
		Subscriptions: mappingPairs(mappingValue(root, "subscriptions")),
		EventSchema:   stringValue(payload, "schema", ""),
		// Omitted payload type means a plain event topic
		EventType: stringValue(payload, "type", "event"),
		Path:      path,
	}

	// The domain token is segment[1] of the wire string, so the topic
	// must be at least two segments deep
	if len(strings.Split(topic.Topic, ".")) < 2 {
		return nil, errors.Wrapf(errors.ErrMalformedTopology,
			"topic %s has no domain segment in wire name %q", file, topic.Topic)
	}

	return topic, nil
}
