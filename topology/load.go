package topology

import (
	"sort"

	"github.com/aegis-test/interfaces/logger"
)

// Load runs the full load-and-validate stage: events, then topics, then
// cross-reference validation. The returned model is complete and
// ready for emission.
func Load(eventsDir, topicsDir string) (*Model, error) {
	logger.Logger.Infof("loading events from %s", eventsDir)
	events, err := LoadEvents(eventsDir)
	if err != nil {
		return nil, err
	}

	logger.Logger.Infof("loading topics from %s", topicsDir)
	topics, domains, err := LoadTopics(topicsDir)
	if err != nil {
		return nil, err
	}

	if err := Validate(events, topics); err != nil {
		return nil, err
	}

	domainNames := make([]string, 0, len(domains))
	for name := range domains {
		domainNames = append(domainNames, name)
	}
	sort.Strings(domainNames)

	logger.Logger.Infow("topology validated",
		"events", len(events), "topics", len(topics), "domains", len(domainNames))

	return &Model{
		Events:      events,
		Topics:      topics,
		Domains:     domains,
		DomainNames: domainNames,
	}, nil
}
