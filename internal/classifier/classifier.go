package classifier

import (
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

const (
	baseConfidence    = 0.4
	perMatchConfBoost = 0.2
	unknownConfidence = 0.3
	maxEvidenceLen    = 240
)

// Classifier turns raw items into structured event frames using the
// ordered rule table in rules.go.
type Classifier struct {
	catalog  *catalog.Catalog
	resolver interfaces.GeoResolver
	logger   arbor.ILogger
}

func New(cat *catalog.Catalog, resolver interfaces.GeoResolver, logger arbor.ILogger) *Classifier {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Classifier{
		catalog:  cat,
		resolver: resolver,
		logger:   logger,
	}
}

// Classify produces an event frame for the item, or nil when the item
// should be skipped: no classifiable content, or no resolvable location.
func (c *Classifier) Classify(item *models.RawItem) (*models.EventFrame, error) {
	text := item.Text()

	eventType, matchCount := c.matchType(text)
	confidence := baseConfidence + perMatchConfBoost*float64(matchCount)
	if confidence > 1.0 {
		confidence = 1.0
	}
	if eventType == models.EventUnknown {
		if !hasSeverityIndicator(text) {
			return nil, nil
		}
		confidence = unknownConfidence
	}

	location, err := c.resolver.Resolve(text)
	if err != nil {
		return nil, err
	}
	if location == nil {
		c.logger.Debug().
			Str("item_id", item.ID).
			Str("event_type", string(eventType)).
			Msg("no resolvable location, skipping item")
		return nil, nil
	}

	severity := baseSeverityFor(eventType)
	for _, boost := range severityBoosts {
		if boost.pattern.MatchString(text) {
			severity += boost.boost
		}
	}
	if severity < 1 {
		severity = 1
	}
	if severity > 10 {
		severity = 10
	}

	occurredAt := item.PublishedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	frame := &models.EventFrame{
		ID:                common.NewFrameID(),
		ItemID:            item.ID,
		EventType:         eventType,
		Severity:          severity,
		Confidence:        confidence,
		OccurredAt:        occurredAt,
		Location:          *location,
		Actors:            extractActors(text, c.catalog.Actors),
		Casualties:        extractCasualties(text),
		Evidence:          snippet(text),
		EvidenceURL:       item.URL,
		SourceReliability: item.SourceReliability,
		CreatedAt:         time.Now().UTC(),
	}
	return frame, nil
}

// matchType runs every rule against the text and returns the type with
// the most pattern hits. Ties break toward the earlier rule in the table.
func (c *Classifier) matchType(text string) (models.EventType, int) {
	bestType := models.EventUnknown
	bestCount := 0
	for _, rule := range typeRules {
		count := 0
		for _, pattern := range rule.patterns {
			if pattern.MatchString(text) {
				count++
			}
		}
		if count > bestCount {
			bestType = rule.eventType
			bestCount = count
		}
	}
	return bestType, bestCount
}

func baseSeverityFor(eventType models.EventType) int {
	for _, rule := range typeRules {
		if rule.eventType == eventType {
			return rule.baseSeverity
		}
	}
	return 3 // unknown
}

func hasSeverityIndicator(text string) bool {
	for _, pattern := range severityIndicators {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func snippet(text string) string {
	if len(text) <= maxEvidenceLen {
		return text
	}
	return text[:maxEvidenceLen]
}
