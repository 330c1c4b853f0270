package aggregator

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

const (
	// degenerateImpact is the neutral fallback when the impact computation
	// produces NaN (e.g. an empty bucket slipping through).
	degenerateImpact = 0.5
)

// Stats summarizes one aggregation pass
type Stats struct {
	FramesExamined int
	FramesDropped  int
	EventsCreated  int
}

// Aggregator groups matched event frames into fixed time buckets per
// conflict and persists evidence-linked ConflictEvent aggregates. Frames
// that match no known conflict, and buckets with no evidence URLs, are
// dropped rather than persisted.
type Aggregator struct {
	catalog    *catalog.Catalog
	frames     interfaces.FrameStorage
	conflicts  interfaces.ConflictStorage
	bucketSize time.Duration
	maxURLs    int
	logger     arbor.ILogger
}

func New(cat *catalog.Catalog, frames interfaces.FrameStorage, conflicts interfaces.ConflictStorage, config *common.Config, logger arbor.ILogger) *Aggregator {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Aggregator{
		catalog:    cat,
		frames:     frames,
		conflicts:  conflicts,
		bucketSize: config.Pipeline.BucketSize,
		maxURLs:    config.Pipeline.MaxEvidenceURLs,
		logger:     logger,
	}
}

type bucketKey struct {
	conflictID  string
	windowStart time.Time
}

// Run aggregates all unprocessed frames into conflict events. Every frame
// is marked processed afterwards whether or not it contributed; re-running
// over an already-aggregated window creates no duplicates.
func (a *Aggregator) Run(ctx context.Context) (*Stats, error) {
	frames, err := a.frames.GetUnprocessedFrames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unprocessed frames: %w", err)
	}

	stats := &Stats{FramesExamined: len(frames)}
	buckets := make(map[bucketKey][]*models.EventFrame)
	var order []bucketKey

	for _, frame := range frames {
		conflict := a.matchConflict(frame)
		if conflict == nil {
			stats.FramesDropped++
			if err := a.frames.MarkFrameProcessed(ctx, frame.ID, ""); err != nil {
				a.logger.Warn().Err(err).Str("frame_id", frame.ID).Msg("Failed to mark dropped frame processed")
			}
			continue
		}
		key := bucketKey{
			conflictID:  conflict.ID,
			windowStart: frame.OccurredAt.UTC().Truncate(a.bucketSize),
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], frame)
	}

	for _, key := range order {
		group := buckets[key]
		created, err := a.aggregateBucket(ctx, key, group)
		if err != nil {
			return stats, err
		}
		if created {
			stats.EventsCreated++
		}
		for _, frame := range group {
			if err := a.frames.MarkFrameProcessed(ctx, frame.ID, key.conflictID); err != nil {
				a.logger.Warn().Err(err).Str("frame_id", frame.ID).Msg("Failed to mark frame processed")
			}
		}
	}

	a.logger.Info().
		Int("frames", stats.FramesExamined).
		Int("dropped", stats.FramesDropped).
		Int("events", stats.EventsCreated).
		Msg("Aggregation pass complete")
	return stats, nil
}

// matchConflict resolves a frame to a known conflict via its actor pair.
// A frame without two known actors, or whose pair matches no catalog
// entry, matches nothing.
func (a *Aggregator) matchConflict(frame *models.EventFrame) *models.ConflictEntity {
	if frame.Actors.Attacker == "" || frame.Actors.Target == "" {
		return nil
	}
	return a.catalog.MatchConflict(frame.Actors.Attacker, frame.Actors.Target)
}

// aggregateBucket builds and persists the ConflictEvent for one bucket.
// Skips silently when the event already exists (idempotence) or when the
// bucket has no evidence URLs.
func (a *Aggregator) aggregateBucket(ctx context.Context, key bucketKey, frames []*models.EventFrame) (bool, error) {
	existing, err := a.conflicts.GetConflictEvent(ctx, key.conflictID, key.windowStart)
	if err != nil {
		return false, fmt.Errorf("failed to check conflict event %s@%s: %w", key.conflictID, key.windowStart.Format(time.RFC3339), err)
	}
	if existing != nil {
		return false, nil
	}

	urls := collectEvidenceURLs(frames, a.maxURLs)
	if len(urls) == 0 {
		a.logger.Debug().
			Str("conflict_id", key.conflictID).
			Str("window_start", key.windowStart.Format(time.RFC3339)).
			Int("frames", len(frames)).
			Msg("Discarding bucket with no evidence URLs")
		return false, nil
	}

	severitySum := 0
	maxSeverity := 0
	confidenceSum := 0.0
	typeCounts := make(map[models.EventType]int)
	var typeOrder []models.EventType

	for _, frame := range frames {
		severitySum += frame.Severity
		if frame.Severity > maxSeverity {
			maxSeverity = frame.Severity
		}
		confidenceSum += frame.Confidence
		if _, seen := typeCounts[frame.EventType]; !seen {
			typeOrder = append(typeOrder, frame.EventType)
		}
		typeCounts[frame.EventType]++
	}

	n := float64(len(frames))
	impact := (float64(maxSeverity) / 5.0) * (confidenceSum / n)
	if math.IsNaN(impact) {
		impact = degenerateImpact
	}
	if impact > 1.0 {
		impact = 1.0
	}
	if impact < 0 {
		impact = 0
	}

	dominant := typeOrder[0]
	for _, t := range typeOrder[1:] {
		if typeCounts[t] > typeCounts[dominant] {
			dominant = t
		}
	}

	event := &models.ConflictEvent{
		ID:                common.NewConflictEventID(),
		ConflictID:        key.conflictID,
		WindowStart:       key.windowStart,
		WindowEnd:         key.windowStart.Add(a.bucketSize),
		DominantEventType: dominant,
		Severity:          int(math.Round(float64(severitySum) / n)),
		ImpactScore:       impact,
		MaxSeverity:       maxSeverity,
		EventCount:        len(frames),
		EvidenceURLs:      urls,
		CreatedAt:         time.Now().UTC(),
	}
	if err := a.conflicts.SaveConflictEvent(ctx, event); err != nil {
		return false, fmt.Errorf("failed to save conflict event %s: %w", event.ID, err)
	}
	return true, nil
}

// collectEvidenceURLs gathers up to max unique non-empty source URLs in
// frame order.
func collectEvidenceURLs(frames []*models.EventFrame, max int) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, frame := range frames {
		url := frame.EvidenceURL
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		urls = append(urls, url)
		if len(urls) >= max {
			break
		}
	}
	return urls
}
