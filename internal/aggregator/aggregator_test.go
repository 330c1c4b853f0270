package aggregator

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/models"
)

var bucketStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// fakeFrameStore is an in-memory FrameStorage for aggregator tests
type fakeFrameStore struct {
	frames    []*models.EventFrame
	processed map[string]string // frame ID -> conflict ID it was marked with
}

func newFakeFrameStore(frames ...*models.EventFrame) *fakeFrameStore {
	return &fakeFrameStore{frames: frames, processed: make(map[string]string)}
}

func (f *fakeFrameStore) SaveFrame(ctx context.Context, frame *models.EventFrame) error {
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeFrameStore) GetFrame(ctx context.Context, id string) (*models.EventFrame, error) {
	for _, frame := range f.frames {
		if frame.ID == id {
			return frame, nil
		}
	}
	return nil, fmt.Errorf("frame not found: %s", id)
}

func (f *fakeFrameStore) GetUnprocessedFrames(ctx context.Context) ([]*models.EventFrame, error) {
	var result []*models.EventFrame
	for _, frame := range f.frames {
		if !frame.Processed {
			result = append(result, frame)
		}
	}
	return result, nil
}

func (f *fakeFrameStore) MarkFrameProcessed(ctx context.Context, id string, conflictID string) error {
	for _, frame := range f.frames {
		if frame.ID == id {
			frame.Processed = true
			frame.ConflictID = conflictID
			f.processed[id] = conflictID
			return nil
		}
	}
	return fmt.Errorf("frame not found: %s", id)
}

func (f *fakeFrameStore) CountFrames(ctx context.Context) (int, error) {
	return len(f.frames), nil
}

// fakeConflictStore is an in-memory ConflictStorage for aggregator tests
type fakeConflictStore struct {
	events []*models.ConflictEvent
}

func (f *fakeConflictStore) SaveConflict(ctx context.Context, conflict *models.ConflictEntity) error {
	return nil
}

func (f *fakeConflictStore) GetConflict(ctx context.Context, id string) (*models.ConflictEntity, error) {
	return nil, fmt.Errorf("conflict not found: %s", id)
}

func (f *fakeConflictStore) GetAllConflicts(ctx context.Context) ([]*models.ConflictEntity, error) {
	return nil, nil
}

func (f *fakeConflictStore) SaveConflictEvent(ctx context.Context, event *models.ConflictEvent) error {
	if len(event.EvidenceURLs) == 0 {
		return fmt.Errorf("conflict event %s has no evidence URLs", event.ID)
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeConflictStore) GetConflictEvent(ctx context.Context, conflictID string, windowStart time.Time) (*models.ConflictEvent, error) {
	for _, e := range f.events {
		if e.ConflictID == conflictID && e.WindowStart.Equal(windowStart) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeConflictStore) GetConflictEventsSince(ctx context.Context, conflictID string, since time.Time) ([]*models.ConflictEvent, error) {
	var result []*models.ConflictEvent
	for _, e := range f.events {
		if e.ConflictID == conflictID && !e.WindowStart.Before(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeConflictStore) CountConflictEvents(ctx context.Context) (int, error) {
	return len(f.events), nil
}

func testFrame(id string, offset time.Duration, severity int, confidence float64, url string) *models.EventFrame {
	return &models.EventFrame{
		ID:          id,
		EventType:   models.EventAirstrike,
		Severity:    severity,
		Confidence:  confidence,
		OccurredAt:  bucketStart.Add(offset),
		Actors:      models.Actors{Attacker: "RU", Target: "UA"},
		EvidenceURL: url,
	}
}

func newTestAggregator(frames *fakeFrameStore, conflicts *fakeConflictStore) *Aggregator {
	return New(catalog.LoadDefaults(), frames, conflicts, common.NewDefaultConfig(), nil)
}

func TestRunAggregatesBucket(t *testing.T) {
	frames := newFakeFrameStore(
		testFrame("frm_a", time.Hour, 8, 0.8, "https://example.com/a"),
		testFrame("frm_b", 3*time.Hour, 7, 0.7, "https://example.com/b"),
	)
	conflicts := &fakeConflictStore{}

	stats, err := newTestAggregator(frames, conflicts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FramesExamined != 2 || stats.FramesDropped != 0 || stats.EventsCreated != 1 {
		t.Fatalf("stats = %+v, want 2 examined, 0 dropped, 1 created", stats)
	}
	if len(conflicts.events) != 1 {
		t.Fatalf("got %d events, want 1", len(conflicts.events))
	}

	event := conflicts.events[0]
	if event.ConflictID != "ru-ua" {
		t.Errorf("ConflictID = %s, want ru-ua", event.ConflictID)
	}
	if !event.WindowStart.Equal(bucketStart) {
		t.Errorf("WindowStart = %v, want %v", event.WindowStart, bucketStart)
	}
	if !event.WindowEnd.Equal(bucketStart.Add(6 * time.Hour)) {
		t.Errorf("WindowEnd = %v, want %v", event.WindowEnd, bucketStart.Add(6*time.Hour))
	}
	if event.Severity != 8 { // round(7.5)
		t.Errorf("Severity = %d, want 8", event.Severity)
	}
	if event.MaxSeverity != 8 || event.EventCount != 2 {
		t.Errorf("MaxSeverity = %d, EventCount = %d, want 8 and 2", event.MaxSeverity, event.EventCount)
	}
	// (8/5) * 0.75 overshoots; the impact clamps at 1
	if event.ImpactScore != 1.0 {
		t.Errorf("ImpactScore = %v, want clamped 1.0", event.ImpactScore)
	}
	if event.DominantEventType != models.EventAirstrike {
		t.Errorf("DominantEventType = %s, want airstrike", event.DominantEventType)
	}
	if len(event.EvidenceURLs) != 2 {
		t.Errorf("EvidenceURLs = %v, want both source URLs", event.EvidenceURLs)
	}
	for _, f := range frames.frames {
		if !f.Processed {
			t.Errorf("frame %s not marked processed", f.ID)
		}
	}
}

func TestRunImpactFormula(t *testing.T) {
	frames := newFakeFrameStore(testFrame("frm_a", time.Hour, 4, 0.7, "https://example.com/a"))
	conflicts := &fakeConflictStore{}

	if _, err := newTestAggregator(frames, conflicts).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(conflicts.events) != 1 {
		t.Fatalf("got %d events, want 1", len(conflicts.events))
	}
	want := (4.0 / 5.0) * 0.7
	if math.Abs(conflicts.events[0].ImpactScore-want) > 1e-9 {
		t.Errorf("ImpactScore = %v, want %v", conflicts.events[0].ImpactScore, want)
	}
}

func TestRunIsIdempotentPerWindow(t *testing.T) {
	frames := newFakeFrameStore(testFrame("frm_a", time.Hour, 6, 0.8, "https://example.com/a"))
	conflicts := &fakeConflictStore{}
	agg := newTestAggregator(frames, conflicts)

	if _, err := agg.Run(context.Background()); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	// A late frame lands in the already-aggregated window
	if err := frames.SaveFrame(context.Background(), testFrame("frm_late", 2*time.Hour, 9, 0.9, "https://example.com/late")); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}
	stats, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if stats.EventsCreated != 0 {
		t.Errorf("second pass created %d events, want 0", stats.EventsCreated)
	}
	if len(conflicts.events) != 1 {
		t.Errorf("store holds %d events, want 1", len(conflicts.events))
	}
	if frames.processed["frm_late"] != "ru-ua" {
		t.Error("late frame not marked processed against its conflict")
	}
}

func TestRunDropsUnmatchedFrames(t *testing.T) {
	noTarget := testFrame("frm_single", time.Hour, 6, 0.8, "https://example.com/a")
	noTarget.Actors = models.Actors{Attacker: "RU"}
	untracked := testFrame("frm_untracked", time.Hour, 6, 0.8, "https://example.com/b")
	untracked.Actors = models.Actors{Attacker: "US", Target: "UA"}

	frames := newFakeFrameStore(noTarget, untracked)
	conflicts := &fakeConflictStore{}

	stats, err := newTestAggregator(frames, conflicts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FramesDropped != 2 || stats.EventsCreated != 0 {
		t.Errorf("stats = %+v, want 2 dropped, 0 created", stats)
	}
	for id, conflictID := range frames.processed {
		if conflictID != "" {
			t.Errorf("dropped frame %s marked with conflict %q", id, conflictID)
		}
	}
	if len(frames.processed) != 2 {
		t.Errorf("%d frames marked processed, want 2", len(frames.processed))
	}
}

func TestRunDiscardsBucketWithoutEvidence(t *testing.T) {
	frames := newFakeFrameStore(
		testFrame("frm_a", time.Hour, 6, 0.8, ""),
		testFrame("frm_b", 2*time.Hour, 7, 0.7, ""),
	)
	conflicts := &fakeConflictStore{}

	stats, err := newTestAggregator(frames, conflicts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.EventsCreated != 0 {
		t.Errorf("created %d events from evidence-free bucket, want 0", stats.EventsCreated)
	}
	// The frames are still consumed so the bucket is not retried forever
	if frames.processed["frm_a"] != "ru-ua" || frames.processed["frm_b"] != "ru-ua" {
		t.Errorf("processed = %v, want both frames marked against ru-ua", frames.processed)
	}
}

func TestRunDeduplicatesEvidenceURLs(t *testing.T) {
	frames := newFakeFrameStore(
		testFrame("frm_a", time.Hour, 6, 0.8, "https://example.com/shared"),
		testFrame("frm_b", 2*time.Hour, 6, 0.8, "https://example.com/shared"),
		testFrame("frm_c", 3*time.Hour, 6, 0.8, "https://example.com/other"),
	)
	conflicts := &fakeConflictStore{}

	if _, err := newTestAggregator(frames, conflicts).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(conflicts.events) != 1 {
		t.Fatalf("got %d events, want 1", len(conflicts.events))
	}
	urls := conflicts.events[0].EvidenceURLs
	if len(urls) != 2 || urls[0] != "https://example.com/shared" || urls[1] != "https://example.com/other" {
		t.Errorf("EvidenceURLs = %v, want the two unique URLs in frame order", urls)
	}
}
