package classifier

import (
	"testing"
	"time"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/geo"
	"github.com/ternarybob/argus/internal/models"
)

func newTestClassifier() *Classifier {
	cat := catalog.LoadDefaults()
	return New(cat, geo.NewResolver(cat), nil)
}

func testItem(title string) *models.RawItem {
	return &models.RawItem{
		ID:                "itm_test",
		Title:             title,
		URL:               "https://example.com/article",
		Source:            "example",
		SourceReliability: 4,
		PublishedAt:       time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestClassifyAirstrike(t *testing.T) {
	c := newTestClassifier()

	frame, err := c.Classify(testItem("Russian air strikes hit Kyiv overnight"))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if frame == nil {
		t.Fatal("item was skipped")
	}
	if frame.EventType != models.EventAirstrike {
		t.Errorf("EventType = %s, want airstrike", frame.EventType)
	}
	if frame.Severity != 6 {
		t.Errorf("Severity = %d, want base 6", frame.Severity)
	}
	if frame.Confidence != 0.6 { // base 0.4 + one pattern hit
		t.Errorf("Confidence = %v, want 0.6", frame.Confidence)
	}
	if frame.Location.Name != "kyiv" || frame.Location.Country != "UA" {
		t.Errorf("Location = %+v, want kyiv/UA", frame.Location)
	}
	if frame.Actors.Attacker != "RU" || frame.Actors.Target != "UA" {
		t.Errorf("Actors = %+v, want RU attacking UA", frame.Actors)
	}
	if frame.EvidenceURL != "https://example.com/article" {
		t.Errorf("EvidenceURL = %s, want the item URL", frame.EvidenceURL)
	}
	if !frame.OccurredAt.Equal(testItem("").PublishedAt) {
		t.Errorf("OccurredAt = %v, want the published time", frame.OccurredAt)
	}
}

func TestClassifySeverityBoosts(t *testing.T) {
	c := newTestClassifier()

	frame, err := c.Classify(testItem("Air strikes on residential districts of Kharkiv left dozens dead"))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if frame == nil {
		t.Fatal("item was skipped")
	}
	// base 6, +2 mass casualties, +1 deaths, +1 civilian infrastructure
	if frame.Severity != 10 {
		t.Errorf("Severity = %d, want 10", frame.Severity)
	}
}

func TestClassifyUnknownWithIndicator(t *testing.T) {
	c := newTestClassifier()

	frame, err := c.Classify(testItem("Large explosion reported near Tehran"))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if frame == nil {
		t.Fatal("item was skipped")
	}
	if frame.EventType != models.EventUnknown {
		t.Errorf("EventType = %s, want unknown", frame.EventType)
	}
	if frame.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want unknown fallback 0.3", frame.Confidence)
	}
	if frame.Location.Country != "IR" {
		t.Errorf("Location = %+v, want Iran", frame.Location)
	}
}

func TestClassifySkipsWithoutIndicator(t *testing.T) {
	c := newTestClassifier()

	frame, err := c.Classify(testItem("Officials met in Vienna to discuss trade cooperation"))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if frame != nil {
		t.Errorf("got frame %+v, want skip", frame)
	}
}

func TestClassifySkipsWithoutLocation(t *testing.T) {
	c := newTestClassifier()

	frame, err := c.Classify(testItem("Explosion at a fuel depot killed several workers"))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if frame != nil {
		t.Errorf("got frame %+v, want skip without resolvable location", frame)
	}
}

func TestExtractActorsOrder(t *testing.T) {
	cat := catalog.LoadDefaults()

	actors := extractActors("israeli jets struck targets as iran vowed retaliation", cat.Actors)
	if actors.Attacker != "IL" || actors.Target != "IR" {
		t.Errorf("got %+v, want IL attacking IR", actors)
	}

	// Single mention leaves the target empty
	actors = extractActors("russian forces regrouped", cat.Actors)
	if actors.Attacker != "RU" || actors.Target != "" {
		t.Errorf("got %+v, want RU with empty target", actors)
	}

	// No known actors at all
	actors = extractActors("markets rallied on earnings", cat.Actors)
	if actors.Attacker != "" || actors.Target != "" {
		t.Errorf("got %+v, want empty", actors)
	}
}

func TestExtractCasualties(t *testing.T) {
	c := extractCasualties("3 soldiers were killed and 12 wounded in the strike")
	if c == nil {
		t.Fatal("got nil casualties")
	}
	if c.Killed != 3 || c.Wounded != 12 || c.Civilian {
		t.Errorf("got %+v, want 3 killed, 12 wounded, no civilians", c)
	}

	c = extractCasualties("14 civilians were killed in the shelling")
	if c == nil {
		t.Fatal("got nil casualties")
	}
	if c.Killed != 14 || !c.Civilian {
		t.Errorf("got %+v, want 14 killed with civilian flag", c)
	}

	if c = extractCasualties("no numbers mentioned here"); c != nil {
		t.Errorf("got %+v, want nil without counts", c)
	}
}
