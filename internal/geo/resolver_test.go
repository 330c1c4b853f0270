package geo

import (
	"testing"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/models"
)

func newTestResolver() *Resolver {
	return NewResolver(catalog.LoadDefaults()).(*Resolver)
}

func TestResolveExact(t *testing.T) {
	r := newTestResolver()

	loc, err := r.Resolve("Missiles struck Kyiv early Monday")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatal("got nil location")
	}
	if loc.Name != "kyiv" || loc.Country != "UA" {
		t.Errorf("got %+v, want kyiv/UA", loc)
	}
	if loc.Precision != models.PrecisionExact {
		t.Errorf("Precision = %s, want exact", loc.Precision)
	}
	if loc.Confidence != 0.90 {
		t.Errorf("Confidence = %v, want 0.90", loc.Confidence)
	}
}

func TestResolveWordBoundary(t *testing.T) {
	r := newTestResolver()

	// "tehran" must match as its own word, not via "iran" inside it
	loc, err := r.Resolve("Explosions reported across Tehran on Friday")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatal("got nil location")
	}
	if loc.Name != "tehran" {
		t.Errorf("Name = %s, want tehran", loc.Name)
	}
	if loc.Precision != models.PrecisionExact {
		t.Errorf("Precision = %s, want exact", loc.Precision)
	}
}

func TestResolveFuzzy(t *testing.T) {
	r := newTestResolver()

	// Transliteration drift: Odessa resolves to the odesa entry
	loc, err := r.Resolve("Strikes near Odessa damaged port facilities")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatal("got nil location")
	}
	if loc.Name != "odesa" || loc.Country != "UA" {
		t.Errorf("got %+v, want odesa/UA", loc)
	}
	if loc.Precision != models.PrecisionFuzzy {
		t.Errorf("Precision = %s, want fuzzy", loc.Precision)
	}
	if loc.Confidence != 0.60 {
		t.Errorf("Confidence = %v, want 0.60", loc.Confidence)
	}
}

func TestResolveCentroid(t *testing.T) {
	r := newTestResolver()

	loc, err := r.Resolve("Iranian officials promised a response")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatal("got nil location")
	}
	if loc.Country != "IR" {
		t.Errorf("Country = %s, want IR", loc.Country)
	}
	if loc.Precision != models.PrecisionCentroid {
		t.Errorf("Precision = %s, want centroid", loc.Precision)
	}
	if loc.Confidence != 0.40 {
		t.Errorf("Confidence = %v, want 0.40", loc.Confidence)
	}
}

func TestResolveStrategicFlag(t *testing.T) {
	r := newTestResolver()

	loc, err := r.Resolve("Inspectors visited the Natanz enrichment site")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatal("got nil location")
	}
	if !loc.Strategic {
		t.Error("Natanz not flagged strategic")
	}
}

func TestResolveNothing(t *testing.T) {
	r := newTestResolver()

	for _, text := range []string{"", "quarterly earnings beat expectations"} {
		loc, err := r.Resolve(text)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", text, err)
		}
		if loc != nil {
			t.Errorf("Resolve(%q) = %+v, want nil", text, loc)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"odesa", "odesa", 0},
		{"odessa", "odesa", 1},
		{"kyiv", "kiev", 2},
		{"", "abc", 3},
		{"abc", "", 3},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.expected {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
