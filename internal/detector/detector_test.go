package detector

import (
	"context"
	"testing"
	"time"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeSignalStore is an in-memory SignalStorage for detector tests
type fakeSignalStore struct {
	activations []*models.SignalActivation
}

func (f *fakeSignalStore) SaveActivation(ctx context.Context, activation *models.SignalActivation) error {
	f.activations = append(f.activations, activation)
	return nil
}

func (f *fakeSignalStore) GetActivation(ctx context.Context, signalCode, frameID string) (*models.SignalActivation, error) {
	for _, a := range f.activations {
		if a.SignalCode == signalCode && a.FrameID == frameID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeSignalStore) GetActiveActivations(ctx context.Context, now time.Time) ([]*models.SignalActivation, error) {
	var active []*models.SignalActivation
	for _, a := range f.activations {
		if a.Active && !a.Expired(now) {
			active = append(active, a)
		}
	}
	return active, nil
}

func (f *fakeSignalStore) DeactivateExpired(ctx context.Context, now time.Time) (int, error) {
	count := 0
	for _, a := range f.activations {
		if a.Active && a.Expired(now) {
			a.Active = false
			count++
		}
	}
	return count, nil
}

func (f *fakeSignalStore) find(code string) *models.SignalActivation {
	for _, a := range f.activations {
		if a.SignalCode == code {
			return a
		}
	}
	return nil
}

func airstrikeFrame() *models.EventFrame {
	return &models.EventFrame{
		ID:         "frm_test",
		ItemID:     "itm_test",
		EventType:  models.EventAirstrike,
		Severity:   6,
		Confidence: 0.5,
		OccurredAt: testNow,
		Evidence:   "fighter jets struck an airbase near the border",
	}
}

func TestDetectActivatesMatchingSignal(t *testing.T) {
	store := &fakeSignalStore{}
	d := New(catalog.LoadDefaults(), store, nil)

	count, err := d.Detect(context.Background(), airstrikeFrame())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if count == 0 {
		t.Fatal("no activations recorded")
	}

	act := store.find("SIG_AIRSTRIKE")
	if act == nil {
		t.Fatal("SIG_AIRSTRIKE not activated")
	}
	if act.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want frame 0.5 + boost 0.1", act.Confidence)
	}
	if !act.ActivatedAt.Equal(testNow) {
		t.Errorf("ActivatedAt = %v, want %v", act.ActivatedAt, testNow)
	}
	// SIG_AIRSTRIKE half-life is 24h; expiry sits three half-lives out
	wantExpiry := testNow.Add(72 * time.Hour)
	if !act.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", act.ExpiresAt, wantExpiry)
	}
	if !act.Active || !act.Verified {
		t.Errorf("got active=%v verified=%v, want both true", act.Active, act.Verified)
	}
	if act.FrameID != "frm_test" {
		t.Errorf("FrameID = %s, want frm_test", act.FrameID)
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	store := &fakeSignalStore{}
	d := New(catalog.LoadDefaults(), store, nil)
	frame := airstrikeFrame()

	first, err := d.Detect(context.Background(), frame)
	if err != nil {
		t.Fatalf("first Detect failed: %v", err)
	}
	second, err := d.Detect(context.Background(), frame)
	if err != nil {
		t.Fatalf("second Detect failed: %v", err)
	}
	if second != 0 {
		t.Errorf("second pass recorded %d activations, want 0 (first recorded %d)", second, first)
	}
	if len(store.activations) != first {
		t.Errorf("store holds %d activations, want %d", len(store.activations), first)
	}
}

func TestDetectRespectsMinSeverity(t *testing.T) {
	store := &fakeSignalStore{}
	d := New(catalog.LoadDefaults(), store, nil)

	frame := airstrikeFrame()
	frame.Severity = 3 // below SIG_AIRSTRIKE's floor of 4
	if _, err := d.Detect(context.Background(), frame); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if store.find("SIG_AIRSTRIKE") != nil {
		t.Error("SIG_AIRSTRIKE activated below its severity floor")
	}
}

func TestDetectUnverifiedSignal(t *testing.T) {
	cat := &catalog.Catalog{
		Signals: []models.SignalDefinition{
			{
				Code:                 "SIG_TEST_RUMOR",
				Category:             models.CategoryKinetic,
				MinSeverity:          1,
				Weight:               1,
				HalfLifeHours:        12,
				RequiresVerification: true,
			},
		},
	}
	store := &fakeSignalStore{}
	d := New(cat, store, nil)

	if _, err := d.Detect(context.Background(), airstrikeFrame()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	act := store.find("SIG_TEST_RUMOR")
	if act == nil {
		t.Fatal("signal not activated")
	}
	if act.Verified {
		t.Error("activation marked verified despite RequiresVerification")
	}
}

func TestExpireStale(t *testing.T) {
	store := &fakeSignalStore{
		activations: []*models.SignalActivation{
			{ID: "act_old", SignalCode: "SIG_AIRSTRIKE", FrameID: "frm_a", Active: true, ExpiresAt: testNow.Add(-time.Hour)},
			{ID: "act_live", SignalCode: "SIG_ARTILLERY", FrameID: "frm_b", Active: true, ExpiresAt: testNow.Add(time.Hour)},
		},
	}
	d := New(catalog.LoadDefaults(), store, nil)

	count, err := d.ExpireStale(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ExpireStale failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expired %d activations, want 1", count)
	}
	if store.activations[0].Active {
		t.Error("stale activation still active")
	}
	if !store.activations[1].Active {
		t.Error("live activation was deactivated")
	}
}
