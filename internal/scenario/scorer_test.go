package scenario

import (
	"math"
	"testing"
	"time"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func templateByID(t *testing.T, cat *catalog.Catalog, id string) *models.ScenarioTemplate {
	t.Helper()
	for i := range cat.Scenarios {
		if cat.Scenarios[i].ID == id {
			return &cat.Scenarios[i]
		}
	}
	t.Fatalf("scenario %s not in catalog", id)
	return nil
}

func activation(code string, confidence float64, age time.Duration) *models.SignalActivation {
	return &models.SignalActivation{
		ID:          "act_" + code,
		SignalCode:  code,
		FrameID:     "frm_1",
		Confidence:  confidence,
		ActivatedAt: testNow.Add(-age),
		ExpiresAt:   testNow.Add(24 * time.Hour),
		Active:      true,
	}
}

func TestScoreWithRequiredSignal(t *testing.T) {
	cat := catalog.LoadDefaults()
	scorer := NewScorer(cat)
	template := templateByID(t, cat, "scn-us-iran-direct")

	signals := scorer.CollectActive([]*models.SignalActivation{
		activation("SIG_STRIKE_US_IRAN", 0.8, 30*time.Minute),
	})
	if len(signals) != 1 {
		t.Fatalf("CollectActive returned %d signals, want 1", len(signals))
	}

	score := scorer.Score(template, signals, nil, testNow)

	// SIG_STRIKE_US_IRAN satisfies the required SIG_STRIKE* pattern and the
	// SIG_*_IRAN boost: weight 5, confidence 0.8, full recency
	wantRaw := template.BaselineProbability + 5*0.8*1.0*0.02
	if math.Abs(score.RawScore-wantRaw) > 1e-9 {
		t.Errorf("RawScore = %v, want %v", score.RawScore, wantRaw)
	}
	if math.Abs(score.Probability-wantRaw) > 1e-9 {
		t.Errorf("Probability = %v, want %v", score.Probability, wantRaw)
	}
	wantConfidence := 0.8 + 0.05
	if math.Abs(score.Confidence-wantConfidence) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", score.Confidence, wantConfidence)
	}
	if len(score.ActiveSignals) != 1 || score.ActiveSignals[0] != "SIG_STRIKE_US_IRAN" {
		t.Errorf("ActiveSignals = %v, want [SIG_STRIKE_US_IRAN]", score.ActiveSignals)
	}
	if score.Trend != models.TrendStable {
		t.Errorf("Trend = %s, want stable on first score", score.Trend)
	}
}

func TestScoreUnmetRequired(t *testing.T) {
	cat := catalog.LoadDefaults()
	scorer := NewScorer(cat)
	template := templateByID(t, cat, "scn-taiwan-blockade")

	// An unrelated active signal must not move the probability off zero
	signals := scorer.CollectActive([]*models.SignalActivation{
		activation("SIG_STRIKE_US_IRAN", 0.9, time.Hour),
	})
	prev := &models.ScenarioScore{ScenarioID: template.ID, Probability: 0.4}

	score := scorer.Score(template, signals, prev, testNow)
	if score.Probability != 0 || score.RawScore != 0 {
		t.Errorf("got probability %v raw %v, want 0", score.Probability, score.RawScore)
	}
	if score.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3 fallback", score.Confidence)
	}
	if score.Trend != models.TrendFalling {
		t.Errorf("Trend = %s, want falling from 0.4", score.Trend)
	}
	if len(score.ActiveSignals) != 0 {
		t.Errorf("ActiveSignals = %v, want empty", score.ActiveSignals)
	}
}

func TestScoreInhibit(t *testing.T) {
	cat := catalog.LoadDefaults()
	scorer := NewScorer(cat)
	template := &models.ScenarioTemplate{
		ID:                  "scn-test",
		BaselineProbability: 0.5,
		RequiredPatterns:    []string{"SIG_*"},
		InhibitPatterns:     []string{"SIG_CEASEFIRE_AGREED"},
	}
	signals := []ActiveSignal{
		{
			Activation: activation("SIG_CEASEFIRE_AGREED", 1.0, 30*time.Minute),
			Definition: &models.SignalDefinition{Code: "SIG_CEASEFIRE_AGREED", Weight: 2},
		},
	}

	score := scorer.Score(template, signals, nil, testNow)
	wantRaw := 0.5 - 2*1.0*1.0*0.03
	if math.Abs(score.RawScore-wantRaw) > 1e-9 {
		t.Errorf("RawScore = %v, want %v", score.RawScore, wantRaw)
	}
}

func TestSignalScoreStepDecay(t *testing.T) {
	def := &models.SignalDefinition{Code: "SIG_TEST", Weight: 4}
	tests := []struct {
		name     string
		age      time.Duration
		expected float64
	}{
		{"under an hour", 30 * time.Minute, 4 * 0.5 * 1.0},
		{"under six hours", 3 * time.Hour, 4 * 0.5 * 0.8},
		{"under a day", 12 * time.Hour, 4 * 0.5 * 0.5},
		{"older", 48 * time.Hour, 4 * 0.5 * 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := ActiveSignal{Activation: activation("SIG_TEST", 0.5, tt.age), Definition: def}
			got := signalScore(sig, testNow)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDeriveTrend(t *testing.T) {
	tests := []struct {
		name        string
		prev        *models.ScenarioScore
		probability float64
		expected    models.Trend
	}{
		{"no previous", nil, 0.5, models.TrendStable},
		{"rising", &models.ScenarioScore{Probability: 0.10}, 0.20, models.TrendRising},
		{"falling", &models.ScenarioScore{Probability: 0.30}, 0.20, models.TrendFalling},
		{"within band", &models.ScenarioScore{Probability: 0.20}, 0.23, models.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveTrend(tt.prev, tt.probability); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		code     string
		expected bool
	}{
		{"SIG_AIRSTRIKE", "SIG_AIRSTRIKE", true},
		{"SIG_AIRSTRIKE", "SIG_ARTILLERY", false},
		{"SIG_STRIKE*", "SIG_STRIKE_US_IRAN", true},
		{"SIG_STRIKE*", "SIG_AIRSTRIKE", false},
		{"SIG_*_IRAN", "SIG_STRIKE_US_IRAN", true},
		{"SIG_*_IRAN", "SIG_ESCALATION_KOREA", false},
		{"SIG_*_IRAN", "SIG_IRAN", false}, // too short to hold both halves
		{"*", "SIG_ANYTHING", true},
	}
	for _, tt := range tests {
		if got := matchPattern(tt.pattern, tt.code); got != tt.expected {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.code, got, tt.expected)
		}
	}
}

func TestCollectActiveDropsUnknownCodes(t *testing.T) {
	cat := catalog.LoadDefaults()
	scorer := NewScorer(cat)
	signals := scorer.CollectActive([]*models.SignalActivation{
		activation("SIG_AIRSTRIKE", 0.7, time.Hour),
		activation("SIG_NOT_DEFINED", 0.7, time.Hour),
	})
	if len(signals) != 1 || signals[0].Activation.SignalCode != "SIG_AIRSTRIKE" {
		t.Errorf("got %d signals, want only SIG_AIRSTRIKE", len(signals))
	}
}
