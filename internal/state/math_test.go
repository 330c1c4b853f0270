package state

import (
	"math"
	"testing"
	"time"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"in range", 0.42, 0.42},
		{"one", 1.0, 1.0},
		{"above one", 1.7, 1.0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp01(tt.input); got != tt.expected {
				t.Errorf("clamp01(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecayFactor(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := decayFactor(now, now, 48*time.Hour); got != 1.0 {
		t.Errorf("zero elapsed: got %v, want 1.0", got)
	}
	if got := decayFactor(now, now.Add(time.Hour), 48*time.Hour); got != 1.0 {
		t.Errorf("future timestamp: got %v, want 1.0", got)
	}
	got := decayFactor(now, now.Add(-48*time.Hour), 48*time.Hour)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("one half-life: got %v, want 0.5", got)
	}
	got = decayFactor(now, now.Add(-96*time.Hour), 48*time.Hour)
	if math.Abs(got-0.25) > 1e-9 {
		t.Errorf("two half-lives: got %v, want 0.25", got)
	}
}

func TestNormalizedEntropy(t *testing.T) {
	if got := normalizedEntropy(map[string]int{}); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
	if got := normalizedEntropy(map[string]int{"airstrike": 5}); got != 0 {
		t.Errorf("single category: got %v, want 0", got)
	}
	got := normalizedEntropy(map[string]int{"airstrike": 3, "artillery_shelling": 3})
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("two equal categories: got %v, want 1.0", got)
	}
	// Skewed distribution sits strictly between
	got = normalizedEntropy(map[string]int{"airstrike": 9, "artillery_shelling": 1})
	if got <= 0 || got >= 1 {
		t.Errorf("skewed distribution: got %v, want in (0,1)", got)
	}
}

func TestVariance(t *testing.T) {
	if got := variance(nil); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
	if got := variance([]float64{0.5}); got != 0 {
		t.Errorf("single value: got %v, want 0", got)
	}
	got := variance([]float64{0.2, 0.4})
	if math.Abs(got-0.01) > 1e-9 {
		t.Errorf("pair: got %v, want 0.01", got)
	}
}
