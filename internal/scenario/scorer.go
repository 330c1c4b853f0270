package scenario

import (
	"math"
	"strings"
	"time"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/models"
)

const (
	boostIncrement   = 0.02
	inhibitIncrement = 0.03

	// Trend thresholds against the previous cycle's probability
	trendDelta = 0.05

	// Fallback confidence when no relevant signals are active
	noSignalConfidence = 0.3
)

// ActiveSignal pairs a live activation with its definition so the scorer
// can weight it.
type ActiveSignal struct {
	Activation *models.SignalActivation
	Definition *models.SignalDefinition
}

// Scorer evaluates scenario templates against the active signal set
type Scorer struct {
	catalog *catalog.Catalog
}

func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// CollectActive joins activations with their catalog definitions,
// dropping any activation whose signal code is no longer defined.
func (s *Scorer) CollectActive(activations []*models.SignalActivation) []ActiveSignal {
	signals := make([]ActiveSignal, 0, len(activations))
	for _, act := range activations {
		def := s.catalog.SignalByCode(act.SignalCode)
		if def == nil {
			continue
		}
		signals = append(signals, ActiveSignal{Activation: act, Definition: def})
	}
	return signals
}

// Score computes the probability for one scenario. `prev` is the
// immediately preceding score for the same scenario, or nil; it only
// feeds trend derivation.
func (s *Scorer) Score(template *models.ScenarioTemplate, signals []ActiveSignal, prev *models.ScenarioScore, now time.Time) *models.ScenarioScore {
	result := &models.ScenarioScore{
		ScenarioID:    template.ID,
		ActiveSignals: []string{},
		ComputedAt:    now,
	}

	if !anyMatch(template.RequiredPatterns, signals) {
		result.Probability = 0
		result.RawScore = 0
		result.Confidence = noSignalConfidence
		result.Trend = deriveTrend(prev, 0)
		return result
	}

	relevant := make(map[string]bool)
	raw := template.BaselineProbability
	for _, sig := range signals {
		code := sig.Activation.SignalCode
		matched := false
		if matchesAny(template.RequiredPatterns, code) {
			matched = true
		}
		if matchesAny(template.BoostPatterns, code) {
			raw += signalScore(sig, now) * boostIncrement
			matched = true
		}
		if matchesAny(template.InhibitPatterns, code) {
			raw -= signalScore(sig, now) * inhibitIncrement
			matched = true
		}
		if matched && !relevant[code] {
			relevant[code] = true
			result.ActiveSignals = append(result.ActiveSignals, code)
		}
	}

	result.RawScore = raw
	result.Probability = clamp01(raw)
	result.Confidence = scoreConfidence(signals, relevant)
	result.Trend = deriveTrend(prev, result.Probability)
	return result
}

// signalScore weights a signal by definition weight, activation
// confidence, and recency. The recency decay is a step function over the
// activation's age.
func signalScore(sig ActiveSignal, now time.Time) float64 {
	age := now.Sub(sig.Activation.ActivatedAt)
	decay := 0.2
	switch {
	case age < time.Hour:
		decay = 1.0
	case age < 6*time.Hour:
		decay = 0.8
	case age < 24*time.Hour:
		decay = 0.5
	}
	return float64(sig.Definition.Weight) * sig.Activation.Confidence * decay
}

// scoreConfidence averages the relevant signals' confidence and adds a
// small count bonus capped at 0.3.
func scoreConfidence(signals []ActiveSignal, relevant map[string]bool) float64 {
	sum := 0.0
	count := 0
	for _, sig := range signals {
		if !relevant[sig.Activation.SignalCode] {
			continue
		}
		sum += sig.Activation.Confidence
		count++
	}
	if count == 0 {
		return noSignalConfidence
	}
	bonus := 0.05 * float64(count)
	if bonus > 0.3 {
		bonus = 0.3
	}
	return clamp01(sum/float64(count) + bonus)
}

func deriveTrend(prev *models.ScenarioScore, probability float64) models.Trend {
	if prev == nil {
		return models.TrendStable
	}
	delta := probability - prev.Probability
	if delta > trendDelta {
		return models.TrendRising
	}
	if delta < -trendDelta {
		return models.TrendFalling
	}
	return models.TrendStable
}

func anyMatch(patterns []string, signals []ActiveSignal) bool {
	for _, sig := range signals {
		if matchesAny(patterns, sig.Activation.SignalCode) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, code string) bool {
	for _, pattern := range patterns {
		if matchPattern(pattern, code) {
			return true
		}
	}
	return false
}

// matchPattern tests a signal code against a pattern with at most one
// wildcard: the star matches any run of characters, so "SIG_STRIKE*" is a
// prefix match and "SIG_*_IRAN" a prefix-plus-suffix match. A pattern
// without a star must match exactly.
func matchPattern(pattern, code string) bool {
	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		return pattern == code
	}
	prefix := pattern[:star]
	suffix := pattern[star+1:]
	if len(code) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(code, prefix) && strings.HasSuffix(code, suffix)
}

func clamp01(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
