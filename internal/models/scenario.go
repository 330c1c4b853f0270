package models

import "time"

// Trend describes the direction of a scenario probability between cycles
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// ScenarioTemplate declares a named escalation hypothesis scored against
// the active signal set. Patterns are signal codes with an optional
// wildcard: "SIG_STRIKE*" matches by prefix, "SIG_*_IRAN" matches prefix
// and suffix around the star.
type ScenarioTemplate struct {
	ID                  string   `json:"id" toml:"id" validate:"required"`
	Name                string   `json:"name" toml:"name"`
	Description         string   `json:"description" toml:"description"`
	BaselineProbability float64  `json:"baseline_probability" toml:"baseline_probability" validate:"min=0,max=1"`
	RequiredPatterns    []string `json:"required_patterns" toml:"required_patterns" validate:"min=1"`
	BoostPatterns       []string `json:"boost_patterns,omitempty" toml:"boost_patterns"`
	InhibitPatterns     []string `json:"inhibit_patterns,omitempty" toml:"inhibit_patterns"`
}

// ScenarioScore is the computed probability for one scenario. Only the
// immediately preceding score is retained, for trend derivation.
type ScenarioScore struct {
	ScenarioID    string    `json:"scenario_id"`
	Probability   float64   `json:"probability"` // 0-1
	RawScore      float64   `json:"raw_score"`
	Confidence    float64   `json:"confidence"` // 0-1
	Trend         Trend     `json:"trend"`
	ActiveSignals []string  `json:"active_signals"` // Signal codes that contributed
	ComputedAt    time.Time `json:"computed_at"`
}
