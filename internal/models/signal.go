package models

import "time"

// SignalCategory groups signal definitions by the kind of activity they flag
type SignalCategory string

const (
	CategoryKinetic      SignalCategory = "kinetic"
	CategoryMobilization SignalCategory = "mobilization"
	CategoryNuclear      SignalCategory = "nuclear"
	CategoryDiplomatic   SignalCategory = "diplomatic"
	CategoryEconomic     SignalCategory = "economic"
	CategoryCyber        SignalCategory = "cyber"
	CategoryInternal     SignalCategory = "internal"
)

// MetricImpacts is the per-signal delta vector applied to country metrics
type MetricImpacts struct {
	Readiness float64 `json:"readiness"`
	Tension   float64 `json:"tension"`
	Hostility float64 `json:"hostility"`
	Stability float64 `json:"stability"`
}

// SignalDefinition is a static rule in the signal catalog. Read-only after
// load. A definition matches an event frame when every specified condition
// holds: event-type membership (if EventTypes is non-empty), at least one
// keyword hit (if Keywords is non-empty), and severity >= MinSeverity.
type SignalDefinition struct {
	Code                 string         `json:"code" validate:"required"`
	Description          string         `json:"description"`
	Category             SignalCategory `json:"category" validate:"required"`
	Keywords             []string       `json:"keywords,omitempty"`
	EventTypes           []EventType    `json:"event_types,omitempty"`
	MinSeverity          int            `json:"min_severity" validate:"min=0,max=10"`
	Weight               int            `json:"weight" validate:"min=1,max=5"`
	ConfidenceBoost      float64        `json:"confidence_boost" validate:"min=0,max=1"`
	HalfLifeHours        float64        `json:"half_life_hours" validate:"gt=0"`
	Impacts              MetricImpacts  `json:"impacts"`
	RequiresVerification bool           `json:"requires_verification"`
}

// MatchesType reports whether the definition's event-type restriction
// admits the given type. An empty restriction admits every type.
func (d *SignalDefinition) MatchesType(t EventType) bool {
	if len(d.EventTypes) == 0 {
		return true
	}
	for _, et := range d.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// SignalActivation records one detected signal for one source event frame.
// At most one activation exists per (signal_code, frame_id) pair.
type SignalActivation struct {
	ID          string    `json:"id"` // act_<uuid>
	SignalCode  string    `json:"signal_code"`
	FrameID     string    `json:"frame_id"`
	Confidence  float64   `json:"confidence"` // 0-1
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"` // activated_at + 3x half-life
	Active      bool      `json:"active"`
	Verified    bool      `json:"verified"`
}

// Expired reports whether the activation is past its expiry at the given time
func (a *SignalActivation) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}
