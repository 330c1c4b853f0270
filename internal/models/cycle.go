package models

import "time"

// CycleKind names the two recomputation entry points
type CycleKind string

const (
	CycleAggregation CycleKind = "aggregation"
	CycleState       CycleKind = "state"
)

// EntityKind names the unit a per-entity result refers to
type EntityKind string

const (
	EntityConflict EntityKind = "conflict"
	EntityTheatre  EntityKind = "theatre"
	EntityAlliance EntityKind = "alliance"
	EntityScenario EntityKind = "scenario"
)

// EntityResult is the typed outcome for one entity within a cycle.
// Failures carry a reason; they never abort the batch.
type EntityResult struct {
	Kind   EntityKind `json:"kind"`
	ID     string     `json:"id"`
	OK     bool       `json:"ok"`
	Reason string     `json:"reason,omitempty"`
}

// AggregationStats counts what the aggregation cycle did
type AggregationStats struct {
	ItemsExamined    int `json:"items_examined"`
	ItemsSkipped     int `json:"items_skipped"` // No classification or no location
	FramesCreated    int `json:"frames_created"`
	SignalsActivated int `json:"signals_activated"`
	SignalsExpired   int `json:"signals_expired"`
	EventsCreated    int `json:"events_created"`
	FramesDropped    int `json:"frames_dropped"` // No conflict match or no evidence
}

// CycleResult is the structured summary returned by a cycle run
type CycleResult struct {
	Kind       CycleKind         `json:"kind"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Succeeded  int               `json:"succeeded"`
	Failed     int               `json:"failed"`
	Entities   []EntityResult    `json:"entities,omitempty"`
	Stats      *AggregationStats `json:"stats,omitempty"`
}

// Record appends an entity result and updates the counters
func (r *CycleResult) Record(kind EntityKind, id string, err error) {
	res := EntityResult{Kind: kind, ID: id, OK: err == nil}
	if err != nil {
		res.Reason = err.Error()
		r.Failed++
	} else {
		r.Succeeded++
	}
	r.Entities = append(r.Entities, res)
}

// Duration returns the cycle wall time
func (r *CycleResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
