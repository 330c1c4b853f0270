package models

import "time"

// ConflictEntity is reference data describing one bilateral conflict
// relationship. Rarely mutated; seeded from the catalog.
type ConflictEntity struct {
	ID            string  `json:"id" toml:"id" validate:"required"`
	ActorA        string  `json:"actor_a" toml:"actor_a" validate:"required"`
	ActorB        string  `json:"actor_b" toml:"actor_b" validate:"required"`
	Name          string  `json:"name" toml:"name"`
	Theatre       string  `json:"theatre" toml:"theatre" validate:"required"`
	BaseHostility float64 `json:"base_hostility" toml:"base_hostility" validate:"min=0,max=1"`
	BaseTension   float64 `json:"base_tension" toml:"base_tension" validate:"min=0,max=1"`
	Importance    float64 `json:"importance" toml:"importance" validate:"min=0,max=1"`
}

// Involves reports whether both actor codes are parties to this conflict,
// in either order.
func (c *ConflictEntity) Involves(a, b string) bool {
	return (c.ActorA == a && c.ActorB == b) || (c.ActorA == b && c.ActorB == a)
}

// Touches reports whether the actor code is a party to this conflict
func (c *ConflictEntity) Touches(actor string) bool {
	return c.ActorA == actor || c.ActorB == actor
}

// ConflictEvent is a time-bucketed, evidence-backed aggregate of matched
// event frames for one conflict. At most one exists per
// (conflict_id, window_start); never updated in place.
type ConflictEvent struct {
	ID                string    `json:"id"` // evt_<uuid>
	ConflictID        string    `json:"conflict_id"`
	WindowStart       time.Time `json:"window_start"`
	WindowEnd         time.Time `json:"window_end"`
	DominantEventType EventType `json:"dominant_event_type"`
	Severity          int       `json:"severity"`     // Rounded mean over the bucket
	ImpactScore       float64   `json:"impact_score"` // 0-1
	MaxSeverity       int       `json:"max_severity"`
	EventCount        int       `json:"event_count"`
	EvidenceURLs      []string  `json:"evidence_urls"` // 1-5 unique source URLs, never empty
	CreatedAt         time.Time `json:"created_at"`
}

// TopDriver is one of the highest-impact contributing events behind a
// conflict state, carrying its own evidence.
type TopDriver struct {
	EventID      string    `json:"event_id"`
	EventType    EventType `json:"event_type"`
	Severity     int       `json:"severity"`
	ImpactScore  float64   `json:"impact_score"`
	WindowStart  time.Time `json:"window_start"`
	EvidenceURLs []string  `json:"evidence_urls"`
}

// ConflictStateLive is the singleton computed state row per conflict.
// Fully recomputed each cycle except rank and major-change bookkeeping.
type ConflictStateLive struct {
	ConflictID        string      `json:"conflict_id"`
	Tension           float64     `json:"tension"`
	Heat              float64     `json:"heat"`
	Velocity          float64     `json:"velocity"`
	Momentum          float64     `json:"momentum"`
	Pressure          float64     `json:"pressure"`
	Instability       float64     `json:"instability"`
	TheatreRank       int         `json:"theatre_rank"` // 1-indexed within theatre, 0 = unranked
	LastEventAt       *time.Time  `json:"last_event_at,omitempty"`
	LastMajorChangeAt *time.Time  `json:"last_major_change_at,omitempty"`
	TopDrivers        []TopDriver `json:"top_drivers"` // At most 3
	UpdatedAt         time.Time   `json:"updated_at"`
}
