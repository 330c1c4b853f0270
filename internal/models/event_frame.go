package models

import "time"

// EventType is the closed taxonomy of incident kinds the classifier emits.
type EventType string

const (
	EventAirstrike           EventType = "airstrike"
	EventMissileStrike       EventType = "missile_strike"
	EventDroneStrike         EventType = "drone_strike"
	EventArtilleryShelling   EventType = "artillery_shelling"
	EventGroundAssault       EventType = "ground_assault"
	EventNavalIncident       EventType = "naval_incident"
	EventAirIncursion        EventType = "air_incursion"
	EventTroopMovement       EventType = "troop_movement"
	EventMobilization        EventType = "mobilization"
	EventMilitaryExercise    EventType = "military_exercise"
	EventBorderClash         EventType = "border_clash"
	EventSanctions           EventType = "sanctions"
	EventDiplomaticTalks     EventType = "diplomatic_talks"
	EventDiplomaticExpulsion EventType = "diplomatic_expulsion"
	EventCeasefire           EventType = "ceasefire"
	EventNuclearActivity     EventType = "nuclear_activity"
	EventCyberAttack         EventType = "cyber_attack"
	EventCivilUnrest         EventType = "civil_unrest"
	EventUnknown             EventType = "unknown"
)

// AllEventTypes lists the taxonomy in definition order (excluding unknown).
// Order matters: classification ties break toward the earlier entry.
var AllEventTypes = []EventType{
	EventAirstrike,
	EventMissileStrike,
	EventDroneStrike,
	EventArtilleryShelling,
	EventGroundAssault,
	EventNavalIncident,
	EventAirIncursion,
	EventTroopMovement,
	EventMobilization,
	EventMilitaryExercise,
	EventBorderClash,
	EventSanctions,
	EventDiplomaticTalks,
	EventDiplomaticExpulsion,
	EventCeasefire,
	EventNuclearActivity,
	EventCyberAttack,
	EventCivilUnrest,
}

// Actors identifies the parties involved in an event. Either side may be
// empty when extraction finds nothing; that is not an error.
type Actors struct {
	Attacker string `json:"attacker,omitempty"` // ISO-style actor code, e.g. "RU"
	Target   string `json:"target,omitempty"`
}

// Casualties is a best-effort extraction from the source text
type Casualties struct {
	Killed   int  `json:"killed"`
	Wounded  int  `json:"wounded"`
	Civilian bool `json:"civilian"` // Civilian casualties mentioned
}

// EventFrame is the normalized structured description of a single reported
// incident. Immutable once created; owned by the classifier stage.
type EventFrame struct {
	ID         string    `json:"id"` // frm_<uuid>
	ItemID     string    `json:"item_id"`
	EventType  EventType `json:"event_type"`
	Severity   int       `json:"severity"`   // 1-10
	Confidence float64   `json:"confidence"` // 0-1
	OccurredAt time.Time `json:"occurred_at"`

	Location   ResolvedLocation `json:"location"`
	Actors     Actors           `json:"actors"`
	Casualties *Casualties      `json:"casualties,omitempty"`

	Evidence          string `json:"evidence"` // Source text the classification is based on
	EvidenceURL       string `json:"evidence_url"`
	SourceReliability int    `json:"source_reliability"` // 1-5

	// Aggregation bookkeeping
	ConflictID  string     `json:"conflict_id,omitempty"` // Set by the aggregator when matched
	Processed   bool       `json:"processed"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
