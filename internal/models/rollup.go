package models

import "time"

// TheatreStateLive is the importance-weighted rollup over all conflicts
// sharing a theatre tag. Recomputed wholesale each cycle; disposable.
type TheatreStateLive struct {
	Theatre         string    `json:"theatre"`
	Tension         float64   `json:"tension"`
	Heat            float64   `json:"heat"`
	Velocity        float64   `json:"velocity"`
	Momentum        float64   `json:"momentum"`
	ActiveConflicts int       `json:"active_conflicts"`
	DominantActors  []string  `json:"dominant_actors"` // Top 5 by appearance count
	UpdatedAt       time.Time `json:"updated_at"`
}

// Alliance is reference data for a named alliance or bloc
type Alliance struct {
	Code     string   `json:"code" toml:"code" validate:"required"`
	Name     string   `json:"name" toml:"name"`
	Members  []string `json:"members" toml:"members" validate:"min=1"`
	Strength float64  `json:"strength" toml:"strength" validate:"min=0,max=1"`
}

// HasMember reports whether the actor code belongs to the alliance
func (a *Alliance) HasMember(actor string) bool {
	for _, m := range a.Members {
		if m == actor {
			return true
		}
	}
	return false
}

// AlliancePressureLive is the computed pressure rollup for one alliance.
// Recomputed wholesale each cycle; disposable.
type AlliancePressureLive struct {
	AllianceCode    string    `json:"alliance_code"`
	Pressure        float64   `json:"pressure"`
	TopConflicts    []string  `json:"top_conflicts"`    // Up to 5 conflict IDs by pressure
	AffectedMembers []string  `json:"affected_members"` // Members party to a conflict with pressure >= 0.5
	UpdatedAt       time.Time `json:"updated_at"`
}
