package catalog

import "github.com/ternarybob/argus/internal/models"

// builtinScenarios is the default set of scored escalation hypotheses.
// Patterns match signal codes with a single wildcard: "SIG_STRIKE*" by
// prefix, "SIG_*_IRAN" by prefix and suffix.
func builtinScenarios() []models.ScenarioTemplate {
	return []models.ScenarioTemplate{
		{
			ID:                  "scn-us-iran-direct",
			Name:                "Direct US-Iran conflict",
			Description:         "Open exchange of strikes between US and Iranian forces",
			BaselineProbability: 0.05,
			RequiredPatterns:    []string{"SIG_STRIKE*"},
			BoostPatterns:       []string{"SIG_*_IRAN", "SIG_ENRICHMENT_ACTIVITY", "SIG_FORCE_POSTURE_CHANGE", "SIG_BLOCKADE"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED", "SIG_CEASEFIRE_AGREED"},
		},
		{
			ID:                  "scn-mideast-regional-war",
			Name:                "Middle East regional war",
			Description:         "Multi-front escalation drawing in Iran-aligned groups",
			BaselineProbability: 0.08,
			RequiredPatterns:    []string{"SIG_AIRSTRIKE", "SIG_MISSILE_LAUNCH", "SIG_GROUND_OFFENSIVE"},
			BoostPatterns:       []string{"SIG_STRIKE*", "SIG_CIVILIAN_CASUALTIES", "SIG_INFRASTRUCTURE_STRIKE", "SIG_MOBILIZATION_ORDER"},
			InhibitPatterns:     []string{"SIG_CEASEFIRE_AGREED", "SIG_TALKS_RESUMED"},
		},
		{
			ID:                  "scn-nato-russia-clash",
			Name:                "NATO-Russia direct clash",
			Description:         "Direct military contact between NATO and Russian forces",
			BaselineProbability: 0.03,
			RequiredPatterns:    []string{"SIG_AIRSPACE_VIOLATION", "SIG_BORDER_CLASH", "SIG_NAVAL_CONFRONTATION"},
			BoostPatterns:       []string{"SIG_TROOP_BUILDUP", "SIG_NUCLEAR_RHETORIC", "SIG_FORCE_POSTURE_CHANGE", "SIG_MOBILIZATION_ORDER"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED"},
		},
		{
			ID:                  "scn-taiwan-blockade",
			Name:                "Taiwan Strait blockade",
			Description:         "Quarantine or blockade of Taiwan",
			BaselineProbability: 0.04,
			RequiredPatterns:    []string{"SIG_ESCALATION_TAIWAN", "SIG_BLOCKADE"},
			BoostPatterns:       []string{"SIG_MILITARY_EXERCISE", "SIG_NAVAL_CONFRONTATION", "SIG_AIRSPACE_VIOLATION", "SIG_FORCE_POSTURE_CHANGE"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED"},
		},
		{
			ID:                  "scn-korea-escalation",
			Name:                "Korean peninsula escalation",
			Description:         "Kinetic exchange across the DMZ or at sea",
			BaselineProbability: 0.04,
			RequiredPatterns:    []string{"SIG_ESCALATION_KOREA"},
			BoostPatterns:       []string{"SIG_MISSILE_LAUNCH", "SIG_NUCLEAR_TEST", "SIG_ARTILLERY", "SIG_MILITARY_EXERCISE"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED"},
		},
		{
			ID:                  "scn-nuclear-breakout",
			Name:                "Nuclear breakout",
			Description:         "A threshold state moves to weaponize",
			BaselineProbability: 0.03,
			RequiredPatterns:    []string{"SIG_ENRICHMENT_ACTIVITY", "SIG_NUCLEAR_TEST"},
			BoostPatterns:       []string{"SIG_NUCLEAR_RHETORIC", "SIG_TALKS_COLLAPSE", "SIG_STRIKE*"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED", "SIG_SANCTIONS_IMPOSED"},
		},
		{
			ID:                  "scn-indo-pak-flare",
			Name:                "India-Pakistan flare-up",
			Description:         "Cross-border exchange escalating beyond skirmish",
			BaselineProbability: 0.03,
			RequiredPatterns:    []string{"SIG_BORDER_CLASH", "SIG_ARTILLERY", "SIG_AIRSTRIKE"},
			BoostPatterns:       []string{"SIG_MOBILIZATION_ORDER", "SIG_NUCLEAR_RHETORIC", "SIG_TALKS_COLLAPSE"},
			InhibitPatterns:     []string{"SIG_TALKS_RESUMED", "SIG_CEASEFIRE_AGREED"},
		},
		{
			ID:                  "scn-energy-shock",
			Name:                "Energy supply shock",
			Description:         "Conflict-driven disruption of a major energy corridor",
			BaselineProbability: 0.06,
			RequiredPatterns:    []string{"SIG_ENERGY_CUTOFF", "SIG_BLOCKADE", "SIG_INFRASTRUCTURE_STRIKE"},
			BoostPatterns:       []string{"SIG_NAVAL_CONFRONTATION", "SIG_STRIKE*", "SIG_GRID_ATTACK"},
			InhibitPatterns:     []string{"SIG_CEASEFIRE_AGREED"},
		},
	}
}
