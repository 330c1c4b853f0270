package catalog

import "github.com/ternarybob/argus/internal/models"

// builtinSignals is the static signal rule set. Order is stable but not
// semantically significant; signals are independent of one another.
//
// Weight 1-5 scales scenario scoring; half-life drives activation expiry
// (expiry = 3x half-life). Impacts are the per-signal metric delta vector.
func builtinSignals() []models.SignalDefinition {
	return []models.SignalDefinition{
		// Kinetic
		{
			Code:        "SIG_AIRSTRIKE",
			Description: "Airstrike conducted",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventAirstrike},
			MinSeverity: 4,
			Weight:      4, ConfidenceBoost: 0.10, HalfLifeHours: 24,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.15, Hostility: 0.20, Stability: -0.05},
		},
		{
			Code:        "SIG_MISSILE_LAUNCH",
			Description: "Missile launch or strike",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventMissileStrike},
			MinSeverity: 4,
			Weight:      4, ConfidenceBoost: 0.10, HalfLifeHours: 24,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.15, Hostility: 0.20, Stability: -0.05},
		},
		{
			Code:        "SIG_DRONE_STRIKE",
			Description: "Armed drone strike",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventDroneStrike},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.10, HalfLifeHours: 24,
			Impacts: models.MetricImpacts{Readiness: 0.05, Tension: 0.10, Hostility: 0.15, Stability: -0.03},
		},
		{
			Code:        "SIG_ARTILLERY",
			Description: "Artillery or rocket shelling",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventArtilleryShelling},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.05, HalfLifeHours: 18,
			Impacts: models.MetricImpacts{Tension: 0.10, Hostility: 0.15, Stability: -0.05},
		},
		{
			Code:        "SIG_GROUND_OFFENSIVE",
			Description: "Ground assault or offensive underway",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventGroundAssault},
			MinSeverity: 5,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Readiness: 0.20, Tension: 0.25, Hostility: 0.30, Stability: -0.15},
		},
		{
			Code:        "SIG_NAVAL_CONFRONTATION",
			Description: "Naval incident or confrontation",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventNavalIncident},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.05, HalfLifeHours: 36,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.15, Hostility: 0.10},
		},
		{
			Code:        "SIG_AIRSPACE_VIOLATION",
			Description: "Airspace incursion by military aircraft",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventAirIncursion},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.05, HalfLifeHours: 12,
			Impacts: models.MetricImpacts{Readiness: 0.05, Tension: 0.10},
		},
		{
			Code:        "SIG_BORDER_CLASH",
			Description: "Armed clash at a border",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventBorderClash},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.05, HalfLifeHours: 24,
			Impacts: models.MetricImpacts{Tension: 0.15, Hostility: 0.15, Stability: -0.05},
		},
		{
			Code:        "SIG_CIVILIAN_CASUALTIES",
			Description: "Civilian casualties reported in strikes",
			Category:    models.CategoryKinetic,
			Keywords:    []string{"civilian", "hospital", "school", "residential"},
			MinSeverity: 5,
			Weight:      4, ConfidenceBoost: 0.0, HalfLifeHours: 48,
			Impacts:              models.MetricImpacts{Tension: 0.15, Hostility: 0.20, Stability: -0.10},
			RequiresVerification: true,
		},
		{
			Code:        "SIG_INFRASTRUCTURE_STRIKE",
			Description: "Strike on critical infrastructure",
			Category:    models.CategoryKinetic,
			Keywords:    []string{"power plant", "power grid", "refinery", "pipeline", "port", "airport", "dam"},
			MinSeverity: 4,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Tension: 0.15, Hostility: 0.15, Stability: -0.15},
		},

		// Mobilization and posture
		{
			Code:        "SIG_TROOP_BUILDUP",
			Description: "Troop concentration near a border or front",
			Category:    models.CategoryMobilization,
			EventTypes:  []models.EventType{models.EventTroopMovement},
			Keywords:    []string{"buildup", "massing", "deployed", "concentration", "amassing"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Readiness: 0.20, Tension: 0.15},
		},
		{
			Code:        "SIG_MOBILIZATION_ORDER",
			Description: "General or partial mobilization ordered",
			Category:    models.CategoryMobilization,
			EventTypes:  []models.EventType{models.EventMobilization},
			MinSeverity: 4,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Readiness: 0.30, Tension: 0.20, Stability: -0.05},
		},
		{
			Code:        "SIG_RESERVES_CALLED",
			Description: "Reserve forces called up",
			Category:    models.CategoryMobilization,
			Keywords:    []string{"reservists", "reserve forces", "call-up", "called up"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Readiness: 0.25, Tension: 0.10},
		},
		{
			Code:        "SIG_MILITARY_EXERCISE",
			Description: "Large-scale military exercise",
			Category:    models.CategoryMobilization,
			EventTypes:  []models.EventType{models.EventMilitaryExercise},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.0, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.05},
		},
		{
			Code:        "SIG_FORCE_POSTURE_CHANGE",
			Description: "Carrier group, bomber, or missile system repositioned",
			Category:    models.CategoryMobilization,
			Keywords:    []string{"carrier strike group", "carrier group", "bombers deployed", "missile systems", "repositioned"},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.05, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Readiness: 0.15, Tension: 0.10},
		},
		{
			Code:        "SIG_ARMS_SHIPMENT",
			Description: "Major arms transfer or delivery",
			Category:    models.CategoryMobilization,
			Keywords:    []string{"arms shipment", "weapons delivery", "arms transfer", "military aid package"},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.0, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.05},
		},

		// Nuclear
		{
			Code:        "SIG_NUCLEAR_TEST",
			Description: "Nuclear test conducted or announced",
			Category:    models.CategoryNuclear,
			EventTypes:  []models.EventType{models.EventNuclearActivity},
			Keywords:    []string{"nuclear test", "underground test", "warhead test"},
			MinSeverity: 6,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 168,
			Impacts:              models.MetricImpacts{Tension: 0.30, Stability: -0.10},
			RequiresVerification: true,
		},
		{
			Code:        "SIG_NUCLEAR_RHETORIC",
			Description: "Nuclear threats in official rhetoric",
			Category:    models.CategoryNuclear,
			Keywords:    []string{"nuclear threat", "nuclear weapons", "nuclear option", "tactical nuclear"},
			MinSeverity: 3,
			Weight:      3, ConfidenceBoost: 0.0, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Tension: 0.15},
		},
		{
			Code:        "SIG_ENRICHMENT_ACTIVITY",
			Description: "Uranium enrichment activity expanded",
			Category:    models.CategoryNuclear,
			Keywords:    []string{"enrichment", "centrifuge", "60 percent", "weapons-grade"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 168,
			Impacts:              models.MetricImpacts{Tension: 0.20},
			RequiresVerification: true,
		},

		// Diplomatic
		{
			Code:        "SIG_TALKS_COLLAPSE",
			Description: "Negotiations collapsed or suspended",
			Category:    models.CategoryDiplomatic,
			Keywords:    []string{"talks collapsed", "negotiations suspended", "walked out", "talks broke down"},
			MinSeverity: 2,
			Weight:      3, ConfidenceBoost: 0.0, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Tension: 0.15},
		},
		{
			Code:        "SIG_TALKS_RESUMED",
			Description: "Negotiations resumed or announced",
			Category:    models.CategoryDiplomatic,
			EventTypes:  []models.EventType{models.EventDiplomaticTalks},
			MinSeverity: 1,
			Weight:      2, ConfidenceBoost: 0.0, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Tension: -0.10},
		},
		{
			Code:        "SIG_AMBASSADOR_EXPELLED",
			Description: "Diplomats expelled or recalled",
			Category:    models.CategoryDiplomatic,
			EventTypes:  []models.EventType{models.EventDiplomaticExpulsion},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.05, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Tension: 0.10, Hostility: 0.05},
		},
		{
			Code:        "SIG_CEASEFIRE_AGREED",
			Description: "Ceasefire agreed or extended",
			Category:    models.CategoryDiplomatic,
			EventTypes:  []models.EventType{models.EventCeasefire},
			Keywords:    []string{"ceasefire", "truce", "cessation of hostilities"},
			MinSeverity: 1,
			Weight:      3, ConfidenceBoost: 0.05, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Tension: -0.20, Hostility: -0.15},
		},
		{
			Code:        "SIG_CEASEFIRE_BROKEN",
			Description: "Ceasefire violated",
			Category:    models.CategoryDiplomatic,
			Keywords:    []string{"ceasefire violated", "ceasefire broken", "truce collapsed"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Tension: 0.20, Hostility: 0.15},
		},
		{
			Code:        "SIG_ULTIMATUM_ISSUED",
			Description: "Ultimatum or red line declared",
			Category:    models.CategoryDiplomatic,
			Keywords:    []string{"ultimatum", "red line", "final warning", "consequences"},
			MinSeverity: 2,
			Weight:      3, ConfidenceBoost: 0.0, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Tension: 0.15},
		},

		// Economic
		{
			Code:        "SIG_SANCTIONS_IMPOSED",
			Description: "New sanctions imposed",
			Category:    models.CategoryEconomic,
			EventTypes:  []models.EventType{models.EventSanctions},
			MinSeverity: 1,
			Weight:      2, ConfidenceBoost: 0.05, HalfLifeHours: 168,
			Impacts: models.MetricImpacts{Tension: 0.10, Hostility: 0.05},
		},
		{
			Code:        "SIG_ENERGY_CUTOFF",
			Description: "Energy supply cut or threatened",
			Category:    models.CategoryEconomic,
			Keywords:    []string{"gas supply", "oil exports", "energy cutoff", "supply halted"},
			MinSeverity: 2,
			Weight:      3, ConfidenceBoost: 0.0, HalfLifeHours: 120,
			Impacts: models.MetricImpacts{Tension: 0.10, Stability: -0.05},
		},
		{
			Code:        "SIG_BLOCKADE",
			Description: "Blockade imposed on ports or straits",
			Category:    models.CategoryEconomic,
			Keywords:    []string{"blockade", "shipping blocked", "strait closed", "quarantine"},
			MinSeverity: 4,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 96,
			Impacts: models.MetricImpacts{Readiness: 0.10, Tension: 0.20, Stability: -0.10},
		},

		// Cyber
		{
			Code:        "SIG_CYBER_ATTACK",
			Description: "State-linked cyber attack",
			Category:    models.CategoryCyber,
			EventTypes:  []models.EventType{models.EventCyberAttack},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.0, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Tension: 0.05, Hostility: 0.05},
		},
		{
			Code:        "SIG_GRID_ATTACK",
			Description: "Cyber attack on critical infrastructure",
			Category:    models.CategoryCyber,
			EventTypes:  []models.EventType{models.EventCyberAttack},
			Keywords:    []string{"power grid", "scada", "critical infrastructure", "water system"},
			MinSeverity: 4,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 72,
			Impacts:              models.MetricImpacts{Tension: 0.15, Stability: -0.10},
			RequiresVerification: true,
		},

		// Internal
		{
			Code:        "SIG_CIVIL_UNREST",
			Description: "Mass protests or riots",
			Category:    models.CategoryInternal,
			EventTypes:  []models.EventType{models.EventCivilUnrest},
			MinSeverity: 2,
			Weight:      2, ConfidenceBoost: 0.0, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Stability: -0.15},
		},
		{
			Code:        "SIG_COUP_ATTEMPT",
			Description: "Coup attempt or military takeover",
			Category:    models.CategoryInternal,
			Keywords:    []string{"coup", "military takeover", "seized power", "junta"},
			MinSeverity: 5,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 96,
			Impacts:              models.MetricImpacts{Stability: -0.30, Tension: 0.10},
			RequiresVerification: true,
		},

		// Dyad-specific escalation markers. These fire only when the strike
		// vocabulary and both parties appear together, which is what the
		// scenario templates key on.
		{
			Code:        "SIG_STRIKE_US_IRAN",
			Description: "Direct strike between US and Iranian forces",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventAirstrike, models.EventMissileStrike, models.EventDroneStrike},
			Keywords:    []string{"iran", "iranian", "irgc"},
			MinSeverity: 5,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Readiness: 0.20, Tension: 0.30, Hostility: 0.30},
		},
		{
			Code:        "SIG_STRIKE_ISRAEL_IRAN",
			Description: "Direct strike between Israel and Iran",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventAirstrike, models.EventMissileStrike, models.EventDroneStrike},
			Keywords:    []string{"israel", "israeli", "idf"},
			MinSeverity: 5,
			Weight:      5, ConfidenceBoost: 0.10, HalfLifeHours: 48,
			Impacts: models.MetricImpacts{Readiness: 0.20, Tension: 0.30, Hostility: 0.30},
		},
		{
			Code:        "SIG_ESCALATION_TAIWAN",
			Description: "Military escalation around the Taiwan Strait",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventAirIncursion, models.EventNavalIncident, models.EventMilitaryExercise},
			Keywords:    []string{"taiwan", "taiwan strait", "median line"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Readiness: 0.15, Tension: 0.20},
		},
		{
			Code:        "SIG_ESCALATION_KOREA",
			Description: "Military escalation on the Korean peninsula",
			Category:    models.CategoryKinetic,
			EventTypes:  []models.EventType{models.EventMissileStrike, models.EventArtilleryShelling, models.EventMilitaryExercise},
			Keywords:    []string{"north korea", "dmz", "pyongyang", "korean peninsula"},
			MinSeverity: 3,
			Weight:      4, ConfidenceBoost: 0.05, HalfLifeHours: 72,
			Impacts: models.MetricImpacts{Readiness: 0.15, Tension: 0.20},
		},
	}
}
