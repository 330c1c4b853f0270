package classifier

import (
	"regexp"

	"github.com/ternarybob/argus/internal/models"
)

// typeRule maps an event type to its match patterns and base severity.
// The table is ordered: classification ties break toward the earlier rule.
type typeRule struct {
	eventType    models.EventType
	patterns     []*regexp.Regexp
	baseSeverity int // 1-10 before boosts
}

func mustPatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return patterns
}

// typeRules is the ordered classification table. Patterns are matched
// against the whole item text; the type with the most total hits wins.
var typeRules = []typeRule{
	{
		eventType:    models.EventAirstrike,
		baseSeverity: 6,
		patterns: mustPatterns(
			`\bair\s?strikes?\b`,
			`\bwarplanes?\b.{0,40}\b(struck|bombed|hit)\b`,
			`\bbombing\s+raids?\b`,
			`\bfighter\s+jets?\b.{0,40}\bstruck\b`,
		),
	},
	{
		eventType:    models.EventMissileStrike,
		baseSeverity: 6,
		patterns: mustPatterns(
			`\b(ballistic|cruise|hypersonic)\s+missiles?\b`,
			`\bmissile\s+(strike|attack|barrage|salvo)s?\b`,
			`\bmissiles?\b.{0,40}\b(launched|fired|struck|hit)\b`,
			`\brockets?\s+fired\b`,
		),
	},
	{
		eventType:    models.EventDroneStrike,
		baseSeverity: 5,
		patterns: mustPatterns(
			`\bdrone\s+(strike|attack|swarm)s?\b`,
			`\b(kamikaze|suicide|attack)\s+drones?\b`,
			`\buavs?\b.{0,40}\b(struck|attacked|hit)\b`,
			`\bloitering\s+munitions?\b`,
		),
	},
	{
		eventType:    models.EventArtilleryShelling,
		baseSeverity: 5,
		patterns: mustPatterns(
			`\bartillery\b`,
			`\bshell(ing|ed)\b`,
			`\bmortar\s+(fire|rounds?|attack)\b`,
			`\bhowitzers?\b`,
			`\bmlrs\b|\bgrad\b.{0,20}\brockets?\b`,
		),
	},
	{
		eventType:    models.EventGroundAssault,
		baseSeverity: 7,
		patterns: mustPatterns(
			`\bground\s+(offensive|assault|operation|incursion)\b`,
			`\btroops?\b.{0,40}\b(advanced|stormed|captured|seized)\b`,
			`\b(captured|seized|liberated)\b.{0,30}\b(town|village|city)\b`,
			`\binfantry\s+assault\b`,
		),
	},
	{
		eventType:    models.EventNavalIncident,
		baseSeverity: 5,
		patterns: mustPatterns(
			`\b(warship|frigate|destroyer|corvette)s?\b`,
			`\bnaval\s+(clash|confrontation|incident|blockade)\b`,
			`\b(vessel|ship|tanker)s?\b.{0,40}\b(seized|attacked|intercepted|boarded)\b`,
			`\bsubmarines?\b.{0,30}\bdetected\b`,
		),
	},
	{
		eventType:    models.EventAirIncursion,
		baseSeverity: 4,
		patterns: mustPatterns(
			`\bairspace\s+(violation|incursion|breach)\b`,
			`\b(violated|entered|crossed into)\b.{0,20}\bairspace\b`,
			`\b(jets?|aircraft)\s+(intercepted|scrambled)\b`,
			`\bscrambled\s+(jets?|fighters?)\b`,
		),
	},
	{
		eventType:    models.EventTroopMovement,
		baseSeverity: 4,
		patterns: mustPatterns(
			`\btroops?\b.{0,40}\b(massing|amassing|deployed|deploying|buildup)\b`,
			`\b(military|force)\s+buildup\b`,
			`\b(armored|tank)\s+columns?\b`,
			`\bredeploy(ed|ment|ing)\b`,
		),
	},
	{
		eventType:    models.EventMobilization,
		baseSeverity: 5,
		patterns: mustPatterns(
			`\bmobili[sz]ation\b`,
			`\bmobili[sz]ed?\b.{0,30}\b(forces|troops|reservists)\b`,
			`\breservists?\b.{0,30}\b(called|summoned)\b`,
			`\bconscription\s+drive\b`,
		),
	},
	{
		eventType:    models.EventMilitaryExercise,
		baseSeverity: 3,
		patterns: mustPatterns(
			`\b(military|naval|joint|live.?fire)\s+(exercise|drill|maneuver)s?\b`,
			`\bwar\s?games?\b`,
			`\bexercises?\b.{0,30}\b(launched|conducted|began)\b`,
		),
	},
	{
		eventType:    models.EventBorderClash,
		baseSeverity: 5,
		patterns: mustPatterns(
			`\bborder\s+(clash|skirmish|fighting|incident)\b`,
			`\b(clash|exchange of fire)\b.{0,30}\bborder\b`,
			`\bcross.?border\s+(fire|attack|raid)\b`,
		),
	},
	{
		eventType:    models.EventSanctions,
		baseSeverity: 3,
		patterns: mustPatterns(
			`\bsanctions?\b`,
			`\b(export|trade)\s+(controls?|restrictions?|ban)\b`,
			`\bassets?\s+frozen\b`,
			`\bembargo\b`,
		),
	},
	{
		eventType:    models.EventDiplomaticTalks,
		baseSeverity: 2,
		patterns: mustPatterns(
			`\b(peace|ceasefire|nuclear)\s+talks\b`,
			`\bnegotiations?\b`,
			`\b(summit|mediation)\b`,
			`\bdiplomatic\s+(effort|initiative|channel)s?\b`,
		),
	},
	{
		eventType:    models.EventDiplomaticExpulsion,
		baseSeverity: 3,
		patterns: mustPatterns(
			`\b(expelled|recalled)\b.{0,30}\b(ambassador|diplomat|envoy)s?\b`,
			`\b(ambassador|diplomat|envoy)s?\b.{0,30}\b(expelled|recalled|summoned)\b`,
			`\b(severed|cut)\s+diplomatic\s+(ties|relations)\b`,
		),
	},
	{
		eventType:    models.EventCeasefire,
		baseSeverity: 2,
		patterns: mustPatterns(
			`\bceasefire\b`,
			`\btruce\b`,
			`\bcessation\s+of\s+hostilities\b`,
		),
	},
	{
		eventType:    models.EventNuclearActivity,
		baseSeverity: 7,
		patterns: mustPatterns(
			`\bnuclear\s+(test|weapon|warhead|program|facility)s?\b`,
			`\b(uranium|plutonium)\s+enrichment\b`,
			`\bcentrifuges?\b`,
			`\biaea\b.{0,40}\b(inspect|violat|breach)`,
		),
	},
	{
		eventType:    models.EventCyberAttack,
		baseSeverity: 4,
		patterns: mustPatterns(
			`\bcyber\s?(attack|strike|operation)s?\b`,
			`\b(hacked|breached)\b.{0,40}\b(systems?|networks?|grid)\b`,
			`\bransomware\b`,
			`\bmalware\b.{0,30}\b(deployed|discovered)\b`,
		),
	},
	{
		eventType:    models.EventCivilUnrest,
		baseSeverity: 4,
		patterns: mustPatterns(
			`\b(mass\s+)?protests?\b`,
			`\briots?\b`,
			`\bdemonstrat(ors?|ions?)\b`,
			`\b(crackdown|unrest)\b`,
		),
	},
}

// severityBoosts raise the per-type base when the text signals scale or
// civilian harm. Applied cumulatively, result clamped to [1,10].
var severityBoosts = []struct {
	pattern *regexp.Regexp
	boost   int
}{
	{regexp.MustCompile(`(?i)\b(\d{2,}|dozens|scores|hundreds)\s+(killed|dead)\b`), 2},
	{regexp.MustCompile(`(?i)\b(killed|dead|died|casualties|fatalities)\b`), 1},
	{regexp.MustCompile(`(?i)\b(civilian|hospital|school|residential|apartment)s?\b`), 1},
	{regexp.MustCompile(`(?i)\b(massive|large.?scale|unprecedented|major)\b`), 1},
	{regexp.MustCompile(`(?i)\b(nuclear|chemical|biological)\b`), 1},
}

// severityIndicators gate the "unknown" fallback: an unclassifiable item
// is only framed when at least one of these fires, otherwise it is dropped.
var severityIndicators = mustPatterns(
	`\b(killed|dead|died|casualties|wounded)\b`,
	`\b(attack|strike|explosion|blast)s?\b`,
)
