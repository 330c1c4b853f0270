package catalog

import "github.com/ternarybob/argus/internal/models"

// builtinConflicts is the reference set of tracked bilateral conflicts.
// Base hostility/tension are the floors the state calculators decay toward
// when no events arrive.
func builtinConflicts() []models.ConflictEntity {
	return []models.ConflictEntity{
		{ID: "ru-ua", ActorA: "RU", ActorB: "UA", Name: "Russia-Ukraine", Theatre: "eastern_europe", BaseHostility: 0.90, BaseTension: 0.80, Importance: 0.95},
		{ID: "il-ir", ActorA: "IL", ActorB: "IR", Name: "Israel-Iran", Theatre: "middle_east", BaseHostility: 0.80, BaseTension: 0.70, Importance: 0.90},
		{ID: "us-ir", ActorA: "US", ActorB: "IR", Name: "US-Iran", Theatre: "middle_east", BaseHostility: 0.70, BaseTension: 0.60, Importance: 0.85},
		{ID: "il-lb", ActorA: "IL", ActorB: "LB", Name: "Israel-Hezbollah", Theatre: "middle_east", BaseHostility: 0.75, BaseTension: 0.65, Importance: 0.70},
		{ID: "il-ps", ActorA: "IL", ActorB: "PS", Name: "Israel-Gaza", Theatre: "middle_east", BaseHostility: 0.85, BaseTension: 0.75, Importance: 0.75},
		{ID: "sa-ye", ActorA: "SA", ActorB: "YE", Name: "Saudi-Houthi", Theatre: "middle_east", BaseHostility: 0.60, BaseTension: 0.50, Importance: 0.55},
		{ID: "us-ye", ActorA: "US", ActorB: "YE", Name: "US-Houthi", Theatre: "middle_east", BaseHostility: 0.55, BaseTension: 0.50, Importance: 0.60},
		{ID: "cn-tw", ActorA: "CN", ActorB: "TW", Name: "China-Taiwan", Theatre: "east_asia", BaseHostility: 0.60, BaseTension: 0.65, Importance: 0.90},
		{ID: "us-cn", ActorA: "US", ActorB: "CN", Name: "US-China", Theatre: "east_asia", BaseHostility: 0.45, BaseTension: 0.55, Importance: 0.85},
		{ID: "kp-kr", ActorA: "KP", ActorB: "KR", Name: "Korean Peninsula", Theatre: "east_asia", BaseHostility: 0.65, BaseTension: 0.60, Importance: 0.70},
		{ID: "in-pk", ActorA: "IN", ActorB: "PK", Name: "India-Pakistan", Theatre: "south_asia", BaseHostility: 0.60, BaseTension: 0.55, Importance: 0.75},
		{ID: "am-az", ActorA: "AM", ActorB: "AZ", Name: "Armenia-Azerbaijan", Theatre: "caucasus", BaseHostility: 0.55, BaseTension: 0.45, Importance: 0.40},
		{ID: "rs-xk", ActorA: "RS", ActorB: "XK", Name: "Serbia-Kosovo", Theatre: "balkans", BaseHostility: 0.45, BaseTension: 0.40, Importance: 0.35},
		{ID: "il-sy", ActorA: "IL", ActorB: "SY", Name: "Israel-Syria", Theatre: "middle_east", BaseHostility: 0.55, BaseTension: 0.45, Importance: 0.45},
	}
}

func builtinAlliances() []models.Alliance {
	return []models.Alliance{
		{Code: "NATO", Name: "North Atlantic Treaty Organization", Strength: 0.90,
			Members: []string{"US", "UK", "FR", "DE", "PL", "TR"}},
		{Code: "CSTO", Name: "Collective Security Treaty Organization", Strength: 0.50,
			Members: []string{"RU", "BY", "AM"}},
		{Code: "AUKUS", Name: "Australia-UK-US Pact", Strength: 0.75,
			Members: []string{"US", "UK"}},
		{Code: "AXIS_RESISTANCE", Name: "Iran-aligned network", Strength: 0.60,
			Members: []string{"IR", "SY", "LB", "YE", "PS"}},
	}
}
