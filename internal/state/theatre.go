package state

import (
	"sort"
	"time"

	"github.com/ternarybob/argus/internal/models"
)

const maxDominantActors = 5

// ConflictRanking pairs a conflict with its fresh state for ranking
type ConflictRanking struct {
	ConflictID string
	Pressure   float64
}

// ComputeTheatreState rolls up the fresh conflict states sharing one
// theatre tag into an importance-weighted aggregate, and returns the
// pressure-descending rank order for write-back onto the conflict rows.
// Returns (nil, nil) when the theatre has no conflicts with state: the
// caller leaves any existing row untouched.
func ComputeTheatreState(theatre string, conflicts []*models.ConflictEntity, states map[string]*models.ConflictStateLive, now time.Time) (*models.TheatreStateLive, []ConflictRanking) {
	var (
		weightSum float64
		tension   float64
		heat      float64
		velocity  float64
		momentum  float64
		rankings  []ConflictRanking
	)
	actorCounts := make(map[string]int)
	var actorOrder []string

	for _, conflict := range conflicts {
		st, ok := states[conflict.ID]
		if !ok {
			continue
		}
		weight := conflict.Importance
		if weight <= 0 {
			weight = 0.1
		}
		weightSum += weight
		tension += st.Tension * weight
		heat += st.Heat * weight
		velocity += st.Velocity * weight
		momentum += st.Momentum * weight
		rankings = append(rankings, ConflictRanking{ConflictID: conflict.ID, Pressure: st.Pressure})

		for _, actor := range []string{conflict.ActorA, conflict.ActorB} {
			if _, seen := actorCounts[actor]; !seen {
				actorOrder = append(actorOrder, actor)
			}
			actorCounts[actor]++
		}
	}
	if weightSum == 0 {
		return nil, nil
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Pressure > rankings[j].Pressure
	})
	sort.SliceStable(actorOrder, func(i, j int) bool {
		return actorCounts[actorOrder[i]] > actorCounts[actorOrder[j]]
	})
	if len(actorOrder) > maxDominantActors {
		actorOrder = actorOrder[:maxDominantActors]
	}

	return &models.TheatreStateLive{
		Theatre:         theatre,
		Tension:         clamp01(tension / weightSum),
		Heat:            clamp01(heat / weightSum),
		Velocity:        clamp01(velocity / weightSum),
		Momentum:        clamp01(momentum / weightSum),
		ActiveConflicts: len(rankings),
		DominantActors:  actorOrder,
		UpdatedAt:       now,
	}, rankings
}
