package state

import (
	"sort"
	"time"

	"github.com/ternarybob/argus/internal/models"
)

const (
	// Conflicts must carry this much pressure to bear on an alliance
	allianceQualifyingPressure = 0.1
	// Members become "affected" when party to a conflict this hot
	allianceAffectedPressure = 0.5

	maxAllianceConflicts = 5
)

// ComputeAlliancePressure derives the pressure rollup for one alliance
// from the fresh conflict states. Zero qualifying conflicts yields an
// exact-zero row with empty lists, not an error.
func ComputeAlliancePressure(alliance *models.Alliance, conflicts []*models.ConflictEntity, states map[string]*models.ConflictStateLive, now time.Time) *models.AlliancePressureLive {
	type qualified struct {
		conflict *models.ConflictEntity
		pressure float64
	}
	var qualifying []qualified
	for _, conflict := range conflicts {
		if !alliance.HasMember(conflict.ActorA) && !alliance.HasMember(conflict.ActorB) {
			continue
		}
		st, ok := states[conflict.ID]
		if !ok || st.Pressure <= allianceQualifyingPressure {
			continue
		}
		qualifying = append(qualifying, qualified{conflict: conflict, pressure: st.Pressure})
	}

	result := &models.AlliancePressureLive{
		AllianceCode:    alliance.Code,
		Pressure:        0.0,
		TopConflicts:    []string{},
		AffectedMembers: []string{},
		UpdatedAt:       now,
	}
	if len(qualifying) == 0 {
		return result
	}

	sum, max := 0.0, 0.0
	for _, q := range qualifying {
		sum += q.pressure
		if q.pressure > max {
			max = q.pressure
		}
	}
	mean := sum / float64(len(qualifying))
	result.Pressure = clamp01((0.4*mean + 0.6*max) * alliance.Strength)

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].pressure > qualifying[j].pressure
	})
	for i, q := range qualifying {
		if i >= maxAllianceConflicts {
			break
		}
		result.TopConflicts = append(result.TopConflicts, q.conflict.ID)
	}

	affected := make(map[string]bool)
	for _, q := range qualifying {
		if q.pressure < allianceAffectedPressure {
			continue
		}
		for _, actor := range []string{q.conflict.ActorA, q.conflict.ActorB} {
			if alliance.HasMember(actor) && !affected[actor] {
				affected[actor] = true
				result.AffectedMembers = append(result.AffectedMembers, actor)
			}
		}
	}
	return result
}
