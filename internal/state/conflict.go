package state

import (
	"sort"
	"time"

	"github.com/ternarybob/argus/internal/models"
)

const (
	heatHalfLife    = 48 * time.Hour
	tensionHalfLife = 7 * 24 * time.Hour

	// defaultVelocityWindow applies when no window is configured
	defaultVelocityWindow = 24 * time.Hour

	// Thresholds for flagging a recompute as a major change
	majorTensionDelta = 0.15
	majorHeatDelta    = 0.20

	// velocityBaseline is the neutral reading: activity appearing where
	// the prior window was empty, or a window holding steady.
	velocityBaseline = 0.5

	maxTopDrivers = 3
)

// ComputeConflictState derives the full live state row for one conflict
// from its recent events. `events` must cover the lookback window
// (7 days); `prev` is the previously persisted row or nil on first
// computation. `velocityWindow` bounds the velocity and instability
// inputs; zero or negative falls back to the 24h default. Rank
// assignment is left to the theatre rollup.
func ComputeConflictState(conflict *models.ConflictEntity, events []*models.ConflictEvent, prev *models.ConflictStateLive, velocityWindow time.Duration, now time.Time) *models.ConflictStateLive {
	if velocityWindow <= 0 {
		velocityWindow = defaultVelocityWindow
	}
	tension := computeTension(conflict, events, now)
	heat := computeHeat(events, now)
	velocity := computeVelocity(events, velocityWindow, now)
	momentum := computeMomentum(tension, velocity, heat, events, now)
	pressure := clamp01(tension*(0.6+0.4*conflict.Importance) + 0.2*heat)
	instability := computeInstability(events, velocity, velocityWindow, now)

	state := &models.ConflictStateLive{
		ConflictID:  conflict.ID,
		Tension:     tension,
		Heat:        heat,
		Velocity:    velocity,
		Momentum:    momentum,
		Pressure:    pressure,
		Instability: instability,
		TopDrivers:  topDrivers(events),
		UpdatedAt:   now,
	}

	if last := lastEventTime(events); !last.IsZero() {
		state.LastEventAt = &last
	} else if prev != nil {
		state.LastEventAt = prev.LastEventAt
	}

	if prev != nil {
		state.TheatreRank = prev.TheatreRank
		state.LastMajorChangeAt = prev.LastMajorChangeAt
		if isMajorChange(prev, state) {
			t := now
			state.LastMajorChangeAt = &t
		}
	}
	return state
}

// isMajorChange reports whether the recompute moved tension or heat past
// the major-change thresholds.
func isMajorChange(prev, curr *models.ConflictStateLive) bool {
	if diff := curr.Tension - prev.Tension; diff > majorTensionDelta || diff < -majorTensionDelta {
		return true
	}
	if diff := curr.Heat - prev.Heat; diff > majorHeatDelta || diff < -majorHeatDelta {
		return true
	}
	return false
}

// computeHeat sums decayed event impacts, weighted by severity
func computeHeat(events []*models.ConflictEvent, now time.Time) float64 {
	sum := 0.0
	for _, e := range events {
		sum += e.ImpactScore * (float64(e.Severity) / 5.0) * decayFactor(now, e.WindowStart, heatHalfLife)
	}
	return clamp01(sum)
}

// computeTension layers the decayed strongest recent activity on top of
// the conflict's structural baseline. No recent events leaves the
// baseline untouched.
func computeTension(conflict *models.ConflictEntity, events []*models.ConflictEvent, now time.Time) float64 {
	if len(events) == 0 {
		return clamp01(conflict.BaseTension)
	}
	maxSeverity := 0
	maxImpact := 0.0
	for _, e := range events {
		if e.MaxSeverity > maxSeverity {
			maxSeverity = e.MaxSeverity
		}
		if e.ImpactScore > maxImpact {
			maxImpact = e.ImpactScore
		}
	}
	decay := decayFactor(now, lastEventTime(events), tensionHalfLife)
	bump := 0.5 * conflict.BaseHostility * decay * (float64(maxSeverity) / 5.0) * maxImpact
	return clamp01(conflict.BaseTension + bump)
}

// computeVelocity compares summed impact in the current window against
// the window before that. An empty prior window yields the neutral
// baseline when there is current activity, zero otherwise.
func computeVelocity(events []*models.ConflictEvent, window time.Duration, now time.Time) float64 {
	currStart := now.Add(-window)
	prevStart := now.Add(-2 * window)

	curr, prev := 0.0, 0.0
	for _, e := range events {
		switch {
		case !e.WindowStart.Before(currStart):
			curr += e.ImpactScore
		case !e.WindowStart.Before(prevStart):
			prev += e.ImpactScore
		}
	}
	if prev == 0 {
		if curr > 0 {
			return velocityBaseline
		}
		return 0
	}
	return clamp01(velocityBaseline + 0.5*(curr-prev)/prev)
}

// computeMomentum blends velocity, a short-horizon tension delta estimate,
// and heat. Past tension is approximated conservatively from the average
// impact of events 6 to 12 hours old.
func computeMomentum(tension, velocity, heat float64, events []*models.ConflictEvent, now time.Time) float64 {
	var recent []float64
	for _, e := range events {
		age := now.Sub(e.WindowStart)
		if age >= 6*time.Hour && age < 12*time.Hour {
			recent = append(recent, e.ImpactScore)
		}
	}
	tensionDelta := avg(recent) * 0.3 // current minus estimated past
	normalized := clamp01((tensionDelta + 1.0) / 2.0)
	return clamp01(0.55*velocity + 0.35*normalized + 0.10*heat)
}

// computeInstability measures how erratic the current window was: impact
// variance, event-type entropy, and the distance of velocity from rest.
func computeInstability(events []*models.ConflictEvent, velocity float64, window time.Duration, now time.Time) float64 {
	cutoff := now.Add(-window)
	var impacts []float64
	typeCounts := make(map[string]int)
	for _, e := range events {
		if e.WindowStart.Before(cutoff) {
			continue
		}
		impacts = append(impacts, e.ImpactScore)
		typeCounts[string(e.DominantEventType)]++
	}
	normVariance := clamp01(variance(impacts) * 4.0)
	normEntropy := normalizedEntropy(typeCounts)
	absVelocity := velocity
	if absVelocity < 0 {
		absVelocity = -absVelocity
	}
	return clamp01(0.5*normVariance + 0.3*normEntropy + 0.2*absVelocity)
}

// topDrivers returns the highest-impact events, each with its own
// evidence, most impactful first.
func topDrivers(events []*models.ConflictEvent) []models.TopDriver {
	sorted := make([]*models.ConflictEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ImpactScore > sorted[j].ImpactScore
	})
	if len(sorted) > maxTopDrivers {
		sorted = sorted[:maxTopDrivers]
	}
	drivers := make([]models.TopDriver, 0, len(sorted))
	for _, e := range sorted {
		drivers = append(drivers, models.TopDriver{
			EventID:      e.ID,
			EventType:    e.DominantEventType,
			Severity:     e.Severity,
			ImpactScore:  e.ImpactScore,
			WindowStart:  e.WindowStart,
			EvidenceURLs: e.EvidenceURLs,
		})
	}
	return drivers
}

func lastEventTime(events []*models.ConflictEvent) time.Time {
	var last time.Time
	for _, e := range events {
		if e.WindowStart.After(last) {
			last = e.WindowStart
		}
	}
	return last
}
