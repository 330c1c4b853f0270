package interfaces

import (
	"context"

	"github.com/ternarybob/argus/internal/models"
)

// PipelineService exposes the two recomputation entry points. Both are
// idempotent and safe to invoke more often than their natural cadence.
type PipelineService interface {
	// RunAggregationCycle classifies unprocessed items, activates signals,
	// and buckets matched frames into conflict events.
	RunAggregationCycle(ctx context.Context) (*models.CycleResult, error)

	// RunStateCycle recomputes conflict states (phase 1), then theatre and
	// alliance rollups and scenario scores (phase 2).
	RunStateCycle(ctx context.Context) (*models.CycleResult, error)
}
