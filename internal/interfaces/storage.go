package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/argus/internal/models"
)

// ItemStorage - interface for raw item persistence (the ingest seam)
type ItemStorage interface {
	SaveItem(ctx context.Context, item *models.RawItem) error
	GetItem(ctx context.Context, id string) (*models.RawItem, error)
	GetUnprocessedItems(ctx context.Context, limit int) ([]*models.RawItem, error)
	MarkItemProcessed(ctx context.Context, id string) error
	CountItems(ctx context.Context) (int, error)
}

// FrameStorage - interface for event frame persistence
type FrameStorage interface {
	SaveFrame(ctx context.Context, frame *models.EventFrame) error
	GetFrame(ctx context.Context, id string) (*models.EventFrame, error)
	GetUnprocessedFrames(ctx context.Context) ([]*models.EventFrame, error)
	MarkFrameProcessed(ctx context.Context, id string, conflictID string) error
	CountFrames(ctx context.Context) (int, error)
}

// SignalStorage - interface for signal activation persistence
type SignalStorage interface {
	SaveActivation(ctx context.Context, activation *models.SignalActivation) error
	// GetActivation returns the activation for a (signal, frame) pair, or
	// nil when none exists. Detection uses this for its idempotence check.
	GetActivation(ctx context.Context, signalCode, frameID string) (*models.SignalActivation, error)
	GetActiveActivations(ctx context.Context, now time.Time) ([]*models.SignalActivation, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int, error)
}

// ConflictStorage - interface for conflict reference data and bucketed events
type ConflictStorage interface {
	// Reference data
	SaveConflict(ctx context.Context, conflict *models.ConflictEntity) error
	GetConflict(ctx context.Context, id string) (*models.ConflictEntity, error)
	GetAllConflicts(ctx context.Context) ([]*models.ConflictEntity, error)

	// Bucketed events
	SaveConflictEvent(ctx context.Context, event *models.ConflictEvent) error
	// GetConflictEvent returns the event for a (conflict, window_start)
	// bucket, or nil when none exists. Aggregation uses this as its
	// check-then-insert guard.
	GetConflictEvent(ctx context.Context, conflictID string, windowStart time.Time) (*models.ConflictEvent, error)
	GetConflictEventsSince(ctx context.Context, conflictID string, since time.Time) ([]*models.ConflictEvent, error)
	CountConflictEvents(ctx context.Context) (int, error)
}

// StateStorage - interface for the computed live state rows
type StateStorage interface {
	SaveConflictState(ctx context.Context, state *models.ConflictStateLive) error
	GetConflictState(ctx context.Context, conflictID string) (*models.ConflictStateLive, error)
	GetAllConflictStates(ctx context.Context) ([]*models.ConflictStateLive, error)
	UpdateTheatreRank(ctx context.Context, conflictID string, rank int) error

	SaveTheatreState(ctx context.Context, state *models.TheatreStateLive) error
	GetTheatreState(ctx context.Context, theatre string) (*models.TheatreStateLive, error)
	GetAllTheatreStates(ctx context.Context) ([]*models.TheatreStateLive, error)

	SaveAlliancePressure(ctx context.Context, pressure *models.AlliancePressureLive) error
	GetAlliancePressure(ctx context.Context, code string) (*models.AlliancePressureLive, error)
	GetAllAlliancePressures(ctx context.Context) ([]*models.AlliancePressureLive, error)
}

// ScenarioStorage - interface for scenario scores. Only the latest score
// per scenario is kept; saving overwrites the previous one.
type ScenarioStorage interface {
	SaveScore(ctx context.Context, score *models.ScenarioScore) error
	GetScore(ctx context.Context, scenarioID string) (*models.ScenarioScore, error)
	GetAllScores(ctx context.Context) ([]*models.ScenarioScore, error)
}

// StorageManager provides access to all storage implementations
type StorageManager interface {
	ItemStorage() ItemStorage
	FrameStorage() FrameStorage
	SignalStorage() SignalStorage
	ConflictStorage() ConflictStorage
	StateStorage() StateStorage
	ScenarioStorage() ScenarioStorage
	Close() error
}
