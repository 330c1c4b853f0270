package badger

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// StateStorage implements the StateStorage interface for Badger. Live
// state rows are keyed by their entity identifier and overwritten
// wholesale each cycle.
type StateStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewStateStorage creates a new StateStorage instance
func NewStateStorage(db *BadgerDB, logger arbor.ILogger) interfaces.StateStorage {
	return &StateStorage{
		db:     db,
		logger: logger,
	}
}

func (s *StateStorage) SaveConflictState(ctx context.Context, state *models.ConflictStateLive) error {
	if state.ConflictID == "" {
		return fmt.Errorf("conflict ID is required")
	}
	if err := s.db.Store().Upsert(state.ConflictID, state); err != nil {
		return fmt.Errorf("failed to save conflict state: %w", err)
	}
	return nil
}

func (s *StateStorage) GetConflictState(ctx context.Context, conflictID string) (*models.ConflictStateLive, error) {
	var state models.ConflictStateLive
	if err := s.db.Store().Get(conflictID, &state); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conflict state: %w", err)
	}
	return &state, nil
}

func (s *StateStorage) GetAllConflictStates(ctx context.Context) ([]*models.ConflictStateLive, error) {
	var states []models.ConflictStateLive
	if err := s.db.Store().Find(&states, nil); err != nil {
		return nil, fmt.Errorf("failed to list conflict states: %w", err)
	}
	result := make([]*models.ConflictStateLive, len(states))
	for i := range states {
		result[i] = &states[i]
	}
	return result, nil
}

func (s *StateStorage) UpdateTheatreRank(ctx context.Context, conflictID string, rank int) error {
	var state models.ConflictStateLive
	if err := s.db.Store().Get(conflictID, &state); err != nil {
		return fmt.Errorf("failed to get conflict state for rank update: %w", err)
	}
	state.TheatreRank = rank
	if err := s.db.Store().Update(conflictID, &state); err != nil {
		return fmt.Errorf("failed to update theatre rank: %w", err)
	}
	return nil
}

func (s *StateStorage) SaveTheatreState(ctx context.Context, state *models.TheatreStateLive) error {
	if state.Theatre == "" {
		return fmt.Errorf("theatre is required")
	}
	if err := s.db.Store().Upsert(state.Theatre, state); err != nil {
		return fmt.Errorf("failed to save theatre state: %w", err)
	}
	return nil
}

func (s *StateStorage) GetTheatreState(ctx context.Context, theatre string) (*models.TheatreStateLive, error) {
	var state models.TheatreStateLive
	if err := s.db.Store().Get(theatre, &state); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theatre state: %w", err)
	}
	return &state, nil
}

func (s *StateStorage) GetAllTheatreStates(ctx context.Context) ([]*models.TheatreStateLive, error) {
	var states []models.TheatreStateLive
	if err := s.db.Store().Find(&states, nil); err != nil {
		return nil, fmt.Errorf("failed to list theatre states: %w", err)
	}
	result := make([]*models.TheatreStateLive, len(states))
	for i := range states {
		result[i] = &states[i]
	}
	return result, nil
}

func (s *StateStorage) SaveAlliancePressure(ctx context.Context, pressure *models.AlliancePressureLive) error {
	if pressure.AllianceCode == "" {
		return fmt.Errorf("alliance code is required")
	}
	if err := s.db.Store().Upsert(pressure.AllianceCode, pressure); err != nil {
		return fmt.Errorf("failed to save alliance pressure: %w", err)
	}
	return nil
}

func (s *StateStorage) GetAlliancePressure(ctx context.Context, code string) (*models.AlliancePressureLive, error) {
	var pressure models.AlliancePressureLive
	if err := s.db.Store().Get(code, &pressure); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alliance pressure: %w", err)
	}
	return &pressure, nil
}

func (s *StateStorage) GetAllAlliancePressures(ctx context.Context) ([]*models.AlliancePressureLive, error) {
	var pressures []models.AlliancePressureLive
	if err := s.db.Store().Find(&pressures, nil); err != nil {
		return nil, fmt.Errorf("failed to list alliance pressures: %w", err)
	}
	result := make([]*models.AlliancePressureLive, len(pressures))
	for i := range pressures {
		result[i] = &pressures[i]
	}
	return result, nil
}
