package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// SignalStorage implements the SignalStorage interface for Badger
type SignalStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewSignalStorage creates a new SignalStorage instance
func NewSignalStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SignalStorage {
	return &SignalStorage{
		db:     db,
		logger: logger,
	}
}

func (s *SignalStorage) SaveActivation(ctx context.Context, activation *models.SignalActivation) error {
	if activation.ID == "" {
		return fmt.Errorf("activation ID is required")
	}
	if err := s.db.Store().Upsert(activation.ID, activation); err != nil {
		return fmt.Errorf("failed to save activation: %w", err)
	}
	return nil
}

func (s *SignalStorage) GetActivation(ctx context.Context, signalCode, frameID string) (*models.SignalActivation, error) {
	var activations []models.SignalActivation
	err := s.db.Store().Find(&activations, badgerhold.Where("SignalCode").Eq(signalCode).And("FrameID").Eq(frameID))
	if err != nil {
		return nil, fmt.Errorf("failed to find activation: %w", err)
	}
	if len(activations) == 0 {
		return nil, nil
	}
	return &activations[0], nil
}

func (s *SignalStorage) GetActiveActivations(ctx context.Context, now time.Time) ([]*models.SignalActivation, error) {
	var activations []models.SignalActivation
	err := s.db.Store().Find(&activations, badgerhold.Where("Active").Eq(true).And("ExpiresAt").Ge(now))
	if err != nil {
		return nil, fmt.Errorf("failed to find active activations: %w", err)
	}
	result := make([]*models.SignalActivation, len(activations))
	for i := range activations {
		result[i] = &activations[i]
	}
	return result, nil
}

func (s *SignalStorage) DeactivateExpired(ctx context.Context, now time.Time) (int, error) {
	var expired []models.SignalActivation
	err := s.db.Store().Find(&expired, badgerhold.Where("Active").Eq(true).And("ExpiresAt").Lt(now))
	if err != nil {
		return 0, fmt.Errorf("failed to find expired activations: %w", err)
	}
	count := 0
	for i := range expired {
		expired[i].Active = false
		if err := s.db.Store().Update(expired[i].ID, &expired[i]); err != nil {
			return count, fmt.Errorf("failed to deactivate %s: %w", expired[i].ID, err)
		}
		count++
	}
	return count, nil
}
