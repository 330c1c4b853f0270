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

// ConflictStorage implements the ConflictStorage interface for Badger.
// It holds both the conflict reference rows and the bucketed events.
type ConflictStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewConflictStorage creates a new ConflictStorage instance
func NewConflictStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ConflictStorage {
	return &ConflictStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ConflictStorage) SaveConflict(ctx context.Context, conflict *models.ConflictEntity) error {
	if conflict.ID == "" {
		return fmt.Errorf("conflict ID is required")
	}
	if err := s.db.Store().Upsert(conflict.ID, conflict); err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}
	return nil
}

func (s *ConflictStorage) GetConflict(ctx context.Context, id string) (*models.ConflictEntity, error) {
	var conflict models.ConflictEntity
	if err := s.db.Store().Get(id, &conflict); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("conflict not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}
	return &conflict, nil
}

func (s *ConflictStorage) GetAllConflicts(ctx context.Context) ([]*models.ConflictEntity, error) {
	var conflicts []models.ConflictEntity
	if err := s.db.Store().Find(&conflicts, nil); err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	result := make([]*models.ConflictEntity, len(conflicts))
	for i := range conflicts {
		result[i] = &conflicts[i]
	}
	return result, nil
}

func (s *ConflictStorage) SaveConflictEvent(ctx context.Context, event *models.ConflictEvent) error {
	if event.ID == "" {
		return fmt.Errorf("conflict event ID is required")
	}
	if len(event.EvidenceURLs) == 0 {
		return fmt.Errorf("conflict event %s has no evidence URLs", event.ID)
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Store().Upsert(event.ID, event); err != nil {
		return fmt.Errorf("failed to save conflict event: %w", err)
	}
	return nil
}

func (s *ConflictStorage) GetConflictEvent(ctx context.Context, conflictID string, windowStart time.Time) (*models.ConflictEvent, error) {
	var events []models.ConflictEvent
	err := s.db.Store().Find(&events, badgerhold.Where("ConflictID").Eq(conflictID).And("WindowStart").Eq(windowStart))
	if err != nil {
		return nil, fmt.Errorf("failed to find conflict event: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (s *ConflictStorage) GetConflictEventsSince(ctx context.Context, conflictID string, since time.Time) ([]*models.ConflictEvent, error) {
	var events []models.ConflictEvent
	err := s.db.Store().Find(&events, badgerhold.Where("ConflictID").Eq(conflictID).And("WindowStart").Ge(since))
	if err != nil {
		return nil, fmt.Errorf("failed to find conflict events: %w", err)
	}
	result := make([]*models.ConflictEvent, len(events))
	for i := range events {
		result[i] = &events[i]
	}
	return result, nil
}

func (s *ConflictStorage) CountConflictEvents(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.ConflictEvent{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflict events: %w", err)
	}
	return int(count), nil
}
