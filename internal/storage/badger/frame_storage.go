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

// FrameStorage implements the FrameStorage interface for Badger
type FrameStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewFrameStorage creates a new FrameStorage instance
func NewFrameStorage(db *BadgerDB, logger arbor.ILogger) interfaces.FrameStorage {
	return &FrameStorage{
		db:     db,
		logger: logger,
	}
}

func (s *FrameStorage) SaveFrame(ctx context.Context, frame *models.EventFrame) error {
	if frame.ID == "" {
		return fmt.Errorf("frame ID is required")
	}
	if frame.CreatedAt.IsZero() {
		frame.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Store().Upsert(frame.ID, frame); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	return nil
}

func (s *FrameStorage) GetFrame(ctx context.Context, id string) (*models.EventFrame, error) {
	var frame models.EventFrame
	if err := s.db.Store().Get(id, &frame); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("frame not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get frame: %w", err)
	}
	return &frame, nil
}

func (s *FrameStorage) GetUnprocessedFrames(ctx context.Context) ([]*models.EventFrame, error) {
	var frames []models.EventFrame
	if err := s.db.Store().Find(&frames, badgerhold.Where("Processed").Eq(false)); err != nil {
		return nil, fmt.Errorf("failed to find unprocessed frames: %w", err)
	}
	result := make([]*models.EventFrame, len(frames))
	for i := range frames {
		result[i] = &frames[i]
	}
	return result, nil
}

func (s *FrameStorage) MarkFrameProcessed(ctx context.Context, id string, conflictID string) error {
	var frame models.EventFrame
	if err := s.db.Store().Get(id, &frame); err != nil {
		return fmt.Errorf("failed to get frame for update: %w", err)
	}
	now := time.Now().UTC()
	frame.Processed = true
	frame.ProcessedAt = &now
	frame.ConflictID = conflictID
	if err := s.db.Store().Update(id, &frame); err != nil {
		return fmt.Errorf("failed to mark frame processed: %w", err)
	}
	return nil
}

func (s *FrameStorage) CountFrames(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.EventFrame{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count frames: %w", err)
	}
	return int(count), nil
}
