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

// ItemStorage implements the ItemStorage interface for Badger
type ItemStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewItemStorage creates a new ItemStorage instance
func NewItemStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ItemStorage {
	return &ItemStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ItemStorage) SaveItem(ctx context.Context, item *models.RawItem) error {
	if item.ID == "" {
		return fmt.Errorf("item ID is required")
	}
	if item.IngestedAt.IsZero() {
		item.IngestedAt = time.Now().UTC()
	}
	if err := s.db.Store().Upsert(item.ID, item); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func (s *ItemStorage) GetItem(ctx context.Context, id string) (*models.RawItem, error) {
	var item models.RawItem
	if err := s.db.Store().Get(id, &item); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("item not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (s *ItemStorage) GetUnprocessedItems(ctx context.Context, limit int) ([]*models.RawItem, error) {
	query := badgerhold.Where("Processed").Eq(false)
	if limit > 0 {
		query = query.Limit(limit)
	}
	var items []models.RawItem
	if err := s.db.Store().Find(&items, query); err != nil {
		return nil, fmt.Errorf("failed to find unprocessed items: %w", err)
	}
	result := make([]*models.RawItem, len(items))
	for i := range items {
		result[i] = &items[i]
	}
	return result, nil
}

func (s *ItemStorage) MarkItemProcessed(ctx context.Context, id string) error {
	var item models.RawItem
	if err := s.db.Store().Get(id, &item); err != nil {
		return fmt.Errorf("failed to get item for update: %w", err)
	}
	now := time.Now().UTC()
	item.Processed = true
	item.ProcessedAt = &now
	if err := s.db.Store().Update(id, &item); err != nil {
		return fmt.Errorf("failed to mark item processed: %w", err)
	}
	return nil
}

func (s *ItemStorage) CountItems(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.RawItem{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return int(count), nil
}
