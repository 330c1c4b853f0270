package badger

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// ScenarioStorage implements the ScenarioStorage interface for Badger.
// Scores are keyed by scenario ID so each save replaces the previous
// cycle's score.
type ScenarioStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewScenarioStorage creates a new ScenarioStorage instance
func NewScenarioStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ScenarioStorage {
	return &ScenarioStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ScenarioStorage) SaveScore(ctx context.Context, score *models.ScenarioScore) error {
	if score.ScenarioID == "" {
		return fmt.Errorf("scenario ID is required")
	}
	if err := s.db.Store().Upsert(score.ScenarioID, score); err != nil {
		return fmt.Errorf("failed to save scenario score: %w", err)
	}
	return nil
}

func (s *ScenarioStorage) GetScore(ctx context.Context, scenarioID string) (*models.ScenarioScore, error) {
	var score models.ScenarioScore
	if err := s.db.Store().Get(scenarioID, &score); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scenario score: %w", err)
	}
	return &score, nil
}

func (s *ScenarioStorage) GetAllScores(ctx context.Context) ([]*models.ScenarioScore, error) {
	var scores []models.ScenarioScore
	if err := s.db.Store().Find(&scores, nil); err != nil {
		return nil, fmt.Errorf("failed to list scenario scores: %w", err)
	}
	result := make([]*models.ScenarioScore, len(scores))
	for i := range scores {
		result[i] = &scores[i]
	}
	return result, nil
}
