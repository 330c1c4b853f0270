package badger

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db       *BadgerDB
	item     interfaces.ItemStorage
	frame    interfaces.FrameStorage
	signal   interfaces.SignalStorage
	conflict interfaces.ConflictStorage
	state    interfaces.StateStorage
	scenario interfaces.ScenarioStorage
	logger   arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:       db,
		item:     NewItemStorage(db, logger),
		frame:    NewFrameStorage(db, logger),
		signal:   NewSignalStorage(db, logger),
		conflict: NewConflictStorage(db, logger),
		state:    NewStateStorage(db, logger),
		scenario: NewScenarioStorage(db, logger),
		logger:   logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// ItemStorage returns the raw item storage interface
func (m *Manager) ItemStorage() interfaces.ItemStorage {
	return m.item
}

// FrameStorage returns the event frame storage interface
func (m *Manager) FrameStorage() interfaces.FrameStorage {
	return m.frame
}

// SignalStorage returns the signal activation storage interface
func (m *Manager) SignalStorage() interfaces.SignalStorage {
	return m.signal
}

// ConflictStorage returns the conflict storage interface
func (m *Manager) ConflictStorage() interfaces.ConflictStorage {
	return m.conflict
}

// StateStorage returns the live state storage interface
func (m *Manager) StateStorage() interfaces.StateStorage {
	return m.state
}

// ScenarioStorage returns the scenario score storage interface
func (m *Manager) ScenarioStorage() interfaces.ScenarioStorage {
	return m.scenario
}

// SeedConflicts upserts the catalog's conflict reference rows so queries
// and handlers can resolve them without holding the catalog.
func (m *Manager) SeedConflicts(ctx context.Context, conflicts []models.ConflictEntity) error {
	for i := range conflicts {
		if err := m.conflict.SaveConflict(ctx, &conflicts[i]); err != nil {
			return err
		}
	}
	m.logger.Info().Int("count", len(conflicts)).Msg("Conflict reference data seeded")
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
