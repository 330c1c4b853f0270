package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/geo"
	"github.com/ternarybob/argus/internal/handlers"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/services/pipeline"
	"github.com/ternarybob/argus/internal/services/scheduler"
	badgerstorage "github.com/ternarybob/argus/internal/storage/badger"
)

// Scheduled job names
const (
	JobAggregation = "aggregation"
	JobStateUpdate = "state-update"
)

// App holds all application dependencies, wired once at startup
type App struct {
	Config  *common.Config
	Logger  arbor.ILogger
	Catalog *catalog.Catalog

	Storage   interfaces.StorageManager
	Resolver  interfaces.GeoResolver
	Pipeline  *pipeline.Service
	Scheduler interfaces.SchedulerService

	// HTTP handlers
	APIHandler    *handlers.APIHandler
	StatusHandler *handlers.StatusHandler
	StateHandler  *handlers.StateHandler
	CycleHandler  *handlers.CycleHandler
	ItemHandler   *handlers.ItemHandler
}

// New creates and wires the application
func New(ctx context.Context, config *common.Config, logger arbor.ILogger) (*App, error) {
	if logger == nil {
		logger = common.GetLogger()
	}

	cat, err := catalog.Load(config.Catalog.ConflictsDir, config.Catalog.ScenariosDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	storage, err := badgerstorage.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Seed conflict reference rows so reads work before the first cycle
	if manager, ok := storage.(*badgerstorage.Manager); ok {
		if err := manager.SeedConflicts(ctx, cat.Conflicts); err != nil {
			storage.Close()
			return nil, fmt.Errorf("failed to seed conflicts: %w", err)
		}
	}

	resolver := geo.NewResolver(cat)
	pipelineService := pipeline.NewService(cat, storage, resolver, config, logger)
	schedulerService := scheduler.NewService(logger)

	app := &App{
		Config:    config,
		Logger:    logger,
		Catalog:   cat,
		Storage:   storage,
		Resolver:  resolver,
		Pipeline:  pipelineService,
		Scheduler: schedulerService,

		APIHandler:    handlers.NewAPIHandler(),
		StatusHandler: handlers.NewStatusHandler(cat, storage),
		StateHandler:  handlers.NewStateHandler(cat, storage.StateStorage(), storage.ScenarioStorage()),
		CycleHandler:  handlers.NewCycleHandler(pipelineService, schedulerService),
		ItemHandler:   handlers.NewItemHandler(storage.ItemStorage()),
	}

	if err := app.registerJobs(); err != nil {
		storage.Close()
		return nil, err
	}

	return app, nil
}

// registerJobs wires the two pipeline cycles into the scheduler
func (a *App) registerJobs() error {
	err := a.Scheduler.RegisterJob(JobAggregation, a.Config.Scheduler.AggregationSchedule, func() error {
		_, err := a.Pipeline.RunAggregationCycle(context.Background())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to register aggregation job: %w", err)
	}

	err = a.Scheduler.RegisterJob(JobStateUpdate, a.Config.Scheduler.StateSchedule, func() error {
		_, err := a.Pipeline.RunStateCycle(context.Background())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to register state-update job: %w", err)
	}
	return nil
}

// StartScheduler starts the cron scheduler and optionally triggers the
// cycles immediately
func (a *App) StartScheduler() error {
	if !a.Config.Scheduler.Enabled {
		a.Logger.Info().Msg("Scheduler disabled by configuration")
		return nil
	}
	if err := a.Scheduler.Start(); err != nil {
		return err
	}
	if a.Config.Scheduler.RunOnStartup {
		if err := a.Scheduler.TriggerJob(JobAggregation); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to trigger startup aggregation")
		}
		if err := a.Scheduler.TriggerJob(JobStateUpdate); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to trigger startup state update")
		}
	}
	return nil
}

// Close stops the scheduler and releases storage
func (a *App) Close() error {
	if a.Scheduler != nil && a.Scheduler.IsRunning() {
		if err := a.Scheduler.Stop(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to stop scheduler")
		}
	}
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
