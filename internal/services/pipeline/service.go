package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/aggregator"
	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/classifier"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/detector"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
	"github.com/ternarybob/argus/internal/scenario"
	"github.com/ternarybob/argus/internal/state"
)

// itemBatchLimit caps how many raw items one aggregation pass examines
const itemBatchLimit = 500

// Service orchestrates the two recomputation cycles: aggregation
// (items -> frames -> signals -> bucketed events) and state (events ->
// conflict/theatre/alliance/scenario rows). Both are safe to invoke more
// often than their natural cadence.
type Service struct {
	catalog    *catalog.Catalog
	storage    interfaces.StorageManager
	classifier *classifier.Classifier
	detector   *detector.Detector
	aggregator *aggregator.Aggregator
	scorer     *scenario.Scorer
	config     *common.Config
	logger     arbor.ILogger

	mu              sync.Mutex
	lastAggregation *models.CycleResult
	lastState       *models.CycleResult
}

// Status reports the most recent result of each cycle kind
type Status struct {
	LastAggregation *models.CycleResult `json:"last_aggregation,omitempty"`
	LastState       *models.CycleResult `json:"last_state,omitempty"`
}

// NewService wires the pipeline stages together
func NewService(cat *catalog.Catalog, storage interfaces.StorageManager, resolver interfaces.GeoResolver, config *common.Config, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		catalog:    cat,
		storage:    storage,
		classifier: classifier.New(cat, resolver, logger),
		detector:   detector.New(cat, storage.SignalStorage(), logger),
		aggregator: aggregator.New(cat, storage.FrameStorage(), storage.ConflictStorage(), config, logger),
		scorer:     scenario.NewScorer(cat),
		config:     config,
		logger:     logger,
	}
}

// RunAggregationCycle classifies unprocessed items into frames, detects
// signals, expires stale activations, and buckets frames into conflict
// events. Re-running over the same input creates no duplicates.
func (s *Service) RunAggregationCycle(ctx context.Context) (*models.CycleResult, error) {
	now := time.Now().UTC()
	result := &models.CycleResult{
		Kind:      models.CycleAggregation,
		StartedAt: now,
		Stats:     &models.AggregationStats{},
	}
	stats := result.Stats

	items, err := s.storage.ItemStorage().GetUnprocessedItems(ctx, itemBatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load unprocessed items: %w", err)
	}
	stats.ItemsExamined = len(items)

	for _, item := range items {
		frame, err := s.classifier.Classify(item)
		if err != nil {
			s.logger.Warn().Err(err).Str("item_id", item.ID).Msg("Classification failed")
			stats.ItemsSkipped++
		} else if frame == nil {
			stats.ItemsSkipped++
		} else {
			if err := s.storage.FrameStorage().SaveFrame(ctx, frame); err != nil {
				s.logger.Warn().Err(err).Str("item_id", item.ID).Msg("Failed to save frame")
				continue // leave the item unprocessed for the next pass
			}
			stats.FramesCreated++

			activated, err := s.detector.Detect(ctx, frame)
			if err != nil {
				s.logger.Warn().Err(err).Str("frame_id", frame.ID).Msg("Signal detection failed")
			}
			stats.SignalsActivated += activated
		}
		if err := s.storage.ItemStorage().MarkItemProcessed(ctx, item.ID); err != nil {
			s.logger.Warn().Err(err).Str("item_id", item.ID).Msg("Failed to mark item processed")
		}
	}

	expired, err := s.detector.ExpireStale(ctx, now)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Signal expiry sweep failed")
	}
	stats.SignalsExpired = expired

	aggStats, err := s.aggregator.Run(ctx)
	if err != nil {
		return nil, err
	}
	stats.EventsCreated = aggStats.EventsCreated
	stats.FramesDropped = aggStats.FramesDropped

	result.FinishedAt = time.Now().UTC()
	s.logger.Info().
		Int("items", stats.ItemsExamined).
		Int("frames", stats.FramesCreated).
		Int("signals", stats.SignalsActivated).
		Int("events", stats.EventsCreated).
		Str("duration", result.Duration().String()).
		Msg("Aggregation cycle complete")

	s.mu.Lock()
	s.lastAggregation = result
	s.mu.Unlock()
	return result, nil
}

// RunStateCycle recomputes all live state rows in two phases: every
// conflict in parallel, then theatres, alliances, and scenarios in
// parallel once all conflict states are fresh. A failing entity is
// recorded and skipped; it never aborts the batch.
func (s *Service) RunStateCycle(ctx context.Context) (*models.CycleResult, error) {
	now := time.Now().UTC()
	result := &models.CycleResult{
		Kind:      models.CycleState,
		StartedAt: now,
	}
	var resultMu sync.Mutex
	record := func(kind models.EntityKind, id string, err error) {
		resultMu.Lock()
		result.Record(kind, id, err)
		resultMu.Unlock()
	}
	// recover per entity so a panicking recompute is recorded against
	// its ID instead of vanishing from the summary
	guard := func(fn func() error) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}

	// Phase 1: per-conflict recomputation
	pool := NewPool(ctx, s.config.Pipeline.Concurrency, s.logger)
	pool.Start()
	for i := range s.catalog.Conflicts {
		conflict := &s.catalog.Conflicts[i]
		_ = pool.Submit(func(jobCtx context.Context) error {
			err := guard(func() error { return s.recomputeConflict(jobCtx, conflict, now) })
			record(models.EntityConflict, conflict.ID, err)
			return err
		})
	}
	pool.Wait()

	// Phase 2: rollups over the fresh conflict states
	states, err := s.loadStateMap(ctx)
	if err != nil {
		return nil, err
	}

	activations, err := s.storage.SignalStorage().GetActiveActivations(ctx, now)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load active signals, scoring scenarios without them")
		activations = nil
	}
	signals := s.scorer.CollectActive(activations)

	pool = NewPool(ctx, s.config.Pipeline.Concurrency, s.logger)
	pool.Start()
	for _, theatre := range s.catalog.Theatres() {
		theatre := theatre
		_ = pool.Submit(func(jobCtx context.Context) error {
			err := guard(func() error { return s.recomputeTheatre(jobCtx, theatre, states, now) })
			record(models.EntityTheatre, theatre, err)
			return err
		})
	}
	for i := range s.catalog.Alliances {
		alliance := &s.catalog.Alliances[i]
		_ = pool.Submit(func(jobCtx context.Context) error {
			err := guard(func() error { return s.recomputeAlliance(jobCtx, alliance, states, now) })
			record(models.EntityAlliance, alliance.Code, err)
			return err
		})
	}
	for i := range s.catalog.Scenarios {
		template := &s.catalog.Scenarios[i]
		_ = pool.Submit(func(jobCtx context.Context) error {
			err := guard(func() error { return s.rescoreScenario(jobCtx, template, signals, now) })
			record(models.EntityScenario, template.ID, err)
			return err
		})
	}
	pool.Wait()

	result.FinishedAt = time.Now().UTC()
	s.logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Str("duration", result.Duration().String()).
		Msg("State cycle complete")

	s.mu.Lock()
	s.lastState = result
	s.mu.Unlock()
	return result, nil
}

// Status returns the latest cycle results
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		LastAggregation: s.lastAggregation,
		LastState:       s.lastState,
	}
}

func (s *Service) recomputeConflict(ctx context.Context, conflict *models.ConflictEntity, now time.Time) error {
	since := now.Add(-s.config.Pipeline.LookbackWindow)
	events, err := s.storage.ConflictStorage().GetConflictEventsSince(ctx, conflict.ID, since)
	if err != nil {
		return fmt.Errorf("conflict %s: failed to load events: %w", conflict.ID, err)
	}
	prev, err := s.storage.StateStorage().GetConflictState(ctx, conflict.ID)
	if err != nil {
		return fmt.Errorf("conflict %s: failed to load previous state: %w", conflict.ID, err)
	}
	next := state.ComputeConflictState(conflict, events, prev, s.config.Pipeline.VelocityWindow, now)
	if err := s.storage.StateStorage().SaveConflictState(ctx, next); err != nil {
		return fmt.Errorf("conflict %s: failed to save state: %w", conflict.ID, err)
	}
	return nil
}

func (s *Service) recomputeTheatre(ctx context.Context, theatre string, states map[string]*models.ConflictStateLive, now time.Time) error {
	conflicts := s.catalog.ConflictsInTheatre(theatre)
	rollup, rankings := state.ComputeTheatreState(theatre, conflicts, states, now)
	if rollup == nil {
		// No conflicts with state: leave any existing row untouched
		return nil
	}
	if err := s.storage.StateStorage().SaveTheatreState(ctx, rollup); err != nil {
		return fmt.Errorf("theatre %s: failed to save state: %w", theatre, err)
	}
	for i, ranking := range rankings {
		if err := s.storage.StateStorage().UpdateTheatreRank(ctx, ranking.ConflictID, i+1); err != nil {
			return fmt.Errorf("theatre %s: failed to write rank for %s: %w", theatre, ranking.ConflictID, err)
		}
	}
	return nil
}

func (s *Service) recomputeAlliance(ctx context.Context, alliance *models.Alliance, states map[string]*models.ConflictStateLive, now time.Time) error {
	conflicts := make([]*models.ConflictEntity, 0, len(s.catalog.Conflicts))
	for i := range s.catalog.Conflicts {
		conflicts = append(conflicts, &s.catalog.Conflicts[i])
	}
	pressure := state.ComputeAlliancePressure(alliance, conflicts, states, now)
	if err := s.storage.StateStorage().SaveAlliancePressure(ctx, pressure); err != nil {
		return fmt.Errorf("alliance %s: failed to save pressure: %w", alliance.Code, err)
	}
	return nil
}

func (s *Service) rescoreScenario(ctx context.Context, template *models.ScenarioTemplate, signals []scenario.ActiveSignal, now time.Time) error {
	prev, err := s.storage.ScenarioStorage().GetScore(ctx, template.ID)
	if err != nil {
		return fmt.Errorf("scenario %s: failed to load previous score: %w", template.ID, err)
	}
	score := s.scorer.Score(template, signals, prev, now)
	if err := s.storage.ScenarioStorage().SaveScore(ctx, score); err != nil {
		return fmt.Errorf("scenario %s: failed to save score: %w", template.ID, err)
	}
	return nil
}

func (s *Service) loadStateMap(ctx context.Context) (map[string]*models.ConflictStateLive, error) {
	all, err := s.storage.StateStorage().GetAllConflictStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict states: %w", err)
	}
	states := make(map[string]*models.ConflictStateLive, len(all))
	for _, st := range all {
		states[st.ConflictID] = st
	}
	return states, nil
}
